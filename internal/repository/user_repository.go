package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atomyssd/dino-club/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert сохраняет пользователя, заменяя существующую строку.
// Телефон здесь не валидируется — это обязанность вызывающего.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	query := `
		INSERT OR REPLACE INTO users (user_id, full_name, phone)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.TelegramID, user.FullName, user.Phone)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

// GetProfile получает данные кабинета: имя, телефон и выбранный курс.
// Возвращает nil, nil если пользователь не зарегистрирован.
func (r *UserRepository) GetProfile(ctx context.Context, telegramID int64) (*model.Profile, error) {
	query := `
		SELECT u.full_name, u.phone, e.course_key
		FROM users u
		LEFT JOIN enrollments e ON u.user_id = e.user_id
		WHERE u.user_id = ?
	`

	var profile model.Profile
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&profile.FullName,
		&profile.Phone,
		&profile.CourseKey,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// ListAll возвращает всех зарегистрированных пользователей
func (r *UserRepository) ListAll(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT user_id, full_name, phone
		FROM users
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.TelegramID, &user.FullName, &user.Phone); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// ListIDs возвращает только идентификаторы пользователей (для рассылки)
func (r *UserRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}

	return ids, nil
}

// DeleteAll удаляет всех пользователей вместе с их записями на курсы.
// Сначала enrollments: они ссылаются на users по внешнему ключу.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM enrollments`); err != nil {
		return fmt.Errorf("delete enrollments: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}
