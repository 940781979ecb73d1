package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Upsert записывает пользователя на курс, заменяя предыдущую запись.
// История не хранится: у пользователя всегда не больше одного курса.
// Принадлежность courseKey каталогу проверяет вызывающий.
func (r *EnrollmentRepository) Upsert(ctx context.Context, userID int64, courseKey string) error {
	query := `
		INSERT OR REPLACE INTO enrollments (user_id, course_key)
		VALUES (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, userID, courseKey)
	if err != nil {
		return fmt.Errorf("upsert enrollment: %w", err)
	}

	return nil
}
