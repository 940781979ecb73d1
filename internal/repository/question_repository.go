package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atomyssd/dino-club/internal/model"
)

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Insert сохраняет вопрос с серверной меткой времени
func (r *QuestionRepository) Insert(ctx context.Context, userID int64, text string) error {
	query := `
		INSERT INTO questions (user_id, question_text, date)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, userID, text, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}

	return nil
}

// ListAll возвращает все вопросы, свежие первыми, с именем автора из users
func (r *QuestionRepository) ListAll(ctx context.Context) ([]*model.Question, error) {
	query := `
		SELECT q.id, q.user_id, q.question_text, q.date, u.full_name
		FROM questions q
		LEFT JOIN users u ON q.user_id = u.user_id
		ORDER BY q.date DESC, q.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []*model.Question
	for rows.Next() {
		var (
			q    model.Question
			name sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.UserID, &q.Text, &q.Date, &name); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.UserName = name.String
		questions = append(questions, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// DeleteAll удаляет все вопросы. Пользователей и записи на курсы не трогает.
func (r *QuestionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	return nil
}
