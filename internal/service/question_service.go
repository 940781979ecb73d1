package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/model"
	"github.com/atomyssd/dino-club/internal/repository"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
	logger       *zap.Logger
}

func NewQuestionService(questionRepo *repository.QuestionRepository, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// Submit сохраняет вопрос пользователя
func (s *QuestionService) Submit(ctx context.Context, telegramID int64, text string) error {
	if err := s.questionRepo.Insert(ctx, telegramID, text); err != nil {
		return fmt.Errorf("submit question: %w", err)
	}

	s.logger.Info("Question submitted", zap.Int64("telegram_id", telegramID))
	return nil
}

// ListAll возвращает все вопросы, свежие первыми
func (s *QuestionService) ListAll(ctx context.Context) ([]*model.Question, error) {
	return s.questionRepo.ListAll(ctx)
}

// DeleteAll удаляет все вопросы
func (s *QuestionService) DeleteAll(ctx context.Context) error {
	if err := s.questionRepo.DeleteAll(ctx); err != nil {
		return err
	}

	s.logger.Warn("All questions deleted")
	return nil
}
