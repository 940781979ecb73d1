package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender доставляет сообщение конкретному получателю.
// Реализуется ботом; в тестах подменяется фейком.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Result итог рассылки
type Result struct {
	RunID   uuid.UUID
	Total   int
	Sent    int
	Blocked int // получатели, которым доставить не удалось
}

type BroadcastService struct {
	userRepo userIDLister
	logger   *zap.Logger
	delay    time.Duration
}

// userIDLister нужная рассылке проекция репозитория пользователей
type userIDLister interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

func NewBroadcastService(userRepo userIDLister, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		logger:   logger,
		delay:    50 * time.Millisecond, // пауза между отправками, чтобы не упереться в лимиты Telegram
	}
}

// Broadcast последовательно рассылает текст всем известным пользователям.
// Ошибка доставки отдельному получателю не прерывает цикл,
// она учитывается в счётчике Blocked.
func (s *BroadcastService) Broadcast(ctx context.Context, sender Sender, text string) (*Result, error) {
	ids, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.New(),
		Total: len(ids),
	}

	s.logger.Info("Broadcast started",
		zap.String("run_id", result.RunID.String()),
		zap.Int("recipients", result.Total),
	)

	for _, id := range ids {
		if err := sender.Send(ctx, id, text); err != nil {
			result.Blocked++
			s.logger.Warn("Broadcast delivery failed",
				zap.String("run_id", result.RunID.String()),
				zap.Int64("chat_id", id),
				zap.Error(err),
			)
		} else {
			result.Sent++
		}

		if s.delay > 0 {
			select {
			case <-ctx.Done():
				s.logger.Warn("Broadcast interrupted",
					zap.String("run_id", result.RunID.String()),
					zap.Int("sent", result.Sent),
				)
				return result, ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	s.logger.Info("Broadcast finished",
		zap.String("run_id", result.RunID.String()),
		zap.Int("sent", result.Sent),
		zap.Int("blocked", result.Blocked),
	)

	return result, nil
}
