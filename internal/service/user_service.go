package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/catalog"
	"github.com/atomyssd/dino-club/internal/model"
	"github.com/atomyssd/dino-club/internal/repository"
)

type UserService struct {
	userRepo       *repository.UserRepository
	enrollmentRepo *repository.EnrollmentRepository
	logger         *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Register сохраняет регистрационные данные пользователя.
// Повторная регистрация заменяет имя и телефон (upsert).
// Телефон должен быть проверен вызывающим до этого места.
func (s *UserService) Register(ctx context.Context, telegramID int64, fullName, phone string) error {
	user := &model.User{
		TelegramID: telegramID,
		FullName:   fullName,
		Phone:      phone,
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("telegram_id", telegramID),
		zap.String("full_name", fullName),
	)

	return nil
}

// Enroll записывает пользователя на курс, заменяя предыдущую запись
func (s *UserService) Enroll(ctx context.Context, telegramID int64, courseKey string) error {
	if !catalog.Valid(courseKey) {
		return fmt.Errorf("unknown course key: %s", courseKey)
	}

	if err := s.enrollmentRepo.Upsert(ctx, telegramID, courseKey); err != nil {
		return fmt.Errorf("enroll user: %w", err)
	}

	s.logger.Info("User enrolled",
		zap.Int64("telegram_id", telegramID),
		zap.String("course_key", courseKey),
	)

	return nil
}

// GetProfile возвращает данные кабинета или nil если пользователь не регистрировался
func (s *UserService) GetProfile(ctx context.Context, telegramID int64) (*model.Profile, error) {
	return s.userRepo.GetProfile(ctx, telegramID)
}

// ListAll возвращает всех пользователей
func (s *UserService) ListAll(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.ListAll(ctx)
}

// ListIDs возвращает идентификаторы всех пользователей
func (s *UserService) ListIDs(ctx context.Context) ([]int64, error) {
	return s.userRepo.ListIDs(ctx)
}

// DeleteAll удаляет всех пользователей вместе с записями на курсы
func (s *UserService) DeleteAll(ctx context.Context) error {
	if err := s.userRepo.DeleteAll(ctx); err != nil {
		return err
	}

	s.logger.Warn("All users deleted")
	return nil
}
