package handlers

import (
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/config"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/service"
)

// Handlers обработчики команд и текстовых сообщений
type Handlers struct {
	userService      *service.UserService
	questionService  *service.QuestionService
	broadcastService *service.BroadcastService
	sessions         state.Store
	cfg              *config.Config
	logger           *zap.Logger
}

func New(
	userService *service.UserService,
	questionService *service.QuestionService,
	broadcastService *service.BroadcastService,
	sessions state.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:      userService,
		questionService:  questionService,
		broadcastService: broadcastService,
		sessions:         sessions,
		cfg:              cfg,
		logger:           logger,
	}
}
