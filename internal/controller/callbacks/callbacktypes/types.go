package callbacktypes

import (
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/config"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/service"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService     *service.UserService
	QuestionService *service.QuestionService
	Sessions        state.Store
	Cfg             *config.Config
	Logger          *zap.Logger
}
