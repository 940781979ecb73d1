package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/config"
	"github.com/atomyssd/dino-club/internal/controller/callbacks"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/handlers"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacktypes.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	questionService *service.QuestionService,
	broadcastService *service.BroadcastService,
	cfg *config.Config,
	logger *zap.Logger,
) *BotController {
	// Одно хранилище сессий на оба вида обработчиков
	sessions := state.NewManager()

	cmdHandlers := handlers.New(
		userService,
		questionService,
		broadcastService,
		sessions,
		cfg,
		logger,
	)

	callbackHandler := &callbacktypes.Handler{
		UserService:     userService,
		QuestionService: questionService,
		Sessions:        sessions,
		Cfg:             cfg,
		Logger:          logger,
	}

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, c.handlers.HandleAdmin)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

func (c *BotController) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	callbacks.Route(ctx, b, update.CallbackQuery, c.callbackHandler)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Запустить бота / выбрать язык"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
