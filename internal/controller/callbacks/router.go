package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	// Снимаем индикатор загрузки с кнопки до основной работы.
	// Пустой ack ничего не раскрывает, поэтому он выполняется и для
	// событий, которые дальше будут молча отброшены.
	common.AnswerCallback(ctx, b, callback.ID, "")

	cb, err := Decode(data)
	if err != nil {
		// Нераспознанные события молча отбрасываем
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		return
	}

	// Админские кнопки для посторонних не существуют: никакого ответа
	if cb.Action.AdminOnly() && !h.Cfg.IsAdmin(callback.From.ID) {
		h.Logger.Warn("Admin callback from non-admin",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		return
	}

	switch cb.Action {
	case ActionIgnore:
		return

	case ActionLang:
		HandleLang(ctx, b, callback, h, cb)
	case ActionNav:
		HandleNav(ctx, b, callback, h, cb)
	case ActionCategory:
		HandleCategory(ctx, b, callback, h, cb)
	case ActionDetails:
		HandleDetails(ctx, b, callback, h, cb)
	case ActionRegCourse:
		HandleRegCourse(ctx, b, callback, h, cb)
	case ActionQuizAnswer:
		HandleQuizAnswer(ctx, b, callback, h, cb)

	case ActionAdminPanel:
		HandleAdminPanel(ctx, b, callback, h)
	case ActionAdminUsersList:
		HandleAdminUsersList(ctx, b, callback, h)
	case ActionAdminQuestionsList:
		HandleAdminQuestionsList(ctx, b, callback, h)
	case ActionAdminBroadcast:
		HandleAdminBroadcast(ctx, b, callback, h)
	case ActionAdminDeleteUsers:
		HandleAdminDeleteUsers(ctx, b, callback, h)
	case ActionAdminDeleteUsersConfirm:
		HandleAdminDeleteUsersConfirm(ctx, b, callback, h)
	case ActionAdminDeleteQuestions:
		HandleAdminDeleteQuestions(ctx, b, callback, h)
	case ActionAdminDeleteQuestionsConfirm:
		HandleAdminDeleteQuestionsConfirm(ctx, b, callback, h)
	case ActionAdminReply:
		HandleAdminReply(ctx, b, callback, h, cb)
	}
}
