package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/catalog"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/i18n"
)

// HandleRegCourse финальный шаг регистрации: выбор курса.
// Кнопка валидна только когда диалог ждёт выбора курса, иначе
// это нажатие на устаревшую клавиатуру.
func HandleRegCourse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	telegramID := callback.From.ID
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)
	lang := cb.Lang

	session := h.Sessions.Get(telegramID)
	if session.State != state.StateAwaitingCourse {
		h.Logger.Warn("Course pick outside of registration",
			zap.Int64("telegram_id", telegramID),
			zap.String("course_key", cb.CourseKey))
		common.EditOrSend(ctx, b, chatID, messageID, i18n.T(lang, "menu"), "", common.MainMenu(lang))
		return
	}

	if err := h.UserService.Enroll(ctx, telegramID, cb.CourseKey); err != nil {
		h.Logger.Error("Failed to enroll user",
			zap.Error(err),
			zap.Int64("telegram_id", telegramID),
			zap.String("course_key", cb.CourseKey))
		return
	}

	courseName := catalog.Name(cb.CourseKey, lang)
	notifyEnrollment(ctx, b, h, callback, courseName)

	text := fmt.Sprintf("✅ %s <b>%s</b>.", i18n.T(lang, "reg_complete"), courseName)
	common.EditOrSend(ctx, b, chatID, messageID, text, models.ParseModeHTML, common.MainMenu(lang))

	h.Sessions.Clear(telegramID)
}

// notifyEnrollment сообщает оператору о новой записи на курс
func notifyEnrollment(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, callback *models.CallbackQuery, courseName string) {
	adminID := h.Cfg.NotifyAdminID()
	if adminID == 0 {
		return
	}

	text := fmt.Sprintf(
		"🎓 *Новая запись на курс!*\n\nID: `%d`\nИмя: %s\nКурс: *%s*",
		callback.From.ID, callback.From.FirstName, courseName,
	)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    adminID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		h.Logger.Error("Failed to notify admin about enrollment",
			zap.Error(err),
			zap.Int64("admin_id", adminID))
	}
}
