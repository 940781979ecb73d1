package callbacks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/controller/state"
)

// Обработчики админ-панели. Роутер пропускает сюда только
// администраторов, поэтому повторных проверок прав нет.

const questionsPreviewLimit = 5

// HandleAdminPanel главный экран панели
func HandleAdminPanel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	// Панель обрывает любой текстовый диалог администратора
	h.Sessions.Clear(callback.From.ID)

	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	common.EditOrSend(ctx, b, chatID, messageID, "⚙️ Админ-панель", "", common.AdminMain())
}

// HandleAdminUsersList список зарегистрированных пользователей
func HandleAdminUsersList(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	users, err := h.UserService.ListAll(ctx)
	if err != nil {
		h.Logger.Error("Failed to list users", zap.Error(err))
		common.EditOrSend(ctx, b, chatID, messageID, "❌ Не удалось получить список пользователей.", "", common.AdminMain())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Пользователи (%d):\n\n", len(users)))
	if len(users) == 0 {
		sb.WriteString("Пока никто не зарегистрировался.")
	}
	for _, u := range users {
		sb.WriteString(fmt.Sprintf("ID: %d | Имя: %s | Телефон: %s\n", u.TelegramID, u.FullName, u.Phone))
	}

	common.EditOrSend(ctx, b, chatID, messageID, sb.String(), "", common.BackTo("ru", "admin_panel"))
}

// HandleAdminQuestionsList последние вопросы пользователей.
// К самому свежему вопросу прикрепляется кнопка быстрого ответа.
func HandleAdminQuestionsList(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	questions, err := h.QuestionService.ListAll(ctx)
	if err != nil {
		h.Logger.Error("Failed to list questions", zap.Error(err))
		common.EditOrSend(ctx, b, chatID, messageID, "❌ Не удалось получить список вопросов.", "", common.AdminMain())
		return
	}

	if len(questions) == 0 {
		common.EditOrSend(ctx, b, chatID, messageID, "❓ Вопросов пока нет.", "", common.BackTo("ru", "admin_panel"))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❓ Вопросы (%d), свежие первыми:\n\n", len(questions)))

	shown := questions
	if len(shown) > questionsPreviewLimit {
		shown = shown[:questionsPreviewLimit]
	}
	for _, q := range shown {
		name := q.UserName
		if name == "" {
			name = "—"
		}
		sb.WriteString(fmt.Sprintf("#%d | %s | %s (ID %d)\n%s\n\n", q.ID, q.Date, name, q.UserID, q.Text))
	}
	if rest := len(questions) - len(shown); rest > 0 {
		sb.WriteString(fmt.Sprintf("…и еще %d.\n", rest))
	}

	// Кнопка ответа ведёт на автора самого свежего вопроса
	kb := common.AdminReply(shown[0].UserID)
	kb.InlineKeyboard = append(kb.InlineKeyboard, common.BackTo("ru", "admin_panel").InlineKeyboard...)

	common.EditOrSend(ctx, b, chatID, messageID, sb.String(), "", kb)
}

// HandleAdminBroadcast запрашивает текст рассылки
func HandleAdminBroadcast(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	common.EditOrSend(ctx, b, chatID, messageID,
		"📢 Введите текст рассылки. Он будет отправлен всем зарегистрированным пользователям.",
		"", common.AdminCancel())

	h.Sessions.Set(callback.From.ID, state.Session{State: state.StateAwaitingBroadcast, Lang: "ru"})
}

// HandleAdminDeleteUsers первый шаг удаления: предупреждение
func HandleAdminDeleteUsers(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	common.EditOrSend(ctx, b, chatID, messageID,
		"⚠️ Будут удалены ВСЕ пользователи вместе с записями на курсы. Действие необратимо.",
		"", common.ConfirmDeleteUsers())
}

// HandleAdminDeleteUsersConfirm второй шаг: собственно удаление
func HandleAdminDeleteUsersConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	if err := h.UserService.DeleteAll(ctx); err != nil {
		h.Logger.Error("Failed to delete users", zap.Error(err))
		common.EditOrSend(ctx, b, chatID, messageID, "❌ Не удалось удалить пользователей.", "", common.AdminMain())
		return
	}

	h.Logger.Warn("Admin deleted all users", zap.Int64("admin_id", callback.From.ID))
	common.EditOrSend(ctx, b, chatID, messageID, "🗑 Все пользователи удалены.", "", common.AdminMain())
}

// HandleAdminDeleteQuestions первый шаг удаления вопросов
func HandleAdminDeleteQuestions(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	common.EditOrSend(ctx, b, chatID, messageID,
		"⚠️ Будут удалены ВСЕ вопросы пользователей. Действие необратимо.",
		"", common.ConfirmDeleteQuestions())
}

// HandleAdminDeleteQuestionsConfirm второй шаг: удаление вопросов
func HandleAdminDeleteQuestionsConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	if err := h.QuestionService.DeleteAll(ctx); err != nil {
		h.Logger.Error("Failed to delete questions", zap.Error(err))
		common.EditOrSend(ctx, b, chatID, messageID, "❌ Не удалось удалить вопросы.", "", common.AdminMain())
		return
	}

	h.Logger.Warn("Admin deleted all questions", zap.Int64("admin_id", callback.From.ID))
	common.EditOrSend(ctx, b, chatID, messageID, "🗑 Все вопросы удалены.", "", common.AdminMain())
}

// HandleAdminReply включает режим прямого ответа пользователю
func HandleAdminReply(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	msg := common.GetMessageFromCallback(callback)
	chatID, _ := chatAndMessage(callback, msg)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("✍️ Введите текст ответа для пользователя %d:", cb.TargetUserID),
		ReplyMarkup: common.AdminCancel(),
	})

	h.Sessions.Set(callback.From.ID, state.Session{
		State:        state.StateAwaitingAdminReply,
		Lang:         "ru",
		TargetUserID: cb.TargetUserID,
	})
}
