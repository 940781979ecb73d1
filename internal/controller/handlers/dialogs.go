package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/i18n"
)

// phoneRe допустимый формат телефона: опциональный плюс и 9-15 цифр
var phoneRe = regexp.MustCompile(`^\+?\d{9,15}$`)

// HandleTextMessage обрабатывает произвольный текст в зависимости от
// состояния диалога. Текст вне активного диалога игнорируется:
// навигация в боте только кнопками.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	// Команды обрабатываются собственными обработчиками
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	session := h.sessions.Get(telegramID)

	switch session.State {
	case state.StateAwaitingName:
		h.handleNameStep(ctx, b, chatID, telegramID, session, text)

	case state.StateAwaitingPhone:
		h.handlePhoneStep(ctx, b, update, chatID, telegramID, session, text)

	case state.StateAwaitingCourse:
		// Ждём нажатия кнопки, текст здесь не нужен
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        i18n.T(session.Lang, "select_course"),
			ReplyMarkup: common.RegCourseList(session.Lang),
		})

	case state.StateAwaitingQuestion:
		h.handleQuestionStep(ctx, b, update, chatID, telegramID, session, text)

	case state.StateAwaitingBroadcast:
		h.handleBroadcastStep(ctx, b, chatID, telegramID, text)

	case state.StateAwaitingAdminReply:
		h.handleAdminReplyStep(ctx, b, chatID, telegramID, session, text)

	default:
		h.logger.Debug("Text outside of dialog ignored",
			zap.Int64("telegram_id", telegramID))
	}
}

// handleNameStep шаг ФИО: запоминаем имя и спрашиваем телефон
func (h *Handlers) handleNameStep(ctx context.Context, b *bot.Bot, chatID, telegramID int64, session state.Session, text string) {
	session.Name = text
	session.State = state.StateAwaitingPhone
	h.sessions.Set(telegramID, session)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   i18n.T(session.Lang, "tel"),
	})
}

// handlePhoneStep шаг телефона: валидация, сохранение профиля,
// уведомление оператора и переход к выбору курса
func (h *Handlers) handlePhoneStep(ctx context.Context, b *bot.Bot, update *models.Update, chatID, telegramID int64, session state.Session, text string) {
	if !phoneRe.MatchString(text) {
		// Остаёмся на этом же шаге до корректного номера
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   i18n.T(session.Lang, "tel_error"),
		})
		return
	}

	if err := h.userService.Register(ctx, telegramID, session.Name, text); err != nil {
		h.logger.Error("Failed to register user",
			zap.Error(err),
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.notifyAdmin(ctx, b, fmt.Sprintf(
		"📞 *Новая регистрация!*\n\nID: `%d`\nUsername: @%s\nФИО: %s\nТелефон: `%s`",
		telegramID, update.Message.From.Username, session.Name, text,
	), nil)

	session.State = state.StateAwaitingCourse
	h.sessions.Set(telegramID, session)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("%s %s\n\n%s", i18n.T(session.Lang, "saved"), i18n.T(session.Lang, "reg_data_saved"), i18n.T(session.Lang, "select_course")),
		ReplyMarkup: common.RegCourseList(session.Lang),
	})
}

// handleQuestionStep сохраняет вопрос и пересылает его оператору
func (h *Handlers) handleQuestionStep(ctx context.Context, b *bot.Bot, update *models.Update, chatID, telegramID int64, session state.Session, text string) {
	if err := h.questionService.Submit(ctx, telegramID, text); err != nil {
		h.logger.Error("Failed to submit question",
			zap.Error(err),
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.notifyAdmin(ctx, b, fmt.Sprintf(
		"❓ *Новый вопрос!*\n\nОт: %s (ID: `%d`)\n\n%s",
		update.Message.From.FirstName, telegramID, text,
	), common.AdminReply(telegramID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        i18n.T(session.Lang, "ask_done"),
		ReplyMarkup: common.MainMenu(session.Lang),
	})

	h.sessions.Clear(telegramID)
}

// handleBroadcastStep запускает рассылку введённого текста
func (h *Handlers) handleBroadcastStep(ctx context.Context, b *bot.Bot, chatID, telegramID int64, text string) {
	result, err := h.broadcastService.Broadcast(ctx, &botSender{bot: b}, text)
	if err != nil {
		h.logger.Error("Broadcast failed", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "❌ Рассылка не удалась.",
			ReplyMarkup: common.AdminMain(),
		})
		h.sessions.Clear(telegramID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("📢 Рассылка завершена.\nПолучателей: %d\nДоставлено: %d\nЗаблокировано: %d",
			result.Total, result.Sent, result.Blocked),
		ReplyMarkup: common.AdminMain(),
	})

	h.sessions.Clear(telegramID)
}

// handleAdminReplyStep доставляет ответ администратора пользователю
func (h *Handlers) handleAdminReplyStep(ctx context.Context, b *bot.Bot, chatID, telegramID int64, session state.Session, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: session.TargetUserID,
		Text:   "👤 Ответ администратора:\n\n" + text,
	})

	report := fmt.Sprintf("✅ Ответ отправлен пользователю %d.", session.TargetUserID)
	if err != nil {
		h.logger.Error("Failed to deliver admin reply",
			zap.Error(err),
			zap.Int64("target_user_id", session.TargetUserID))
		report = fmt.Sprintf("❌ Не удалось отправить ответ пользователю %d.", session.TargetUserID)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        report,
		ReplyMarkup: common.AdminMain(),
	})

	h.sessions.Clear(telegramID)
}

// notifyAdmin отправляет служебное уведомление оператору
func (h *Handlers) notifyAdmin(ctx context.Context, b *bot.Bot, text string, kb models.ReplyMarkup) {
	adminID := h.cfg.NotifyAdminID()
	if adminID == 0 {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      adminID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.logger.Error("Failed to notify admin",
			zap.Error(err),
			zap.Int64("admin_id", adminID))
	}
}

// botSender адаптер бота под интерфейс рассылки
type botSender struct {
	bot *bot.Bot
}

func (s *botSender) Send(ctx context.Context, chatID int64, text string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}
