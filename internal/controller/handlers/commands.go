package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
)

// HandleStart команда /start: сброс диалога и выбор языка
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.sessions.Clear(telegramID)

	h.logger.Info("User started bot",
		zap.Int64("telegram_id", telegramID),
		zap.String("username", update.Message.From.Username))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Выберите язык / Tilni tanlang:",
		ReplyMarkup: common.LangPicker(),
	})
}

// HandleAdmin команда /admin. Для посторонних команда не существует:
// никакого ответа не отправляется.
func (h *Handlers) HandleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if !h.cfg.IsAdmin(telegramID) {
		h.logger.Warn("Admin command from non-admin", zap.Int64("telegram_id", telegramID))
		return
	}

	h.sessions.Clear(telegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "⚙️ Админ-панель",
		ReplyMarkup: common.AdminMain(),
	})
}
