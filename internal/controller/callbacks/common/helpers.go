package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert).
// Вызывается в начале каждого обработчика, чтобы кнопка перестала
// показывать индикатор загрузки; результат не несёт бизнес-смысла.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// EditOrSend пытается отредактировать сообщение по месту; если канал
// отклонил правку (текст не изменился, сообщение старое или удалено) —
// отправляет новое. Fallback обязателен на каждой попытке правки.
func EditOrSend(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, parseMode models.ParseMode, kb models.ReplyMarkup) {
	if messageID != 0 {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ParseMode:   parseMode,
			ReplyMarkup: kb,
		})
		if err == nil {
			return
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   parseMode,
		ReplyMarkup: kb,
	})
}
