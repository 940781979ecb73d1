package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common/keyboard"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/i18n"
	"github.com/atomyssd/dino-club/internal/quiz"
)

// AskQuizQuestion отправляет текущий вопрос теста отдельным сообщением
func AskQuizQuestion(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64) {
	session := h.Sessions.Get(telegramID)

	q, ok := quiz.Get(session.QuizIndex)
	if !ok {
		finishQuiz(ctx, b, h, chatID, telegramID, session)
		return
	}

	kb := keyboard.NewBuilder()
	for i, opt := range q.Options {
		kb.Row(keyboard.Button(opt, fmt.Sprintf("test_ans_%d_%d_%s", session.QuizIndex, i, session.Lang)))
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("%d. %s", session.QuizIndex+1, q.Prompt),
		ReplyMarkup: kb.Build(),
	})
	if err != nil {
		h.Logger.Error("Failed to send quiz question",
			zap.Error(err),
			zap.Int64("telegram_id", telegramID),
			zap.Int("question", session.QuizIndex))
	}
}

// applyQuizAnswer применяет ответ к сессии теста.
// Устаревшее нажатие (сессия не в тесте или индекс вопроса в payload
// не совпадает с текущим) возвращает accepted == false и не меняет
// ни счёт, ни позицию.
func applyQuizAnswer(session state.Session, questionIndex, answerIndex int) (updated state.Session, verdict string, accepted bool) {
	if session.State != state.StateAwaitingQuizAnswer || questionIndex != session.QuizIndex {
		return session, "", false
	}

	q, ok := quiz.Get(questionIndex)
	if !ok {
		return session, "", false
	}

	if quiz.IsCorrect(questionIndex, answerIndex) {
		session.QuizScore++
		verdict = fmt.Sprintf("%d. %s\n\n✅ %s", questionIndex+1, q.Prompt, q.Options[answerIndex])
	} else {
		answer := ""
		if answerIndex >= 0 && answerIndex < len(q.Options) {
			answer = q.Options[answerIndex]
		}
		verdict = fmt.Sprintf("%d. %s\n\n❌ %s → %s", questionIndex+1, q.Prompt, answer, q.Options[q.Correct])
	}

	session.QuizIndex++
	return session, verdict, true
}

// HandleQuizAnswer ответ на вопрос теста. Индекс вопроса в payload
// сверяется с индексом в сессии: нажатие на клавиатуру уже отвеченного
// вопроса не меняет счёт.
func HandleQuizAnswer(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	telegramID := callback.From.ID
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	session := h.Sessions.Get(telegramID)
	updated, verdict, accepted := applyQuizAnswer(session, cb.QuestionIndex, cb.AnswerIndex)
	if !accepted {
		h.Logger.Warn("Stale quiz answer",
			zap.Int64("telegram_id", telegramID),
			zap.Int("payload_question", cb.QuestionIndex),
			zap.Int("session_question", session.QuizIndex))
		// Снимаем клавиатуру с устаревшего вопроса, счёт не трогаем
		if messageID != 0 {
			b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
				ChatID:    chatID,
				MessageID: messageID,
			})
		}
		return
	}

	common.EditOrSend(ctx, b, chatID, messageID, verdict, "", nil)

	h.Sessions.Set(telegramID, updated)

	if updated.QuizIndex >= quiz.Len() {
		finishQuiz(ctx, b, h, chatID, telegramID, updated)
		return
	}

	AskQuizQuestion(ctx, b, h, chatID, telegramID)
}

// finishQuiz подводит итог: балл, уровень и возврат в главное меню
func finishQuiz(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID, telegramID int64, session state.Session) {
	lang := session.Lang
	level := quiz.Level(session.QuizScore)

	text := fmt.Sprintf(
		"%s\n\n%s: %d/%d\n%s: *%s*\n\n%s %s",
		i18n.T(lang, "test_done"),
		i18n.T(lang, "test_score"), session.QuizScore, quiz.Len(),
		i18n.T(lang, "test_level"), level,
		i18n.T(lang, "test_compliment"),
		i18n.T(lang, "test_footer"),
	)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: common.MainMenu(lang),
	})
	if err != nil {
		h.Logger.Error("Failed to send quiz result",
			zap.Error(err),
			zap.Int64("telegram_id", telegramID))
	}

	h.Logger.Info("Quiz finished",
		zap.Int64("telegram_id", telegramID),
		zap.Int("score", session.QuizScore),
		zap.String("level", level))

	h.Sessions.Clear(telegramID)
}
