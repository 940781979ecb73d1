package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/atomyssd/dino-club/internal/catalog"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/i18n"
)

// HandleCategory список преподавателей выбранного направления
func HandleCategory(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)
	lang := cb.Lang

	items := catalog.Items(cb.CourseKey, lang)
	if !catalog.Valid(cb.CourseKey) || len(items) == 0 {
		text := fmt.Sprintf(i18n.T(lang, "cat_empty"), catalog.Name(cb.CourseKey, lang))
		common.EditOrSend(ctx, b, chatID, messageID, text, "", common.CourseCategories(lang))
		return
	}

	text := fmt.Sprintf("%s %s", i18n.T(lang, "cat"), catalog.Name(cb.CourseKey, lang))
	common.EditOrSend(ctx, b, chatID, messageID, text, "", common.CategoryTeachers(cb.CourseKey, lang))
}

// HandleDetails карточка преподавателя с расписанием
func HandleDetails(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)
	lang := cb.Lang

	items := catalog.Items(cb.CourseKey, lang)
	if cb.ItemIndex < 0 || cb.ItemIndex >= len(items) {
		// Кнопка от старой версии каталога, возвращаем в список направлений
		common.EditOrSend(ctx, b, chatID, messageID, i18n.T(lang, "cat"), "", common.CourseCategories(lang))
		return
	}

	t := items[cb.ItemIndex]
	text := fmt.Sprintf(
		"<b>%s</b>\n👨‍🏫 %s: %s\n\n%s\n<pre>%s</pre>",
		catalog.Name(cb.CourseKey, lang),
		i18n.T(lang, "teacher"), t.FullName,
		i18n.T(lang, "schedule"),
		t.Schedule,
	)

	common.EditOrSend(ctx, b, chatID, messageID, text, models.ParseModeHTML,
		common.BackTo(lang, fmt.Sprintf("cat_%s_%s", cb.CourseKey, lang)))
}
