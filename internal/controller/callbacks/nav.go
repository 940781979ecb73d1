package callbacks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/atomyssd/dino-club/internal/catalog"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/callbacktypes"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common"
	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/i18n"
)

// Координаты и контакты центра — статические данные продукта
const (
	venueLatitude  = 40.4979864
	venueLongitude = 68.7777999
)

var contactPhones = []string{"+998972488886", "+998975690286"}

// HandleLang выбор языка: сбрасывает диалог и показывает главное меню
func HandleLang(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	h.Sessions.Clear(callback.From.ID)

	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)

	common.EditOrSend(ctx, b, chatID, messageID, i18n.T(cb.Lang, "menu"), "", common.MainMenu(cb.Lang))
}

// HandleNav пункт главного меню. Любой переход по меню обрывает
// текущий диалог.
func HandleNav(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, cb Callback) {
	telegramID := callback.From.ID
	h.Sessions.Clear(telegramID)

	msg := common.GetMessageFromCallback(callback)
	chatID, messageID := chatAndMessage(callback, msg)
	lang := cb.Lang

	switch cb.Nav {
	case NavCourses:
		common.EditOrSend(ctx, b, chatID, messageID, i18n.T(lang, "cat"), "", common.CourseCategories(lang))

	case NavRegister:
		// Регистрация в один проход: сразу спрашиваем ФИО
		common.EditOrSend(ctx, b, chatID, messageID, i18n.T(lang, "fio_msg_new"), "", nil)
		h.Sessions.Set(telegramID, state.Session{State: state.StateAwaitingName, Lang: lang})

	case NavCabinet:
		showCabinet(ctx, b, h, callback, chatID, messageID, lang)

	case NavAsk:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   i18n.T(lang, "ask_prompt"),
		})
		h.Sessions.Set(telegramID, state.Session{State: state.StateAwaitingQuestion, Lang: lang})

	case NavLocation:
		sendLocation(ctx, b, h, chatID, lang)

	case NavResults:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        i18n.T(lang, "res_soon"),
			ReplyMarkup: common.MainMenu(lang),
		})

	case NavQuiz:
		common.EditOrSend(ctx, b, chatID, messageID, i18n.T(lang, "test_intro"), "", nil)
		h.Sessions.Set(telegramID, state.Session{
			State: state.StateAwaitingQuizAnswer,
			Lang:  lang,
		})
		AskQuizQuestion(ctx, b, h, chatID, telegramID)

	case NavContact:
		showContact(ctx, b, h, chatID, messageID, lang)
	}
}

// sendLocation отправляет точку на карте и ссылку на Google Maps
func sendLocation(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, lang i18n.Lang) {
	_, err := b.SendLocation(ctx, &bot.SendLocationParams{
		ChatID:    chatID,
		Latitude:  venueLatitude,
		Longitude: venueLongitude,
	})
	if err != nil {
		h.Logger.Error("Failed to send location", zap.Error(err))
	}

	mapsLink := fmt.Sprintf("https://maps.app.goo.gl/6CfCKHuA9mwp4m5C9?q=%f,%f", venueLatitude, venueLongitude)
	text := fmt.Sprintf("%s\n[%s](%s)", i18n.T(lang, "loc_here"), i18n.T(lang, "loc_open"), mapsLink)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: common.MainMenu(lang),
	})
}

// showContact карточка с контактами администрации
func showContact(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, messageID int, lang i18n.Lang) {
	var sb strings.Builder

	sb.WriteString(i18n.T(lang, "contact_title") + "\n\n")
	sb.WriteString(i18n.T(lang, "contact_body") + "\n\n")

	username := strings.TrimPrefix(h.Cfg.AdminUsername, "@")
	if username != "" {
		sb.WriteString(fmt.Sprintf("👤 Telegram: [@%s](https://t.me/%s)\n", username, username))
	}
	for i, phone := range contactPhones {
		sb.WriteString(fmt.Sprintf("📱 Телефон %d: [%s](tel:%s)\n", i+1, phone, strings.TrimPrefix(phone, "+")))
	}

	sb.WriteString("\n" + i18n.T(lang, "contact_footer"))

	common.EditOrSend(ctx, b, chatID, messageID, sb.String(), models.ParseModeMarkdown,
		common.BackTo(lang, fmt.Sprintf("lang_%s", lang)))
}

// showCabinet личный кабинет: имя, телефон, курс и расписание
func showCabinet(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, callback *models.CallbackQuery, chatID int64, messageID int, lang i18n.Lang) {
	profile, err := h.UserService.GetProfile(ctx, callback.From.ID)
	if err != nil {
		h.Logger.Error("Failed to get profile",
			zap.Error(err),
			zap.Int64("telegram_id", callback.From.ID))
		return
	}

	if profile == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        i18n.T(lang, "not_registered"),
			ReplyMarkup: common.MainMenu(lang),
		})
		return
	}

	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "cab_title") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n", i18n.T(lang, "cab_name"), profile.FullName))
	sb.WriteString(fmt.Sprintf("%s: %s\n", i18n.T(lang, "cab_phone"), profile.Phone))

	if profile.CourseKey != nil && catalog.Valid(*profile.CourseKey) {
		sb.WriteString(fmt.Sprintf("\n%s <b>%s</b>\n", i18n.T(lang, "cab_course"), catalog.Name(*profile.CourseKey, lang)))

		// Показываем расписание первого преподавателя направления
		if items := catalog.Items(*profile.CourseKey, lang); len(items) > 0 {
			sb.WriteString(fmt.Sprintf("%s\n<pre>%s</pre>", i18n.T(lang, "schedule_header"), items[0].Schedule))
		} else {
			sb.WriteString(i18n.T(lang, "cab_no_schedule"))
		}
	} else {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", i18n.T(lang, "cab_course"), i18n.T(lang, "cab_not_selected")))
		sb.WriteString(i18n.T(lang, "cab_select_prompt"))
	}

	kb := common.BackTo(lang, fmt.Sprintf("lang_%s", lang))
	kb.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{{Text: i18n.T(lang, "cab_edit"), CallbackData: fmt.Sprintf("nav_reg_%s", lang)}}},
		kb.InlineKeyboard...,
	)

	common.EditOrSend(ctx, b, chatID, messageID, sb.String(), models.ParseModeHTML, kb)
}

// chatAndMessage достаёт chat ID и message ID из callback.
// Если исходное сообщение недоступно, правка невозможна и
// messageID == 0 заставит EditOrSend отправить новое сообщение.
func chatAndMessage(callback *models.CallbackQuery, msg *models.Message) (int64, int) {
	if msg != nil {
		return msg.Chat.ID, msg.ID
	}
	return callback.From.ID, 0
}
