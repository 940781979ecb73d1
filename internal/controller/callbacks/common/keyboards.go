package common

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/atomyssd/dino-club/internal/catalog"
	"github.com/atomyssd/dino-club/internal/controller/callbacks/common/keyboard"
	"github.com/atomyssd/dino-club/internal/i18n"
)

// Клавиатуры бота. Форматы callback data совместимы с кнопками,
// выданными предыдущими версиями бота, менять их нельзя.

// LangPicker клавиатура выбора языка
func LangPicker() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("🇷🇺 Русский", "lang_ru"),
			keyboard.Button("🇺🇿 O'zbek", "lang_uzb"),
		).
		Build()
}

// MainMenu главное меню на выбранном языке
func MainMenu(lang i18n.Lang) *models.InlineKeyboardMarkup {
	t := func(key string) string { return i18n.T(lang, key) }

	return keyboard.NewBuilder().
		Row(keyboard.Button(t("sub"), fmt.Sprintf("nav_sub_%s", lang))).
		Row(
			keyboard.Button(t("reg"), fmt.Sprintf("nav_reg_%s", lang)),
			keyboard.Button(t("cab"), fmt.Sprintf("nav_cab_%s", lang)),
		).
		Row(
			keyboard.Button(t("loc"), fmt.Sprintf("nav_loc_%s", lang)),
			keyboard.Button(t("res"), fmt.Sprintf("nav_res_%s", lang)),
		).
		Row(
			keyboard.Button(t("tst"), fmt.Sprintf("nav_tst_%s", lang)),
			keyboard.Button(t("ask"), fmt.Sprintf("nav_ask_%s", lang)),
		).
		Row(keyboard.Button(t("contact"), fmt.Sprintf("nav_contact_%s", lang))).
		Build()
}

// CourseCategories список направлений для просмотра расписаний
func CourseCategories(lang i18n.Lang) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()
	for _, key := range catalog.Keys() {
		kb.Row(keyboard.Button(catalog.Name(key, lang), fmt.Sprintf("cat_%s_%s", key, lang)))
	}
	kb.Row(keyboard.Button(i18n.T(lang, "back"), fmt.Sprintf("lang_%s", lang)))
	return kb.Build()
}

// RegCourseList список направлений для записи на курс
func RegCourseList(lang i18n.Lang) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()
	for _, key := range catalog.Keys() {
		kb.Row(keyboard.Button(catalog.Name(key, lang), fmt.Sprintf("reg_course_%s_%s", key, lang)))
	}
	return kb.Build()
}

// CategoryTeachers преподаватели направления
func CategoryTeachers(courseKey string, lang i18n.Lang) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()
	for i, t := range catalog.Items(courseKey, lang) {
		kb.Row(keyboard.Button(
			fmt.Sprintf("👨‍🏫 %s", t.Short),
			fmt.Sprintf("det_%s_%d_%s", courseKey, i, lang),
		))
	}
	kb.Row(keyboard.Button(i18n.T(lang, "back"), fmt.Sprintf("nav_sub_%s", lang)))
	return kb.Build()
}

// BackTo одна кнопка "Назад" с произвольным callback
func BackTo(lang i18n.Lang, callbackData string) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button(i18n.T(lang, "back"), callbackData)).
		Build()
}

// AdminMain главная админ-клавиатура
func AdminMain() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("👥 Все пользователи", "admin_users_list"),
			keyboard.Button("❓ Все вопросы", "admin_questions_list"),
		).
		Row(keyboard.Button("📢 Рассылка", "admin_broadcast")).
		Row(
			keyboard.Button("❌ Удалить все вопросы", "admin_delete_questions"),
			keyboard.Button("❌ Удалить всех пользователей", "admin_delete_users"),
		).
		Row(keyboard.Button("🔄 Главное меню бота", "lang_ru")).
		Build()
}

// AdminReply кнопка перехода в режим ответа пользователю
func AdminReply(targetUserID int64) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("➡️ Ответить", fmt.Sprintf("admin_reply_%d", targetUserID))).
		Build()
}

// AdminCancel отмена текущего админского диалога, возврат в панель
func AdminCancel() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("❌ Отмена", "admin_panel")).
		Build()
}

// ConfirmDeleteUsers подтверждение удаления всех пользователей
func ConfirmDeleteUsers() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("💣 Подтвердить удаление пользователей", "admin_delete_users_confirm")).
		Row(keyboard.Button("⬅️ Отмена", "admin_panel")).
		Build()
}

// ConfirmDeleteQuestions подтверждение удаления всех вопросов
func ConfirmDeleteQuestions() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("💣 Подтвердить удаление вопросов", "admin_delete_questions_confirm")).
		Row(keyboard.Button("⬅️ Отмена", "admin_panel")).
		Build()
}
