// Package catalog содержит статический каталог направлений центра:
// названия курсов и расписания преподавателей на двух языках.
// Это данные продукта, они меняются только вместе с кодом.
package catalog

import "github.com/atomyssd/dino-club/internal/i18n"

// Teacher запись о преподавателе внутри направления
type Teacher struct {
	Short    string // короткое имя для кнопки
	FullName string
	Schedule string
}

// course локализованное описание направления
type course struct {
	Name  string
	Items []Teacher
}

// keys фиксированный порядок направлений в меню
var keys = []string{"english", "math", "russian", "pochemuchka", "gymnastics", "choreography"}

var courses = map[string]map[i18n.Lang]course{
	"english": {
		i18n.LangRU: {Name: "🇬🇧 Английский", Items: []Teacher{
			{Short: "Дина Р.", FullName: "Дина Рустамовна",
				Schedule: "• Общий курс: Пн/Ср/Пт: 09:30, 14:00, 15:30\n• Общий курс: Вт/Чт/Сб: 09:30, 14:00, 15:30\n• Взрослые: Вечернее время (по договору)"},
			{Short: "Алина А.", FullName: "Алина Алексеевна",
				Schedule: "• 5-7 лет: Пн/Ср/Пт 16:30\n• 2-4 классы: Пн/Ср/Пт 14:00\n• 3-4 классы: Вт/Чт/Сб 09:30"},
			{Short: "IELTS", FullName: "Ширин Рустамовна",
				Schedule: "• 10-11 классы: Пн/Ср/Пт (время уточняется)"},
			{Short: "Икболой", FullName: "Икболой",
				Schedule: "• 4-6 классы: Пн, Ср, Пт 09:00"},
			{Short: "Дилафруз Ф.", FullName: "Дилафруз Фархадовна",
				Schedule: "• 3-4 классы: Вт/Чт/Сб 08:30 и 13:30\n• 5-6 классы: Вт/Чт/Сб 15:00"},
		}},
		i18n.LangUZ: {Name: "🇬🇧 Ingliz tili", Items: []Teacher{
			{Short: "Dina R.", FullName: "Dina Rustamovna",
				Schedule: "• Umumiy kurs: Du/Cho/Ju: 09:30, 14:00, 15:30\n• Umumiy kurs: Se/Pay/Sha: 09:30, 14:00, 15:30\n• Katta yoshdagilar: Kechki vaqt (so'rov bo'yicha)"},
			{Short: "Alina A.", FullName: "Alina Alekseevna",
				Schedule: "• 5-7 yosh: Du/Cho/Ju 16:30\n• 2-4 sinf: Du/Cho/Ju 14:00\n• 3-4 sinf: Se/Pay/Sha 09:30"},
			{Short: "IELTS", FullName: "Shirin Rustamovna",
				Schedule: "• 10-11 sinf: Du/Cho/Ju (vaqt aniqlanadi)"},
			{Short: "Iqboloy", FullName: "Iqboloy",
				Schedule: "• 4-6 sinf: Du, Cho, Ju 09:00"},
			{Short: "Dilafruz F.", FullName: "Dilafruz Farxadovna",
				Schedule: "• 3-4 sinf: Se/Pay/Sha 08:30 va 13:30\n• 5-6 sinf: Se/Pay/Sha 15:00"},
		}},
	},
	"math": {
		i18n.LangRU: {Name: "📐 Математика", Items: []Teacher{
			{Short: "Юрий С.", FullName: "Юрий С.",
				Schedule: "• 6-11 классы: Вт, Чт 14:00-16:00\n• 2-5 классы: Ср, Сб 14:00-16:00"},
		}},
		i18n.LangUZ: {Name: "📐 Matematika", Items: []Teacher{
			{Short: "Yuriy S.", FullName: "Yuriy S.",
				Schedule: "• 6-11 sinf: Se, Pay 14:00-16:00\n• 2-5 sinf: Cho, Sha 14:00-16:00"},
		}},
	},
	"russian": {
		i18n.LangRU: {Name: "🇷🇺 Русский", Items: []Teacher{
			{Short: "Зарина А.", FullName: "Зарина А.",
				Schedule: "• Групповые занятия (Индивидуально): 16:00"},
		}},
		i18n.LangUZ: {Name: "🇷🇺 Rus tili", Items: []Teacher{
			{Short: "Zarina A.", FullName: "Zarina A.",
				Schedule: "• Gruppa darslar (Individual): 16:00"},
		}},
	},
	"pochemuchka": {
		i18n.LangRU: {Name: "👶 Почемучка", Items: []Teacher{
			{Short: "Почемучка", FullName: "Алие Ш.",
				Schedule: "• Подготовка к школе (русский язык) (5-7 лет): Пн, Ср, Пт 16:30"},
		}},
		i18n.LangUZ: {Name: "👶 Pochemuchka", Items: []Teacher{
			{Short: "Pochemuchka", FullName: "Aliye Sh.",
				Schedule: "• Maktabga tayyorlash (Rus Tili) (5-6 yosh): Du, Cho, Ju 16:30"},
		}},
	},
	"gymnastics": {
		i18n.LangRU: {Name: "🤸 ГИМНАСТИКА", Items: []Teacher{
			{Short: "Уточняется", FullName: "Тренер",
				Schedule: "• Вт, Чт, Сб: время уточняется"},
		}},
		i18n.LangUZ: {Name: "🤸 GIMNASTIKA", Items: []Teacher{
			{Short: "Anıqlanadi", FullName: "Trener",
				Schedule: "• Se, Pay, Sha: vaqti aniqlanadi"},
		}},
	},
	"choreography": {
		i18n.LangRU: {Name: "💃 ХОРЕОГРАФИЯ", Items: []Teacher{
			{Short: "Уточняется", FullName: "Тренер",
				Schedule: "• Даты и время уточняются"},
		}},
		i18n.LangUZ: {Name: "💃 XOREOGRAFIYA", Items: []Teacher{
			{Short: "Anıqlanadi", FullName: "Trener",
				Schedule: "• Sanalar va vaqtlar aniqlanadi"},
		}},
	},
}

// Keys возвращает ключи направлений в порядке отображения в меню
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Valid проверяет что ключ входит в закрытый набор направлений
func Valid(key string) bool {
	_, ok := courses[key]
	return ok
}

// Name возвращает локализованное название направления
func Name(key string, lang i18n.Lang) string {
	if c, ok := courses[key]; ok {
		return c[lang].Name
	}
	return key
}

// Items возвращает преподавателей направления с расписаниями
func Items(key string, lang i18n.Lang) []Teacher {
	if c, ok := courses[key]; ok {
		return c[lang].Items
	}
	return nil
}
