package i18n

// Lang код языка интерфейса
type Lang string

const (
	LangRU Lang = "ru"
	LangUZ Lang = "uzb"
)

// Valid проверяет что код языка из закрытого набора
func (l Lang) Valid() bool {
	return l == LangRU || l == LangUZ
}

// strings каталог текстов интерфейса по языкам.
// Ключи одинаковые для обоих языков, тексты захардкожены намеренно —
// это данные продукта, а не логика.
var strings = map[Lang]map[string]string{
	LangRU: {
		"menu":    "Выберите действие:",
		"sub":     "📚 Курсы",
		"reg":     "📞 Регистрация",
		"cab":     "👤 Кабинет",
		"ask":     "❓ Вопрос",
		"loc":     "📍 Локация",
		"res":     "🏆 Результаты",
		"tst":     "📝 Тест",
		"back":    "⬅️ Назад",
		"cat":     "Направление:",
		"tel":     "Введите телефон (например: +998901234567):",
		"tel_error": "❌ Неверный формат телефона. Пожалуйста, введите корректный номер, " +
			"например: +998901234567",
		"saved":           "✅ Сохранено!",
		"select_course":   "Выберите направление для записи:",
		"contact":         "📞 Связь",
		"fio_msg_new":     "Введите Ваше полное ФИО для первичной регистрации и записи на курс:",
		"schedule_header": "Обзор расписания по курсу:",
		"reg_complete":    "Регистрация завершена! Вы записаны на курс:",
		"reg_data_saved":  "Ваши данные сохранены. Теперь выберите курс.",
		"ask_prompt":      "❓ Введите ваш вопрос:",
		"ask_done":        "✅ OK! Ваш вопрос передан администратору.",
		"res_soon":        "🏆 Результаты учеников и достижения: скоро здесь!",
		"cab_title":       "👤 <b>Ваш Личный Кабинет</b>",
		"cab_name":        "Имя",
		"cab_phone":       "Телефон",
		"cab_course":      "Ваш курс:",
		"cab_not_selected": "❌ Не выбран",
		"cab_select_prompt": "Для выбора курса нажмите '✏️ Изменить данные/курс'.",
		"cab_edit":          "✏️ Изменить данные/курс",
		"cab_no_schedule":   "Расписание пока не найдено.",
		"not_registered":    "❌ Вы еще не зарегистрированы. Нажмите '📞 Регистрация'.",
		"test_intro": "📝 Начинаем тест на определение уровня английского языка!\n\n" +
			"Выберите один правильный вариант ответа.",
		"test_done":       "✨ Тест завершен! ✨",
		"test_score":      "Ваш результат",
		"test_level":      "Ваш уровень",
		"test_compliment": "Отличный результат!",
		"test_footer":     "Для записи на курс нажмите '📞 Регистрация' в главном меню.",
		"loc_here":        "📍 Мы находимся здесь:",
		"loc_open":        "Открыть в Google Maps",
		"contact_title":   "📞 Связь с администрацией DINO CLUB",
		"contact_body":    "По всем вопросам записи, расписания и оплаты:",
		"contact_footer":  "Мы рады вам помочь!",
		"teacher":         "Преподаватель",
		"schedule":        "⏰ Расписание и классы:",
		"cat_empty":       "По направлению %s пока нет данных. Выберите другое направление.",
	},
	LangUZ: {
		"menu":    "Harakatni tanlang:",
		"sub":     "📚 Kurslar",
		"reg":     "📞 Ro'yxatdan o'tish",
		"cab":     "👤 Kabinet",
		"ask":     "❓ Savol",
		"loc":     "📍 Manzil",
		"res":     "🏆 Natijalar",
		"tst":     "📝 Test",
		"back":    "⬅️ Orqaga",
		"cat":     "Yo’nalish:",
		"tel":     "Telefonni kiriting (masalan: +998901234567):",
		"tel_error": "❌ Noto'g'ri telefon formati. Iltimos, to'g'ri raqam kiriting, " +
			"masalan: +998901234567",
		"saved":           "✅ Saqlandi!",
		"select_course":   "Ro'yxatdan o'tish uchun kursni tanlang:",
		"contact":         "📞 Kontakt",
		"fio_msg_new":     "Boshlang'ich ro'yxatdan o'tish va kursga yozilish uchun to'liq F.I.SH.ingizni kiriting:",
		"schedule_header": "Kurs bo'yicha dars jadvali:",
		"reg_complete":    "Ro'yxatdan o'tish yakunlandi! Siz kursga yozildingiz:",
		"reg_data_saved":  "Ma'lumotlaringiz saqlandi. Endi kursni tanlang.",
		"ask_prompt":      "❓ Savolingizni kiriting:",
		"ask_done":        "✅ OK! Savolingiz administratorga yuborildi.",
		"res_soon":        "🏆 O'quvchilar natijalari va yutuqlari: tez orada shu yerda bo'ladi!",
		"cab_title":       "👤 <b>Sizning shaxsiy kabinetingiz</b>",
		"cab_name":        "Ism",
		"cab_phone":       "Telefon",
		"cab_course":      "Sizning kursingiz:",
		"cab_not_selected": "❌ Tanlanmagan",
		"cab_select_prompt": "Kursni tanlash uchun '✏️ Ma'lumotlarni/kursni o'zgartirish' tugmasini bosing.",
		"cab_edit":          "✏️ Ma'lumotlarni/kursni o'zgartirish",
		"cab_no_schedule":   "Dars jadvali topilmadi.",
		"not_registered":    "❌ Siz hali ro'yxatdan o'tmagansiz. '📞 Ro'yxatdan o'tish' tugmasini bosing.",
		"test_intro": "📝 Ingliz tili darajasini aniqlash testini boshlaymiz!\n\n" +
			"Bitta to'g'ri javobni tanlang.",
		"test_done":       "✨ Test yakunlandi! ✨",
		"test_score":      "Sizning natijangiz",
		"test_level":      "Sizning darajangiz",
		"test_compliment": "Ajoyib natija!",
		"test_footer":     "Kursga yozilish uchun bosh menyuda '📞 Ro'yxatdan o'tish' tugmasini bosing.",
		"loc_here":        "📍 Biz bu yerda joylashganmiz:",
		"loc_open":        "Google Xaritada ochish",
		"contact_title":   "📞 DINO CLUB ma'muriyati bilan bog'lanish",
		"contact_body":    "Ro'yxatdan o'tish, dars jadvali va to'lov masalalari bo'yicha:",
		"contact_footer":  "Sizga yordam berishdan mamnunmiz!",
		"teacher":         "O'qituvchi",
		"schedule":        "⏰ Dars jadvali va sinflar:",
		"cat_empty":       "%s yo'nalishi bo'yicha ma'lumot yo'q. Boshqa yo'nalishni tanlang.",
	},
}

// T возвращает текст по ключу для указанного языка.
// Неизвестный ключ — ошибка программиста, возвращаем сам ключ чтобы
// проблему было видно в интерфейсе, а не в панике.
func T(lang Lang, key string) string {
	if !lang.Valid() {
		lang = LangRU
	}
	if s, ok := strings[lang][key]; ok {
		return s
	}
	return key
}
