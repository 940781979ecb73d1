package model

// User зарегистрированный пользователь бота
type User struct {
	TelegramID int64  `json:"telegram_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
}

// Profile данные личного кабинета: пользователь + выбранный курс (если есть)
type Profile struct {
	FullName  string  `json:"full_name"`
	Phone     string  `json:"phone"`
	CourseKey *string `json:"course_key"` // nil если курс не выбран
}
