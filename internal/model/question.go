package model

// Question вопрос пользователя администрации
type Question struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Text     string `json:"text"`
	Date     string `json:"date"`      // локальное время на момент вставки, "2006-01-02 15:04:05"
	UserName string `json:"user_name"` // имя из users, пустое если пользователь не зарегистрирован
}
