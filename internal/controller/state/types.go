package state

import "github.com/atomyssd/dino-club/internal/i18n"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния регистрации
	StateAwaitingName   UserState = "awaiting_name"
	StateAwaitingPhone  UserState = "awaiting_phone"
	StateAwaitingCourse UserState = "awaiting_course_selection"

	// Приём вопроса
	StateAwaitingQuestion UserState = "awaiting_question"

	// Тест
	StateAwaitingQuizAnswer UserState = "awaiting_quiz_answer"

	// Админские диалоги
	StateAwaitingBroadcast  UserState = "awaiting_broadcast_text"
	StateAwaitingAdminReply UserState = "awaiting_admin_reply_text"
)

// Session данные одного диалога. Поля заполняются только в тех
// состояниях, где они осмысленны: Name — после шага ФИО,
// TargetUserID — в режиме ответа администратора, QuizScore/QuizIndex —
// во время теста. Язык обязателен в любом активном состоянии.
type Session struct {
	State UserState
	Lang  i18n.Lang

	Name         string // ФИО, введённое на шаге регистрации
	TargetUserID int64  // получатель ответа администратора
	QuizScore    int
	QuizIndex    int
}

// Store абстракция хранилища сессий по ключу чата.
// Текущая реализация in-memory и однопроцессная, теряется при рестарте;
// интерфейс позволяет позже подставить долговременное хранилище,
// не трогая логику диалогов.
type Store interface {
	Get(telegramID int64) Session
	Set(telegramID int64, s Session)
	Clear(telegramID int64)
}
