package callbacks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomyssd/dino-club/internal/i18n"
)

// Callback data разбирается один раз на границе роутера в типизированное
// значение; дальше система работает с enum и полями, а не со строками.
// Сами форматы payload совместимы с ранее выданными клавиатурами.

// Action тип нажатой кнопки
type Action int

const (
	ActionUnknown Action = iota
	ActionIgnore         // декоративная кнопка, ничего не делает

	ActionLang       // lang_{ru|uzb}
	ActionNav        // nav_{act}_{lang}
	ActionCategory   // cat_{key}_{lang}
	ActionDetails    // det_{key}_{idx}_{lang}
	ActionRegCourse  // reg_course_{key}_{lang}
	ActionQuizAnswer // test_ans_{q}_{a}_{lang}

	ActionAdminPanel
	ActionAdminUsersList
	ActionAdminQuestionsList
	ActionAdminBroadcast
	ActionAdminDeleteUsers
	ActionAdminDeleteUsersConfirm
	ActionAdminDeleteQuestions
	ActionAdminDeleteQuestionsConfirm
	ActionAdminReply // admin_reply_{id}
)

// AdminOnly отмечает действия, доступные только администраторам
func (a Action) AdminOnly() bool {
	switch a {
	case ActionAdminPanel, ActionAdminUsersList, ActionAdminQuestionsList,
		ActionAdminBroadcast, ActionAdminDeleteUsers, ActionAdminDeleteUsersConfirm,
		ActionAdminDeleteQuestions, ActionAdminDeleteQuestionsConfirm, ActionAdminReply:
		return true
	}
	return false
}

// NavTarget пункт главного меню
type NavTarget string

const (
	NavCourses  NavTarget = "sub"
	NavRegister NavTarget = "reg"
	NavCabinet  NavTarget = "cab"
	NavAsk      NavTarget = "ask"
	NavLocation NavTarget = "loc"
	NavResults  NavTarget = "res"
	NavQuiz     NavTarget = "tst"
	NavContact  NavTarget = "contact"
)

func (n NavTarget) valid() bool {
	switch n {
	case NavCourses, NavRegister, NavCabinet, NavAsk, NavLocation, NavResults, NavQuiz, NavContact:
		return true
	}
	return false
}

// Callback разобранный payload кнопки
type Callback struct {
	Action Action
	Lang   i18n.Lang
	Nav    NavTarget

	CourseKey string
	ItemIndex int // индекс преподавателя внутри направления

	QuestionIndex int
	AnswerIndex   int

	TargetUserID int64 // получатель ответа администратора
}

// Decode разбирает callback data в типизированное значение.
// Неизвестный формат — ошибка: роутер такие события молча отбрасывает.
func Decode(data string) (Callback, error) {
	switch {
	case data == "ignore":
		return Callback{Action: ActionIgnore}, nil

	case data == "admin_panel":
		return Callback{Action: ActionAdminPanel}, nil
	case data == "admin_users_list":
		return Callback{Action: ActionAdminUsersList}, nil
	case data == "admin_questions_list":
		return Callback{Action: ActionAdminQuestionsList}, nil
	case data == "admin_broadcast":
		return Callback{Action: ActionAdminBroadcast}, nil
	case data == "admin_delete_users":
		return Callback{Action: ActionAdminDeleteUsers}, nil
	case data == "admin_delete_users_confirm":
		return Callback{Action: ActionAdminDeleteUsersConfirm}, nil
	case data == "admin_delete_questions":
		return Callback{Action: ActionAdminDeleteQuestions}, nil
	case data == "admin_delete_questions_confirm":
		return Callback{Action: ActionAdminDeleteQuestionsConfirm}, nil

	case strings.HasPrefix(data, "admin_reply_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "admin_reply_"), 10, 64)
		if err != nil {
			return Callback{}, fmt.Errorf("invalid admin_reply target: %w", err)
		}
		return Callback{Action: ActionAdminReply, TargetUserID: id}, nil

	case strings.HasPrefix(data, "lang_"):
		lang := i18n.Lang(strings.TrimPrefix(data, "lang_"))
		if !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid language in %q", data)
		}
		return Callback{Action: ActionLang, Lang: lang}, nil

	case strings.HasPrefix(data, "nav_"):
		parts := strings.Split(data, "_")
		if len(parts) != 3 {
			return Callback{}, fmt.Errorf("invalid nav payload %q", data)
		}
		nav, lang := NavTarget(parts[1]), i18n.Lang(parts[2])
		if !nav.valid() || !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid nav payload %q", data)
		}
		return Callback{Action: ActionNav, Nav: nav, Lang: lang}, nil

	case strings.HasPrefix(data, "reg_course_"):
		parts := strings.Split(strings.TrimPrefix(data, "reg_course_"), "_")
		if len(parts) != 2 {
			return Callback{}, fmt.Errorf("invalid reg_course payload %q", data)
		}
		lang := i18n.Lang(parts[1])
		if !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid reg_course payload %q", data)
		}
		return Callback{Action: ActionRegCourse, CourseKey: parts[0], Lang: lang}, nil

	case strings.HasPrefix(data, "cat_"):
		parts := strings.Split(data, "_")
		if len(parts) != 3 {
			return Callback{}, fmt.Errorf("invalid cat payload %q", data)
		}
		lang := i18n.Lang(parts[2])
		if !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid cat payload %q", data)
		}
		return Callback{Action: ActionCategory, CourseKey: parts[1], Lang: lang}, nil

	case strings.HasPrefix(data, "det_"):
		parts := strings.Split(data, "_")
		if len(parts) != 4 {
			return Callback{}, fmt.Errorf("invalid det payload %q", data)
		}
		idx, err := strconv.Atoi(parts[2])
		if err != nil {
			return Callback{}, fmt.Errorf("invalid det index: %w", err)
		}
		lang := i18n.Lang(parts[3])
		if !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid det payload %q", data)
		}
		return Callback{Action: ActionDetails, CourseKey: parts[1], ItemIndex: idx, Lang: lang}, nil

	case strings.HasPrefix(data, "test_ans_"):
		parts := strings.Split(strings.TrimPrefix(data, "test_ans_"), "_")
		if len(parts) != 3 {
			return Callback{}, fmt.Errorf("invalid test_ans payload %q", data)
		}
		qIdx, err := strconv.Atoi(parts[0])
		if err != nil {
			return Callback{}, fmt.Errorf("invalid question index: %w", err)
		}
		aIdx, err := strconv.Atoi(parts[1])
		if err != nil {
			return Callback{}, fmt.Errorf("invalid answer index: %w", err)
		}
		lang := i18n.Lang(parts[2])
		if !lang.Valid() {
			return Callback{}, fmt.Errorf("invalid test_ans payload %q", data)
		}
		return Callback{Action: ActionQuizAnswer, QuestionIndex: qIdx, AnswerIndex: aIdx, Lang: lang}, nil
	}

	return Callback{}, fmt.Errorf("unknown callback data %q", data)
}
