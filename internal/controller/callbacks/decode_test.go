package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomyssd/dino-club/internal/i18n"
)

func TestDecodeLang(t *testing.T) {
	cb, err := Decode("lang_ru")
	require.NoError(t, err)
	assert.Equal(t, ActionLang, cb.Action)
	assert.Equal(t, i18n.LangRU, cb.Lang)

	cb, err = Decode("lang_uzb")
	require.NoError(t, err)
	assert.Equal(t, i18n.LangUZ, cb.Lang)

	_, err = Decode("lang_en")
	assert.Error(t, err)
}

func TestDecodeNav(t *testing.T) {
	cb, err := Decode("nav_sub_ru")
	require.NoError(t, err)
	assert.Equal(t, ActionNav, cb.Action)
	assert.Equal(t, NavCourses, cb.Nav)
	assert.Equal(t, i18n.LangRU, cb.Lang)

	cb, err = Decode("nav_contact_uzb")
	require.NoError(t, err)
	assert.Equal(t, NavContact, cb.Nav)

	_, err = Decode("nav_xyz_ru")
	assert.Error(t, err)
	_, err = Decode("nav_sub_en")
	assert.Error(t, err)
	_, err = Decode("nav_sub")
	assert.Error(t, err)
}

func TestDecodeCategoryAndDetails(t *testing.T) {
	cb, err := Decode("cat_english_ru")
	require.NoError(t, err)
	assert.Equal(t, ActionCategory, cb.Action)
	assert.Equal(t, "english", cb.CourseKey)

	cb, err = Decode("det_english_2_uzb")
	require.NoError(t, err)
	assert.Equal(t, ActionDetails, cb.Action)
	assert.Equal(t, "english", cb.CourseKey)
	assert.Equal(t, 2, cb.ItemIndex)
	assert.Equal(t, i18n.LangUZ, cb.Lang)

	_, err = Decode("det_english_x_ru")
	assert.Error(t, err)
}

func TestDecodeRegCourse(t *testing.T) {
	cb, err := Decode("reg_course_math_ru")
	require.NoError(t, err)
	assert.Equal(t, ActionRegCourse, cb.Action)
	assert.Equal(t, "math", cb.CourseKey)
	assert.Equal(t, i18n.LangRU, cb.Lang)

	_, err = Decode("reg_course_math")
	assert.Error(t, err)
}

func TestDecodeQuizAnswer(t *testing.T) {
	cb, err := Decode("test_ans_7_3_ru")
	require.NoError(t, err)
	assert.Equal(t, ActionQuizAnswer, cb.Action)
	assert.Equal(t, 7, cb.QuestionIndex)
	assert.Equal(t, 3, cb.AnswerIndex)

	_, err = Decode("test_ans_a_b_ru")
	assert.Error(t, err)
}

func TestDecodeAdmin(t *testing.T) {
	tests := map[string]Action{
		"admin_panel":                    ActionAdminPanel,
		"admin_users_list":               ActionAdminUsersList,
		"admin_questions_list":           ActionAdminQuestionsList,
		"admin_broadcast":                ActionAdminBroadcast,
		"admin_delete_users":             ActionAdminDeleteUsers,
		"admin_delete_users_confirm":     ActionAdminDeleteUsersConfirm,
		"admin_delete_questions":         ActionAdminDeleteQuestions,
		"admin_delete_questions_confirm": ActionAdminDeleteQuestionsConfirm,
	}

	for data, action := range tests {
		cb, err := Decode(data)
		require.NoError(t, err, data)
		assert.Equal(t, action, cb.Action, data)
		assert.True(t, cb.Action.AdminOnly(), data)
	}
}

func TestDecodeAdminReply(t *testing.T) {
	cb, err := Decode("admin_reply_123456789")
	require.NoError(t, err)
	assert.Equal(t, ActionAdminReply, cb.Action)
	assert.Equal(t, int64(123456789), cb.TargetUserID)
	assert.True(t, cb.Action.AdminOnly())

	_, err = Decode("admin_reply_abc")
	assert.Error(t, err)
}

func TestDecodeIgnoreAndUnknown(t *testing.T) {
	cb, err := Decode("ignore")
	require.NoError(t, err)
	assert.Equal(t, ActionIgnore, cb.Action)

	_, err = Decode("")
	assert.Error(t, err)
	_, err = Decode("something_else")
	assert.Error(t, err)
}

func TestUserActionsAreNotAdminOnly(t *testing.T) {
	for _, a := range []Action{ActionIgnore, ActionLang, ActionNav, ActionCategory, ActionDetails, ActionRegCourse, ActionQuizAnswer} {
		assert.False(t, a.AdminOnly())
	}
}
