package callbacks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomyssd/dino-club/internal/controller/state"
	"github.com/atomyssd/dino-club/internal/i18n"
	"github.com/atomyssd/dino-club/internal/quiz"
)

func newQuizSession() state.Session {
	return state.Session{State: state.StateAwaitingQuizAnswer, Lang: i18n.LangRU}
}

func TestQuizAllCorrectRunScoresMaximum(t *testing.T) {
	session := newQuizSession()

	for i := 0; i < quiz.Len(); i++ {
		q, ok := quiz.Get(i)
		require.True(t, ok)

		var verdict string
		var accepted bool
		session, verdict, accepted = applyQuizAnswer(session, i, q.Correct)
		require.True(t, accepted, "question %d", i)
		assert.Contains(t, verdict, "✅", "question %d", i)
	}

	assert.Equal(t, quiz.Len(), session.QuizScore)
	assert.Equal(t, quiz.Len(), session.QuizIndex)
}

func TestQuizAllWrongRunScoresZero(t *testing.T) {
	session := newQuizSession()

	for i := 0; i < quiz.Len(); i++ {
		q, ok := quiz.Get(i)
		require.True(t, ok)

		wrong := (q.Correct + 1) % len(q.Options)
		var verdict string
		var accepted bool
		session, verdict, accepted = applyQuizAnswer(session, i, wrong)
		require.True(t, accepted, "question %d", i)
		assert.Contains(t, verdict, "❌", "question %d", i)
		// Вердикт показывает правильный вариант
		assert.Contains(t, verdict, q.Options[q.Correct], "question %d", i)
	}

	assert.Zero(t, session.QuizScore)
	assert.Equal(t, quiz.Len(), session.QuizIndex)
}

func TestQuizStaleTapDoesNotChangeScore(t *testing.T) {
	session := newQuizSession()
	session.QuizIndex = 5
	session.QuizScore = 3

	// Нажатие на клавиатуру уже отвеченного вопроса
	q, ok := quiz.Get(4)
	require.True(t, ok)
	updated, verdict, accepted := applyQuizAnswer(session, 4, q.Correct)

	assert.False(t, accepted)
	assert.Empty(t, verdict)
	assert.Equal(t, session, updated)

	// Нажатие "из будущего" тоже не принимается
	_, _, accepted = applyQuizAnswer(session, 6, 0)
	assert.False(t, accepted)
}

func TestQuizAnswerOutsideOfQuizIgnored(t *testing.T) {
	session := state.Session{State: state.StateAwaitingName, Lang: i18n.LangRU}

	updated, _, accepted := applyQuizAnswer(session, 0, 1)
	assert.False(t, accepted)
	assert.Equal(t, session, updated)
}

func TestQuizOutOfRangeAnswerCountsAsWrong(t *testing.T) {
	session := newQuizSession()

	updated, verdict, accepted := applyQuizAnswer(session, 0, 99)
	require.True(t, accepted)
	assert.Zero(t, updated.QuizScore)
	assert.Equal(t, 1, updated.QuizIndex)
	assert.True(t, strings.Contains(verdict, "❌"))
}
