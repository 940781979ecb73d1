package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	assert.Equal(t, 15, Len())
}

func TestGet(t *testing.T) {
	q, ok := Get(0)
	require.True(t, ok)
	assert.Equal(t, "My sister ____ at home now.", q.Prompt)
	assert.Len(t, q.Options, 4)

	_, ok = Get(-1)
	assert.False(t, ok)

	_, ok = Get(Len())
	assert.False(t, ok)
}

func TestIsCorrect(t *testing.T) {
	// Первый вопрос: правильный вариант "is" под индексом 1
	assert.True(t, IsCorrect(0, 1))
	assert.False(t, IsCorrect(0, 0))
	assert.False(t, IsCorrect(0, 2))

	// Вне диапазона — всегда неверно
	assert.False(t, IsCorrect(-1, 0))
	assert.False(t, IsCorrect(Len(), 0))
	assert.False(t, IsCorrect(0, -1))
	assert.False(t, IsCorrect(0, 4))
}

func TestEveryQuestionHasValidCorrectIndex(t *testing.T) {
	for i := 0; i < Len(); i++ {
		q, ok := Get(i)
		require.True(t, ok)
		assert.GreaterOrEqual(t, q.Correct, 0, "question %d", i)
		assert.Less(t, q.Correct, len(q.Options), "question %d", i)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score int
		level string
	}{
		{0, "Beginner / Elementary"},
		{4, "Beginner / Elementary"},
		{5, "Pre-Intermediate"},
		{8, "Pre-Intermediate"},
		{9, "Intermediate"},
		{12, "Intermediate"},
		{13, "Upper-Intermediate / Advanced"},
		{15, "Upper-Intermediate / Advanced"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, Level(tt.score), "score %d", tt.score)
	}
}
