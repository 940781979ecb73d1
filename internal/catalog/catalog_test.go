package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomyssd/dino-club/internal/i18n"
)

func TestKeysOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"english", "math", "russian", "pochemuchka", "gymnastics", "choreography"},
		Keys())
}

func TestValid(t *testing.T) {
	for _, key := range Keys() {
		assert.True(t, Valid(key), key)
	}
	assert.False(t, Valid("chemistry"))
	assert.False(t, Valid(""))
}

func TestNameLocalized(t *testing.T) {
	assert.Equal(t, "📐 Математика", Name("math", i18n.LangRU))
	assert.Equal(t, "📐 Matematika", Name("math", i18n.LangUZ))
}

func TestItemsParityBetweenLanguages(t *testing.T) {
	for _, key := range Keys() {
		ru := Items(key, i18n.LangRU)
		uz := Items(key, i18n.LangUZ)
		assert.Equal(t, len(ru), len(uz), key)
	}
}

func TestItemsComplete(t *testing.T) {
	for _, key := range Keys() {
		items := Items(key, i18n.LangRU)
		require.NotEmpty(t, items, key)
		for _, item := range items {
			assert.NotEmpty(t, item.Short, key)
			assert.NotEmpty(t, item.FullName, key)
			assert.NotEmpty(t, item.Schedule, key)
		}
	}
}

func TestUnknownCourse(t *testing.T) {
	assert.Empty(t, Items("chemistry", i18n.LangRU))
	assert.Equal(t, "chemistry", Name("chemistry", i18n.LangRU))
}
