package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangValid(t *testing.T) {
	assert.True(t, LangRU.Valid())
	assert.True(t, LangUZ.Valid())
	assert.False(t, Lang("en").Valid())
	assert.False(t, Lang("").Valid())
}

func TestT(t *testing.T) {
	assert.Equal(t, "Выберите действие:", T(LangRU, "menu"))
	assert.Equal(t, "Harakatni tanlang:", T(LangUZ, "menu"))
}

func TestTFallsBackToRussian(t *testing.T) {
	assert.Equal(t, T(LangRU, "menu"), T(Lang("en"), "menu"))
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T(LangRU, "no_such_key"))
}

// Оба языка должны покрывать одинаковый набор ключей
func TestKeyParity(t *testing.T) {
	for key := range strings[LangRU] {
		_, ok := strings[LangUZ][key]
		assert.True(t, ok, "missing uzbek text for %q", key)
	}
	for key := range strings[LangUZ] {
		_, ok := strings[LangRU][key]
		assert.True(t, ok, "missing russian text for %q", key)
	}
}
