package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomyssd/dino-club/internal/i18n"
)

func TestGetReturnsZeroSessionForUnknownUser(t *testing.T) {
	m := NewManager()

	s := m.Get(42)
	assert.Equal(t, StateNone, s.State)
	assert.Empty(t, s.Lang)
}

func TestSetAndGet(t *testing.T) {
	m := NewManager()

	m.Set(42, Session{State: StateAwaitingName, Lang: i18n.LangRU})

	s := m.Get(42)
	assert.Equal(t, StateAwaitingName, s.State)
	assert.Equal(t, i18n.LangRU, s.Lang)

	// Сессии независимы по пользователям
	assert.Equal(t, StateNone, m.Get(43).State)
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Set(42, Session{State: StateAwaitingQuizAnswer, Lang: i18n.LangRU, QuizScore: 3})

	s := m.Get(42)
	s.QuizScore = 100

	assert.Equal(t, 3, m.Get(42).QuizScore)
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.Set(42, Session{State: StateAwaitingPhone, Lang: i18n.LangUZ, Name: "Test"})

	m.Clear(42)

	s := m.Get(42)
	assert.Equal(t, StateNone, s.State)
	assert.Empty(t, s.Name)
}

func TestSetZeroSessionDropsEntry(t *testing.T) {
	m := NewManager()
	m.Set(42, Session{State: StateAwaitingName, Lang: i18n.LangRU})

	m.Set(42, Session{})

	assert.Equal(t, Session{}, m.Get(42))
}

func TestConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.Set(id, Session{State: StateAwaitingQuestion, Lang: i18n.LangRU})
			m.Get(id)
			m.Clear(id)
		}(int64(i))
	}
	wg.Wait()
}
