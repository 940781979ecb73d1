package state

import (
	"sync"
)

// Manager управляет сессиями пользователей в памяти процесса.
// События одного чата обрабатываются по одному, поэтому на ключ
// фактически один писатель; mutex защищает только саму map.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]Session // telegramID -> Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]Session),
	}
}

// Get возвращает копию сессии пользователя.
// Для незнакомого пользователя — нулевая сессия (StateNone).
func (sm *Manager) Get(telegramID int64) Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.sessions[telegramID]
}

// Set сохраняет сессию пользователя
func (sm *Manager) Set(telegramID int64, s Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s.State == StateNone && s.Lang == "" {
		// Пустую сессию не храним
		delete(sm.sessions, telegramID)
		return
	}
	sm.sessions[telegramID] = s
}

// Clear очищает сессию пользователя
func (sm *Manager) Clear(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, telegramID)
}
