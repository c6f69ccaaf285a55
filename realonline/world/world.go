// Package world is an in-memory session manager. The production host keeps
// its own session state and hands the modules a scripting.SessionManager;
// this implementation backs the standalone server shell and tests.
package world

import (
	"sync"

	"github.com/wowcore/realonline/realonline/scripting"
)

type session struct {
	account uint32
	player  scripting.Player
}

func (s *session) AccountID() uint32         { return s.account }
func (s *session) Player() scripting.Player { return s.player }

type Manager struct {
	mu       sync.RWMutex
	sessions map[uint32]*session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[uint32]*session)}
}

// Connect registers a session for an account. Player may be nil until the
// character enters the world; use Place to attach it later.
func (m *Manager) Connect(account uint32, p scripting.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[account] = &session{account: account, player: p}
}

func (m *Manager) Place(account uint32, p scripting.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[account]; ok {
		s.player = p
	}
}

func (m *Manager) Disconnect(account uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, account)
}

func (m *Manager) Sessions() []scripting.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]scripting.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

func (m *Manager) Players() []scripting.Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]scripting.Player, 0, len(m.sessions))
	for _, s := range m.sessions {
		if s.player != nil {
			out = append(out, s.player)
		}
	}
	return out
}
