package session

import (
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/pkg/errors"
)

// ErrNotFound is returned for an unknown session id.
var ErrNotFound = errors.New("session not found")

// Session is one running match.
type Session struct {
	ID      string
	Engine  *game.Engine
	Created time.Time

	sink game.Sink
}

// Manager keeps the state of all the sessions
type Manager struct {
	sessions map[string]*Session
	mu       sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// helpers
func generateSessionID() string {
	return uuid.New().String()[:6]
}

// Create builds an engine for setup under a fresh id. The engine is not
// started. sink may be nil; if it is an io.Closer it is closed with the
// session.
func (m *Manager) Create(setup game.Setup, sink game.Sink) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := generateSessionID()
	for {
		if _, taken := m.sessions[id]; !taken {
			break
		}
		id = generateSessionID()
	}

	engine, err := game.NewEngine(id, setup, sink)
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	s := &Session{
		ID:      id,
		Engine:  engine,
		Created: time.Now(),
		sink:    sink,
	}
	m.sessions[id] = s
	log.Printf("Created session %s (%s, %d Hz)", id, setup.Variant, setup.TickRate)

	return s, nil
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[id]
	return s, exists
}

// IDs returns the ids of all open sessions, sorted.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the session's engine, closes its sink and forgets it.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, exists := m.sessions[id]
	if exists {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !exists {
		return errors.Wrapf(ErrNotFound, "close %s", id)
	}
	return s.close()
}

// CloseAll closes every session and returns the first error seen.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var first error
	for _, s := range sessions {
		if err := s.close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Session) close() error {
	s.Engine.Stop()
	log.Printf("Session %s has been closed at tick %d", s.ID, s.Engine.Snapshot().Tick)

	if c, ok := s.sink.(io.Closer); ok {
		return errors.Wrapf(c.Close(), "close sink of %s", s.ID)
	}
	return nil
}
