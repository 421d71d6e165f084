package memory

import (
	"context"
	"sync"

	"skema/internal/domain"
	"skema/internal/port"
)

type memoryStore struct {
	mu       sync.Mutex
	maxTurns int
	sessions map[string][]domain.Turn
}

// NewStore creates an in-process SessionStore holding at most maxTurns turns
// per session. Suitable for a single instance; use the redis store when
// running more than one.
func NewStore(maxTurns int) port.SessionStore {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &memoryStore{
		maxTurns: maxTurns,
		sessions: make(map[string][]domain.Turn),
	}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) ([]domain.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.sessions[sessionID]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *memoryStore) Append(_ context.Context, sessionID string, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[sessionID], turn)
	if len(turns) > s.maxTurns {
		turns = turns[len(turns)-s.maxTurns:]
	}
	s.sessions[sessionID] = turns
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
