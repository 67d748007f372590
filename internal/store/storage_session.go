package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/models"
)

// sessionStorage keeps sessions in process memory. Sessions are short-lived
// and are lost on restart, which logs every user out.
type sessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	logger   *logger.Logger
}

func NewSessionStorage(logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating session storage")
	return &sessionStorage{
		sessions: make(map[string]models.Session),
		logger:   logger,
	}
}

func (s *sessionStorage) Create(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionAlreadyExists
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *sessionStorage) Get(ctx context.Context, sessionID string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStorage) Modify(ctx context.Context, sessionID string, fn func(*models.Session) error) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	// fn works on a copy so a failed modification leaves no trace
	updated := session
	if err := fn(&updated); err != nil {
		return session, err
	}
	updated.ID = session.ID
	s.sessions[sessionID] = updated

	return updated, nil
}

func (s *sessionStorage) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *sessionStorage) PurgeExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			purged++
		}
	}

	if purged > 0 {
		logger.FromContext(ctx).Debug().Int("purged", purged).Str("func", "*sessionStorage.PurgeExpired").Msg("expired sessions removed")
	}
	return purged
}
