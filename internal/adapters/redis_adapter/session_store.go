// internal/adapters/redis_adapter/session_store.go
package redis_a

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// SessionStore keeps live sessions in Redis, each expiring with its token.
type SessionStore struct {
	cache  ports.CacheRepository
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(cache ports.CacheRepository, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		cache:  cache,
		now:    time.Now,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Save stores s until its expiry. The token itself is not persisted.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", domain.ErrUnauthorized)
	}

	stored := *sess
	stored.Token = ""
	if err := s.cache.SetWithTTL(ctx, BuildKey(PrefixSession, sess.ID), stored, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get returns the live session or domain.ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var sess domain.Session
	if err := s.cache.Get(ctx, BuildKey(PrefixSession, id), &sess); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if sess.Expired(s.now()) {
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, BuildKey(PrefixSession, id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.DebugContext(ctx, "session deleted", slog.String("session_id", id))
	return nil
}
