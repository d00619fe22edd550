package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = fmt.Errorf("session: not found")

// Store keeps identities in redis under an opaque session ID with a TTL.
// This is the ephemeral session storage of the original client: losing it
// only forces a new login, no domain data lives here.
type Store struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewStore creates a session store. A nil redis client panics: the portal
// cannot hold sessions without it.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if rdb == nil {
		panic("session: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Store{
		redis:  rdb,
		ttl:    ttl,
		tracer: otel.Tracer("hms.internal.session"),
	}
}

// Save persists the identity under the session ID, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, id Identity) error {
	ctx, span := s.tracer.Start(ctx, "session.save")
	defer span.End()

	data, err := json.Marshal(id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: marshal identity: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: persist identity: %w", err)
	}
	return nil
}

// Load fetches the identity for a session ID.
func (s *Store) Load(ctx context.Context, sessionID string) (Identity, error) {
	ctx, span := s.tracer.Start(ctx, "session.load")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Identity{}, ErrNotFound
		}
		span.RecordError(err)
		return Identity{}, fmt.Errorf("session: load identity: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		span.RecordError(err)
		return Identity{}, fmt.Errorf("session: decode identity: %w", err)
	}
	return id, nil
}

// Clear drops the session, e.g. after the backend answered 401.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "session.clear")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: clear identity: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
