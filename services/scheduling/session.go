package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hireflow/models"

	"github.com/go-redis/redis/v8"
)

// sessionTTL bounds an abandoned negotiation; every save slides the window.
const sessionTTL = 30 * time.Minute

// SessionStore holds in-progress negotiation states. In-progress state is
// not durable: expiry is how abandonment is handled.
type SessionStore interface {
	Save(ctx context.Context, st *models.NegotiationState) error
	Get(ctx context.Context, sessionID string) (*models.NegotiationState, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps negotiation states in Redis as JSON with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(sessionID string) string {
	return "negotiation:" + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, st *models.NegotiationState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal negotiation state: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(st.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store negotiation state: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.NegotiationState, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, &SchedulingError{
			Code:    CodeSessionNotFound,
			Message: fmt.Sprintf("scheduling session %s not found or expired", sessionID),
			Err:     err,
		}
	}
	var st models.NegotiationState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("failed to parse negotiation state: %w", err)
	}
	return &st, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKey(sessionID)).Err()
}
