package booking

import (
	"context"
	"encoding/json"
	"time"

	"ragtask/models"
	"ragtask/utils"

	"github.com/go-redis/redis/v8"
)

// SessionState is the externalized slot-filling state for one session.
// A missing record means NO_INTENT; the record exists only while collecting.
type SessionState struct {
	State   string                `json:"state"`
	Partial models.PartialBooking `json:"partial"`
}

// StateStore persists SessionState between requests so slot-filling progress
// survives across instances.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (*SessionState, error)
	Set(ctx context.Context, sessionID string, state *SessionState) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStateStore keeps booking state in Redis with the same sliding TTL as
// the session transcript.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: utils.ChatMemoryTTL}
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	key := utils.BookingStatePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &SessionState{State: StateNoIntent}, nil
	}
	if err != nil {
		return nil, err
	}
	var state SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStateStore) Set(ctx context.Context, sessionID string, state *SessionState) error {
	key := utils.BookingStatePrefix + sessionID
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, sessionID string) error {
	key := utils.BookingStatePrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
