package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ragtask/models"
	"ragtask/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisSessionMemory stores each session transcript as a JSON blob under a
// prefixed key with a sliding TTL. One logical record per session keeps the
// cap trim and the expiry refresh in a single write.
type RedisSessionMemory struct {
	Client *redis.Client
	TTL    time.Duration
	Cap    int
	Logger *zap.Logger
}

func NewRedisSessionMemory(client *redis.Client, logger *zap.Logger) *RedisSessionMemory {
	return &RedisSessionMemory{
		Client: client,
		TTL:    utils.ChatMemoryTTL,
		Cap:    utils.HistoryCap,
		Logger: logger,
	}
}

func (m *RedisSessionMemory) key(sessionID string) string {
	return utils.ChatMemoryPrefix + sessionID
}

// Load returns the transcript for a session, oldest turn first. Store
// failures and corrupt payloads degrade to an empty transcript.
func (m *RedisSessionMemory) Load(ctx context.Context, sessionID string) []models.Turn {
	data, err := m.Client.Get(ctx, m.key(sessionID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		m.Logger.Warn("session memory unavailable, proceeding without history",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil
	}

	var turns []models.Turn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		m.Logger.Warn("corrupt session transcript, proceeding without history",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil
	}
	return turns
}

// Append adds one turn, trims the transcript to the cap from the front, and
// refreshes the expiry.
func (m *RedisSessionMemory) Append(ctx context.Context, sessionID string, turn models.Turn) error {
	turns := m.Load(ctx, sessionID)
	turns = appendCapped(turns, turn, m.Cap)

	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript for session %s: %w", sessionID, err)
	}
	if err := m.Client.Set(ctx, m.key(sessionID), data, m.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store transcript for session %s: %w", sessionID, err)
	}
	return nil
}

// Clear removes the transcript. Clearing an absent session is a no-op.
func (m *RedisSessionMemory) Clear(ctx context.Context, sessionID string) error {
	if err := m.Client.Del(ctx, m.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear transcript for session %s: %w", sessionID, err)
	}
	return nil
}

// appendCapped appends a turn and evicts from the front until the length is
// back within the limit.
func appendCapped(turns []models.Turn, turn models.Turn, limit int) []models.Turn {
	turns = append(turns, turn)
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns
}
