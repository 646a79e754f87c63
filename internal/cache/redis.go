package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// StatusStore caches vendor conversation snapshots for a short TTL so the
// dashboard's polling does not turn into one vendor call per poll.
type StatusStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatusStore(client *redis.Client, ttl time.Duration) *StatusStore {
	return &StatusStore{client: client, ttl: ttl}
}

func statusKey(conversationID string) string {
	return "interview:status:" + conversationID
}

// Get returns the cached snapshot, or (nil, nil) on a miss. A broken redis
// connection is reported as a miss too; the caller falls through to the
// vendor.
func (s *StatusStore) Get(ctx context.Context, conversationID string) (*model.InterviewStatusRes, error) {
	raw, err := s.client.Get(ctx, statusKey(conversationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snap model.InterviewStatusRes
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *StatusStore) Set(ctx context.Context, conversationID string, snap *model.InterviewStatusRes) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statusKey(conversationID), raw, s.ttl).Err()
}
