package schedule

import (
	"context"
	"encoding/json"
	"time"

	"clinicdesk/models"
	"clinicdesk/utils"

	"github.com/go-redis/redis/v8"
)

// SnapshotStore keeps the last backend-persisted schedule per staff member,
// the baseline Diff compares against. The store is the only owner of that
// state; callers always receive copies.
type SnapshotStore interface {
	Get(ctx context.Context, email string) (*models.WeeklySchedule, error)
	Set(ctx context.Context, email string, s models.WeeklySchedule) error
	Clear(ctx context.Context, email string) error
}

// RedisSnapshotStore is the default SnapshotStore, JSON-encoded entries with
// a TTL so abandoned edit sessions age out on their own.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Get(ctx context.Context, email string) (*models.WeeklySchedule, error) {
	data, err := s.client.Get(ctx, utils.SnapshotKeyPrefix+email).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap models.WeeklySchedule
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisSnapshotStore) Set(ctx context.Context, email string, snap models.WeeklySchedule) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.SnapshotKeyPrefix+email, b, s.ttl).Err()
}

func (s *RedisSnapshotStore) Clear(ctx context.Context, email string) error {
	return s.client.Del(ctx, utils.SnapshotKeyPrefix+email).Err()
}
