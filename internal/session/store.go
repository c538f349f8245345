package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/redisclient"
	"github.com/redis/go-redis/v9"
)

// Store persists session snapshots so a session survives eviction from the
// in-process registry and process restarts
type Store interface {
	Save(ctx context.Context, snap Snapshot) error
	// Load returns models.ErrSessionNotFound when no snapshot exists
	Load(ctx context.Context, id string) (Snapshot, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps snapshots as JSON strings with a TTL
type RedisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore creates a store writing to client
func NewRedisStore(client *redisclient.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func snapshotKey(id string) string {
	return "myarea:session:" + id
}

// Save writes snap and resets its TTL
func (r *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	if err := r.client.Set(ctx, snapshotKey(snap.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot of session id
func (r *RedisStore) Load(ctx context.Context, id string) (Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, models.ErrSessionNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load session snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode session snapshot: %w", err)
	}
	return snap, nil
}

// Touch extends the TTL of session id
func (r *RedisStore) Touch(ctx context.Context, id string) error {
	return r.client.Expire(ctx, snapshotKey(id), r.ttl).Err()
}

// Delete removes the snapshot of session id
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, snapshotKey(id)).Err()
}
