// Package session persists serialized Session values in Redis. A missing or
// malformed stored value reads back as "no session" rather than an error, so
// a corrupt entry degrades to a login redirect instead of a fault.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/ops-console/internal/domain"
)

const keyPrefix = "console:session:"

// Store holds sessions across process restarts.
type Store interface {
	Save(ctx context.Context, session domain.Session, ttl time.Duration) error
	// Load returns (nil, nil) when no usable session exists under the id.
	Load(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a connected go-redis client.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+session.ID, payload, ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil || session.Identity == "" {
		return nil, nil
	}
	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
