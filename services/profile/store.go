// File: services/profile/store.go
package profile

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"servicebuddy/models"
	"servicebuddy/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps per-session chat state between messages. Sessions are
// anonymous and expire after inactivity; a missing session is an empty
// context, never an error.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Set(ctx context.Context, sessionID string, sc *models.SessionContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores session context as JSON with a TTL, so idle
// sessions reclaim themselves.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	key := utils.SessionCachePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SessionContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sc models.SessionContext
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, sc *models.SessionContext) error {
	key := utils.SessionCachePrefix + sessionID
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	key := utils.SessionCachePrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemorySessionStore is a process-local store for tests and single-node
// deployments without Redis. Entries never expire.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.SessionContext
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.SessionContext)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok := s.sessions[sessionID]; ok {
		clone := *sc
		return &clone, nil
	}
	return &models.SessionContext{}, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, sessionID string, sc *models.SessionContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sc
	s.sessions[sessionID] = &clone
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
