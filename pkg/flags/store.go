package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/farmshop-si/farmshop-backend/pkg/redis"
)

// Store persists the full flag list as a single entry. Load returns
// (nil, nil) when nothing has been persisted yet.
type Store interface {
	Load(ctx context.Context) ([]FeatureFlag, error)
	Save(ctx context.Context, list []FeatureFlag) error
}

// RedisStore keeps the flag list JSON-encoded under one namespaced key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) ([]FeatureFlag, error) {
	raw, err := s.client.Get(ctx, s.client.FeatureFlagsKey())
	if err != nil {
		if redis.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading feature flags: %w", err)
	}
	var list []FeatureFlag
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decoding feature flags: %w", err)
	}
	return list, nil
}

func (s *RedisStore) Save(ctx context.Context, list []FeatureFlag) error {
	encoded, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding feature flags: %w", err)
	}
	if err := s.client.Set(ctx, s.client.FeatureFlagsKey(), string(encoded), 0); err != nil {
		return fmt.Errorf("saving feature flags: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used by tests and single-node setups
// where Redis is not configured.
type MemoryStore struct {
	mu   sync.Mutex
	list []FeatureFlag
	set  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]FeatureFlag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, nil
	}
	out := make([]FeatureFlag, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, list []FeatureFlag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = make([]FeatureFlag, len(list))
	copy(s.list, list)
	s.set = true
	return nil
}
