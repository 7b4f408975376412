package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/farmshop-si/farmshop-backend/pkg/redis"
)

const processedMarkerTTL = 24 * time.Hour

// RedisIdempotency marks processed event ids in Redis so redelivered
// messages are not written twice. Markers expire; a redelivery a day later
// would be reprocessed, which the warehouse tolerates.
type RedisIdempotency struct {
	client *redis.Client
}

func NewRedisIdempotency(client *redis.Client) (*RedisIdempotency, error) {
	if client == nil {
		return nil, errors.New("analytics: redis client is required")
	}
	return &RedisIdempotency{client: client}, nil
}

// CheckAndMarkProcessed reports whether the event was already handled, and
// marks it when it was not.
func (m *RedisIdempotency) CheckAndMarkProcessed(ctx context.Context, eventID string) (bool, error) {
	set, err := m.client.SetNX(ctx, m.client.AnalyticsEventKey(eventID), "1", processedMarkerTTL)
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Delete removes the processed marker so a failed event can be retried.
func (m *RedisIdempotency) Delete(ctx context.Context, eventID string) error {
	return m.client.Del(ctx, m.client.AnalyticsEventKey(eventID))
}
