package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"qrpatrol/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

type LocationCacheService interface {
	GetActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error)
	SetActive(ctx context.Context, supervisorID uuid.UUID, locations []domain.CachedLocation, ttl time.Duration) error
}

// LocationCache keeps each supervisor's active checkpoints under its own key
// so the guard-facing listing does not hit Postgres on every poll.
type LocationCache struct {
	client *goredis.Client
	prefix string
}

func NewLocationCache(r *Redis) *LocationCache {
	return &LocationCache{
		client: r.Client,
		prefix: "locations:active:",
	}
}

func (c *LocationCache) key(supervisorID uuid.UUID) string {
	return c.prefix + supervisorID.String()
}

func (c *LocationCache) GetActive(ctx context.Context, supervisorID uuid.UUID) ([]domain.CachedLocation, error) {
	data, err := c.client.Get(ctx, c.key(supervisorID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var locations []domain.CachedLocation
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func (c *LocationCache) SetActive(ctx context.Context, supervisorID uuid.UUID, locations []domain.CachedLocation, ttl time.Duration) error {
	b, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(supervisorID), b, ttl).Err()
}
