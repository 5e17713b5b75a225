package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
)

const (
	cartKeyPrefix = "kumbh:cart:"

	// Abandoned carts expire on their own; every write renews the clock.
	cartTTL = 30 * 24 * time.Hour
)

// CartRepository persists each cart as a single JSON-serialized array of
// booking items under one well-known key.
type CartRepository interface {
	Load(ctx context.Context, cartID string) ([]models.BookingItem, error)
	Save(ctx context.Context, cartID string, items []models.BookingItem) error
	Delete(ctx context.Context, cartID string) error
}

type redisCartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) CartRepository {
	return &redisCartRepository{client: client}
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

func (r *redisCartRepository) Load(ctx context.Context, cartID string) ([]models.BookingItem, error) {
	raw, err := r.client.Get(ctx, cartKey(cartID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}

	var items []models.BookingItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A blob that no longer parses is treated as no data, not an error.
		log.Printf("[CartRepository] discarding corrupt cart %s: %v", cartID, err)
		return nil, nil
	}
	return items, nil
}

func (r *redisCartRepository) Save(ctx context.Context, cartID string, items []models.BookingItem) error {
	if items == nil {
		items = []models.BookingItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", cartID, err)
	}

	if err := r.client.Set(ctx, cartKey(cartID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}

func (r *redisCartRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", cartID, err)
	}
	return nil
}
