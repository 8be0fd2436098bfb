package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

const guestCartKeyPrefix = "guest_cart:"

// redisGuestCartRepository stores anonymous carts as JSON blobs with a
// TTL, so abandoned guest sessions clean themselves up.
type redisGuestCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuestCartRepository(client *redis.Client, ttl time.Duration) repository.GuestCartRepository {
	return &redisGuestCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisGuestCartRepository) Get(ctx context.Context, sessionID string) (*entity.GuestCart, error) {
	data, err := r.client.Get(ctx, guestCartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("Guest cart", err)
		}
		return nil, errors.Internal("Failed to get guest cart", err)
	}

	var cart entity.GuestCart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, errors.Internal("Failed to parse guest cart data", err)
	}

	return &cart, nil
}

func (r *redisGuestCartRepository) Save(ctx context.Context, cart *entity.GuestCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Internal("Failed to encode guest cart", err)
	}

	if err := r.client.Set(ctx, guestCartKeyPrefix+cart.SessionID, data, r.ttl).Err(); err != nil {
		return errors.Internal("Failed to save guest cart", err)
	}

	return nil
}

func (r *redisGuestCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, guestCartKeyPrefix+sessionID).Err(); err != nil {
		return errors.Internal("Failed to delete guest cart", err)
	}

	return nil
}
