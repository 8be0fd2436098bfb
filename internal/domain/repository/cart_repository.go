package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID string) error
}

// GuestCartRepository stores anonymous carts keyed by session ID. Entries
// expire on their own; Delete on a missing session is a no-op.
type GuestCartRepository interface {
	Get(ctx context.Context, sessionID string) (*entity.GuestCart, error)
	Save(ctx context.Context, cart *entity.GuestCart) error
	Delete(ctx context.Context, sessionID string) error
}
