package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

// One cart document per user, keyed by the user ID.
type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Cart", err)
		}
		return nil, errors.Internal("Failed to get cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == "" {
		cart.ID = cart.UserID
	}
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now()
	}
	cart.UpdatedAt = time.Now()

	_, err := r.client.Collection("carts").Doc(cart.UserID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

// Delete is a no-op when the cart does not exist.
func (r *firestoreCartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Collection("carts").Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}

	return nil
}
