package repository

import (
	"context"
	"time"

	"stylemart/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	Count(ctx context.Context, filter map[string]interface{}) (int64, error)
	ListPaidSince(ctx context.Context, since time.Time) ([]*entity.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Order, error)
	// HasOrdersForProduct reports whether any order references the product.
	HasOrdersForProduct(ctx context.Context, productID string) (bool, error)
}
