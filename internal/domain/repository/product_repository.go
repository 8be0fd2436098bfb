package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// UpdateRating persists the two derived aggregate fields and nothing
	// else. Returns NOT_FOUND when the product does not exist.
	UpdateRating(ctx context.Context, id string, rating float64, numReviews int) error
	AdjustInventory(ctx context.Context, id string, delta int) error
	SearchByName(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	Count(ctx context.Context) (int64, error)
}
