package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*entity.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Review, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Review, int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
}
