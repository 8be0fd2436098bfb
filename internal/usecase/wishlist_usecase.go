package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, errors.NotFound("Product", err)
	}

	return uc.wishlistRepo.AddToWishlist(ctx, userID, productID)
}

func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return uc.wishlistRepo.RemoveFromWishlist(ctx, userID, productID)
}

func (uc *WishlistUseCase) GetUserWishlist(ctx context.Context, userID string, page, pageSize int) ([]entity.WishlistItemWithProduct, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	return uc.wishlistRepo.GetUserWishlist(ctx, userID, pageSize, offset)
}

func (uc *WishlistUseCase) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	return uc.wishlistRepo.IsInWishlist(ctx, userID, productID)
}
