package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	reviewRepo   repository.ReviewRepository
	wishlistRepo repository.WishlistRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	wishlistRepo repository.WishlistRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		reviewRepo:   reviewRepo,
		wishlistRepo: wishlistRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name   string
	Email  string
	Avatar string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err == nil && existing != nil && existing.ID != userID {
			return nil, errors.BadRequest("Email already in use", nil)
		}
		user.Email = input.Email
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpsertAddress replaces the address with the given ID, or appends a new
// one when the ID is empty.
func (uc *UserUseCase) UpsertAddress(ctx context.Context, userID string, address entity.Address) ([]entity.Address, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if address.ID == "" {
		address.ID = uuid.New().String()
		user.Addresses = append(user.Addresses, address)
	} else {
		found := false
		for i := range user.Addresses {
			if user.Addresses[i].ID == address.ID {
				user.Addresses[i] = address
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NotFound("Address", nil)
		}
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Addresses, nil
}

type UserStats struct {
	TotalOrders   int64 `json:"total_orders"`
	WishlistItems int64 `json:"wishlist_items"`
	TotalReviews  int   `json:"total_reviews"`
}

func (uc *UserUseCase) GetStats(ctx context.Context, userID string) (*UserStats, error) {
	orders, err := uc.orderRepo.Count(ctx, map[string]interface{}{"userId": userID})
	if err != nil {
		return nil, err
	}

	wishlist, err := uc.wishlistRepo.GetWishlistCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalOrders:   orders,
		WishlistItems: wishlist,
		TotalReviews:  len(reviews),
	}, nil
}
