package usecase

import (
	"context"
	"time"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
)

type CartUseCase struct {
	cartRepo      repository.CartRepository
	guestCartRepo repository.GuestCartRepository
	productRepo   repository.ProductRepository
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	guestCartRepo repository.GuestCartRepository,
	productRepo repository.ProductRepository,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:      cartRepo,
		guestCartRepo: guestCartRepo,
		productRepo:   productRepo,
	}
}

type CartProductInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Inventory int     `json:"inventory"`
}

type CartLine struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *CartProductInfo `json:"product,omitempty"`
}

type CartResponse struct {
	UserID string     `json:"user_id"`
	Items  []CartLine `json:"items"`
}

// GetCart returns the user's cart with product details resolved for
// display. A user without a cart gets an empty one back rather than an
// error.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &CartResponse{UserID: userID, Items: []CartLine{}}, nil
		}
		return nil, err
	}

	return uc.buildCartResponse(ctx, cart), nil
}

func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartResponse, error) {
	if quantity <= 0 {
		return nil, errors.BadRequest("Quantity must be positive", nil)
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		now := time.Now()
		cart = &entity.Cart{
			ID:        userID,
			UserID:    userID,
			Items:     []entity.CartItem{{ProductID: productID, Quantity: quantity}},
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		cart.Items = entity.MergeItem(cart.Items, productID, quantity)
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.buildCartResponse(ctx, cart), nil
}

// RemoveItem drops the line for the product. Neither a missing cart nor a
// missing line is an error.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*CartResponse, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &CartResponse{UserID: userID, Items: []CartLine{}}, nil
		}
		return nil, err
	}

	cart.Items = entity.RemoveItem(cart.Items, productID)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.buildCartResponse(ctx, cart), nil
}

// Clear deletes the user's cart record. Missing carts are a no-op.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Delete(ctx, userID)
}

// MergeGuestCart folds an anonymous session cart into the user's server
// cart on login, line by line with the same additive merge used by
// AddItem, then drops the session cart. A missing session cart is a no-op.
func (uc *CartUseCase) MergeGuestCart(ctx context.Context, userID, sessionID string) (*CartResponse, error) {
	guest, err := uc.guestCartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return uc.GetCart(ctx, userID)
		}
		return nil, err
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		now := time.Now()
		cart = &entity.Cart{
			ID:        userID,
			UserID:    userID,
			Items:     []entity.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	for _, item := range guest.Items {
		cart.Items = entity.MergeItem(cart.Items, item.ProductID, item.Quantity)
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	if err := uc.guestCartRepo.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	return uc.buildCartResponse(ctx, cart), nil
}

// Guest cart operations mirror the authenticated ones, keyed by session.

func (uc *CartUseCase) GetGuestCart(ctx context.Context, sessionID string) (*entity.GuestCart, error) {
	guest, err := uc.guestCartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.GuestCart{SessionID: sessionID, Items: []entity.CartItem{}}, nil
		}
		return nil, err
	}
	return guest, nil
}

func (uc *CartUseCase) AddGuestItem(ctx context.Context, sessionID, productID string, quantity int) (*entity.GuestCart, error) {
	if quantity <= 0 {
		return nil, errors.BadRequest("Quantity must be positive", nil)
	}

	guest, err := uc.GetGuestCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guest.Items = entity.MergeItem(guest.Items, productID, quantity)
	guest.UpdatedAt = time.Now()

	if err := uc.guestCartRepo.Save(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (uc *CartUseCase) RemoveGuestItem(ctx context.Context, sessionID, productID string) (*entity.GuestCart, error) {
	guest, err := uc.GetGuestCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guest.Items = entity.RemoveItem(guest.Items, productID)
	guest.UpdatedAt = time.Now()

	if err := uc.guestCartRepo.Save(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (uc *CartUseCase) ClearGuestCart(ctx context.Context, sessionID string) error {
	return uc.guestCartRepo.Delete(ctx, sessionID)
}

func (uc *CartUseCase) buildCartResponse(ctx context.Context, cart *entity.Cart) *CartResponse {
	resp := &CartResponse{
		UserID: cart.UserID,
		Items:  make([]CartLine, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		line := CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
		// Dangling product references stay in the cart as bare lines.
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err == nil {
			info := &CartProductInfo{
				ID:        product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Inventory: product.Inventory,
			}
			if len(product.Images) > 0 {
				info.Image = product.Images[0].URL
			}
			line.Product = info
		}
		resp.Items = append(resp.Items, line)
	}

	return resp
}
