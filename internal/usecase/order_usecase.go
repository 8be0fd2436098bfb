package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/pkg/errors"
	"stylemart/pkg/logger"
)

const (
	freeShippingThreshold = 100.0
	flatShippingPrice     = 10.0
	taxRate               = 0.1
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateOrderInput struct {
	ShippingAddress entity.Address
	PaymentMethod   string
	Size            map[string]string // productID -> selected size
	Color           map[string]string // productID -> selected color
}

// CreateOrder turns the user's server cart into an order, snapshotting the
// product name and price per line, decrementing inventory and clearing the
// cart afterwards.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("Cart is empty", nil)
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	var orderItems []entity.OrderItem
	var itemsPrice float64

	for _, item := range cart.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.BadRequest(fmt.Sprintf("Product %s is no longer available", item.ProductID), err)
		}
		if product.Inventory < item.Quantity {
			return nil, errors.BadRequest(fmt.Sprintf("Insufficient inventory for %s", product.Name), nil)
		}

		orderItem := entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Size:      input.Size[product.ID],
			Color:     input.Color[product.ID],
		}
		if len(product.Images) > 0 {
			orderItem.Image = product.Images[0].URL
		}

		orderItems = append(orderItems, orderItem)
		itemsPrice += product.Price * float64(item.Quantity)
	}

	shippingPrice := flatShippingPrice
	if itemsPrice >= freeShippingThreshold {
		shippingPrice = 0
	}
	taxPrice := roundCents(itemsPrice * taxRate)
	totalPrice := roundCents(itemsPrice + shippingPrice + taxPrice)

	now := time.Now()
	order := &entity.Order{
		UserID:          userID,
		Items:           orderItems,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      roundCents(itemsPrice),
		ShippingPrice:   shippingPrice,
		TaxPrice:        taxPrice,
		TotalPrice:      totalPrice,
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range orderItems {
		if err := uc.productRepo.AdjustInventory(ctx, item.ProductID, -item.Quantity); err != nil {
			logger.Warn("Failed to adjust inventory for product %s: %v", item.ProductID, err)
		}
	}

	if err := uc.cartRepo.Delete(ctx, userID); err != nil {
		logger.Warn("Failed to clear cart for user %s after checkout: %v", userID, err)
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, requesterID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID {
		requester, err := uc.userRepo.GetByID(ctx, requesterID)
		if err != nil || requester.Role != "admin" {
			return nil, errors.Forbidden("You don't have permission to view this order", nil)
		}
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, page, limit int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) MarkPaid(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to pay this order", nil)
	}
	if order.IsPaid {
		return nil, errors.BadRequest("Order is already paid", nil)
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.Status = "processing"

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
