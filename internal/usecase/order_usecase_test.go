package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylemart/internal/domain/entity"
	"stylemart/pkg/errors"
)

func newOrderTestFixture(t *testing.T) (*OrderUseCase, *fakeOrderRepo, *fakeCartRepo, *fakeProductRepo, *fakeUserRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	uc := NewOrderUseCase(orderRepo, cartRepo, productRepo, userRepo)
	return uc, orderRepo, cartRepo, productRepo, userRepo
}

func seedCheckout(t *testing.T, cartRepo *fakeCartRepo, productRepo *fakeProductRepo) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, productRepo.Create(ctx, &entity.Product{
		ID: "p1", Name: "Denim Jacket", Price: 40.0, Inventory: 10,
	}))
	require.NoError(t, productRepo.Create(ctx, &entity.Product{
		ID: "p2", Name: "Wool Scarf", Price: 15.0, Inventory: 4,
	}))
	require.NoError(t, cartRepo.Save(ctx, &entity.Cart{
		ID:     "u1",
		UserID: "u1",
		Items: []entity.CartItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 2},
		},
	}))
}

func TestCreateOrderComputesTotals(t *testing.T) {
	uc, _, cartRepo, productRepo, _ := newOrderTestFixture(t)
	ctx := context.Background()
	seedCheckout(t, cartRepo, productRepo)

	order, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{
		ShippingAddress: entity.Address{Name: "Dana", Street: "1 Main St", City: "Springfield", ZipCode: "12345", Country: "US"},
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	// 40 + 2*15 = 70, below the free shipping threshold
	assert.Equal(t, 70.0, order.ItemsPrice)
	assert.Equal(t, 10.0, order.ShippingPrice)
	assert.Equal(t, 7.0, order.TaxPrice)
	assert.Equal(t, 87.0, order.TotalPrice)
	assert.Equal(t, "pending", order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Denim Jacket", order.Items[0].Name)
	assert.Equal(t, 40.0, order.Items[0].Price)
}

func TestCreateOrderFreeShippingOverThreshold(t *testing.T) {
	uc, _, cartRepo, productRepo, _ := newOrderTestFixture(t)
	ctx := context.Background()
	require.NoError(t, productRepo.Create(ctx, &entity.Product{
		ID: "p1", Name: "Leather Boots", Price: 120.0, Inventory: 3,
	}))
	require.NoError(t, cartRepo.Save(ctx, &entity.Cart{
		ID: "u1", UserID: "u1",
		Items: []entity.CartItem{{ProductID: "p1", Quantity: 1}},
	}))

	order, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.ShippingPrice)
	assert.Equal(t, 132.0, order.TotalPrice)
}

func TestCreateOrderDecrementsInventoryAndClearsCart(t *testing.T) {
	uc, _, cartRepo, productRepo, _ := newOrderTestFixture(t)
	ctx := context.Background()
	seedCheckout(t, cartRepo, productRepo)

	_, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.NoError(t, err)

	p1, err := productRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 9, p1.Inventory)

	p2, err := productRepo.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Inventory)

	_, err = cartRepo.GetByUserID(ctx, "u1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateOrderEmptyCart(t *testing.T) {
	uc, _, cartRepo, _, _ := newOrderTestFixture(t)
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	require.NoError(t, cartRepo.Save(ctx, &entity.Cart{ID: "u1", UserID: "u1", Items: []entity.CartItem{}}))
	_, err = uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderInsufficientInventory(t *testing.T) {
	uc, orderRepo, cartRepo, productRepo, _ := newOrderTestFixture(t)
	ctx := context.Background()
	require.NoError(t, productRepo.Create(ctx, &entity.Product{
		ID: "p1", Name: "Limited Cap", Price: 25.0, Inventory: 1,
	}))
	require.NoError(t, cartRepo.Save(ctx, &entity.Cart{
		ID: "u1", UserID: "u1",
		Items: []entity.CartItem{{ProductID: "p1", Quantity: 2}},
	}))

	_, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, orderRepo.orders)
}

func TestGetOrderOwnerAndAdminOnly(t *testing.T) {
	uc, _, cartRepo, productRepo, userRepo := newOrderTestFixture(t)
	ctx := context.Background()
	seedCheckout(t, cartRepo, productRepo)
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "admin1", Role: "admin"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u2", Role: "user"}))

	order, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.NoError(t, err)

	_, err = uc.GetOrder(ctx, "u1", order.ID)
	require.NoError(t, err)

	_, err = uc.GetOrder(ctx, "admin1", order.ID)
	require.NoError(t, err)

	_, err = uc.GetOrder(ctx, "u2", order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkPaidTransitionsOnce(t *testing.T) {
	uc, _, cartRepo, productRepo, _ := newOrderTestFixture(t)
	ctx := context.Background()
	seedCheckout(t, cartRepo, productRepo)

	order, err := uc.CreateOrder(ctx, "u1", CreateOrderInput{PaymentMethod: "card"})
	require.NoError(t, err)

	paid, err := uc.MarkPaid(ctx, "u1", order.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, "processing", paid.Status)

	_, err = uc.MarkPaid(ctx, "u1", order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
