package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylemart/internal/domain/entity"
	"stylemart/pkg/errors"
)

func newProductTestFixture(t *testing.T) (*ProductUseCase, *fakeProductRepo, *fakeOrderRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	uc := NewProductUseCase(productRepo, orderRepo)
	return uc, productRepo, orderRepo
}

func TestCreateProductStartsUnrated(t *testing.T) {
	uc, _, _ := newProductTestFixture(t)

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Name:      "Canvas Tote",
		Price:     19.99,
		Category:  "bags",
		Inventory: 25,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 0.0, product.Rating)
	assert.Equal(t, 0, product.NumReviews)
}

func TestUpdateProductKeepsAggregateFields(t *testing.T) {
	uc, productRepo, _ := newProductTestFixture(t)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, ProductInput{Name: "Canvas Tote", Price: 19.99, Inventory: 25})
	require.NoError(t, err)

	// Simulate reviews having landed since creation.
	require.NoError(t, productRepo.UpdateRating(ctx, product.ID, 4.2, 7))

	updated, err := uc.UpdateProduct(ctx, product.ID, ProductInput{Name: "Canvas Tote XL", Price: 24.99, Inventory: 20})
	require.NoError(t, err)
	assert.Equal(t, "Canvas Tote XL", updated.Name)
	assert.Equal(t, 4.2, updated.Rating)
	assert.Equal(t, 7, updated.NumReviews)
}

func TestDeleteProductBlockedByOrders(t *testing.T) {
	uc, _, orderRepo := newProductTestFixture(t)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, ProductInput{Name: "Canvas Tote", Price: 19.99, Inventory: 25})
	require.NoError(t, err)

	require.NoError(t, orderRepo.Create(ctx, &entity.Order{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: product.ID, Quantity: 1}},
	}))

	err = uc.DeleteProduct(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Still retrievable after the blocked delete.
	_, err = uc.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
}

func TestDeleteProductWithoutOrders(t *testing.T) {
	uc, _, _ := newProductTestFixture(t)
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, ProductInput{Name: "Canvas Tote", Price: 19.99, Inventory: 25})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, product.ID))

	_, err = uc.GetProductByID(ctx, product.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSearchProductsMatchesName(t *testing.T) {
	uc, _, _ := newProductTestFixture(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, ProductInput{Name: "Denim Jacket", Price: 60})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, ProductInput{Name: "Denim Jeans", Price: 45})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, ProductInput{Name: "Wool Scarf", Price: 15})
	require.NoError(t, err)

	results, total, err := uc.SearchProducts(ctx, "denim", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)
}
