package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylemart/internal/domain/entity"
	"stylemart/pkg/errors"
)

func newCartTestFixture(t *testing.T) (*CartUseCase, *fakeCartRepo, *fakeGuestCartRepo, *fakeProductRepo) {
	t.Helper()
	cartRepo := newFakeCartRepo()
	guestCartRepo := newFakeGuestCartRepo()
	productRepo := newFakeProductRepo()
	uc := NewCartUseCase(cartRepo, guestCartRepo, productRepo)
	return uc, cartRepo, guestCartRepo, productRepo
}

func TestGetCartSynthesizesEmpty(t *testing.T) {
	uc, _, _, _ := newCartTestFixture(t)

	cart, err := uc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestAddItemCreatesCart(t *testing.T) {
	uc, cartRepo, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	cart, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	stored, err := cartRepo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.ID)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	cart, err := uc.AddItem(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	// Same product twice folds into one line, never a duplicate.
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemPreservesLineOrder(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")
	seedProduct(t, productRepo, "p2")

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "u1", "p2", 1)
	require.NoError(t, err)

	cart, err := uc.AddItem(ctx, "u1", "p1", 4)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	uc, _, _, _ := newCartTestFixture(t)

	for _, quantity := range []int{0, -3} {
		_, err := uc.AddItem(context.Background(), "u1", "p1", quantity)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestRemoveItemDropsLine(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")
	seedProduct(t, productRepo, "p2")

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "u1", "p2", 2)
	require.NoError(t, err)

	cart, err := uc.RemoveItem(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestRemoveItemMissingLineIsNoop(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	cart, err := uc.RemoveItem(ctx, "u1", "never-added")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// No cart at all is fine too.
	empty, err := uc.RemoveItem(ctx, "u2", "p1")
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}

func TestClearDeletesCart(t *testing.T) {
	uc, cartRepo, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "u1"))

	_, err = cartRepo.GetByUserID(ctx, "u1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// Clearing again is a no-op.
	require.NoError(t, uc.Clear(ctx, "u1"))
}

func TestCartResponseToleratesDanglingProduct(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	require.NoError(t, productRepo.Delete(ctx, "p1"))

	cart, err := uc.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Nil(t, cart.Items[0].Product)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestMergeGuestCartFoldsLines(t *testing.T) {
	uc, _, guestCartRepo, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")
	seedProduct(t, productRepo, "p2")

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	require.NoError(t, guestCartRepo.Save(ctx, &entity.GuestCart{
		SessionID: "s1",
		Items: []entity.CartItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 1},
		},
	}))

	cart, err := uc.MergeGuestCart(ctx, "u1", "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "p2", cart.Items[1].ProductID)

	// The session cart is consumed by the merge.
	_, err = guestCartRepo.Get(ctx, "s1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestMergeGuestCartMissingSession(t *testing.T) {
	uc, _, _, productRepo := newCartTestFixture(t)
	ctx := context.Background()
	seedProduct(t, productRepo, "p1")

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	cart, err := uc.MergeGuestCart(ctx, "u1", "gone")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestGuestCartLifecycle(t *testing.T) {
	uc, _, _, _ := newCartTestFixture(t)
	ctx := context.Background()

	cart, err := uc.GetGuestCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = uc.AddGuestItem(ctx, "s1", "p1", 2)
	require.NoError(t, err)
	cart, err = uc.AddGuestItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart, err = uc.RemoveGuestItem(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, uc.ClearGuestCart(ctx, "s1"))
}
