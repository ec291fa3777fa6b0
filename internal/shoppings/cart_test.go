// internal/shoppings/cart_test.go
package shoppings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
)

func newAddToCartHandler(carts *fakeCartStore, lines *fakeCartItemStore, catalog *catalogFixture) *AddToCartHandler {
	return NewAddToCartHandler(carts, lines, catalog.items, catalog.products, catalog.resolver, &fakeUnitOfWork{})
}

func TestAddToCartUnknownItem(t *testing.T) {
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	h := newAddToCartHandler(carts, lines, newCatalogFixture())

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		Quantity: 1,
	})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

func TestAddToCartUnavailableItem(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, baseItemID := catalog.addProduct("10.00", 5)
	catalog.items.items[baseItemID].IsAvailable = false
	h := newAddToCartHandler(newFakeCartStore(), newFakeCartItemStore(), catalog)

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   itemID,
		Quantity: 1,
	})

	assert.Equal(t, results.StatusFailed, res.Status)
}

func TestAddToCartCreatesCartAndLine(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, baseItemID := catalog.addProduct("10.00", 5)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	h := newAddToCartHandler(carts, lines, catalog)
	userID := uuid.New()

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 2,
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, baseItemID, res.Data.BaseItemID)
	assert.Equal(t, 2, res.Data.Quantity)

	cart, err := carts.ActiveForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, res.Data.CartID)
}

func TestAddToCartGrowsLiveLine(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	h := newAddToCartHandler(carts, lines, catalog)
	userID := uuid.New()

	first := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 2})
	require.True(t, first.Success)

	second := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 3})

	require.True(t, second.Success)
	assert.Equal(t, 5, second.Data.Quantity)
	assert.Equal(t, first.Data.ID, second.Data.ID)
}

func TestAddToCartRevivesDeletedLine(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	h := newAddToCartHandler(carts, lines, catalog)
	userID := uuid.New()

	first := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 4})
	require.True(t, first.Success)
	require.NoError(t, lines.Remove(context.Background(), first.Data))

	// A revived line starts over at the requested quantity, it does not
	// inherit the deleted row's count.
	second := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 3})

	require.True(t, second.Success)
	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.Equal(t, 3, second.Data.Quantity)
	assert.False(t, second.Data.DeletedAt.Valid)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 2)
	h := newAddToCartHandler(newFakeCartStore(), newFakeCartItemStore(), catalog)

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   itemID,
		Quantity: 3,
	})

	assert.Equal(t, results.StatusValidationError, res.Status)
}

func TestAddToCartStockCoversCombinedQuantity(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 5)
	h := newAddToCartHandler(newFakeCartStore(), newFakeCartItemStore(), catalog)
	userID := uuid.New()

	first := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 3})
	require.True(t, first.Success)

	// 3 already in the cart, 3 more would exceed the 5 in stock.
	second := h.Handle(context.Background(), AddToCartCommand{UserID: userID, ItemID: itemID, Quantity: 3})

	assert.Equal(t, results.StatusValidationError, second.Status)
}

func TestAddToCartServiceSkipsStockCheck(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addService("25.00")
	h := newAddToCartHandler(newFakeCartStore(), newFakeCartItemStore(), catalog)

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   itemID,
		Quantity: 50,
	})

	assert.True(t, res.Success)
}

func TestAddToCartCommitsCartAndLineTogether(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 5)
	uow := &fakeUnitOfWork{}
	h := NewAddToCartHandler(newFakeCartStore(), newFakeCartItemStore(), catalog.items, catalog.products, catalog.resolver, uow)

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   itemID,
		Quantity: 1,
	})

	require.True(t, res.Success)
	assert.Equal(t, 1, uow.commits)
	assert.Zero(t, uow.rollbacks)
}

func TestAddToCartRollsBackWhenLineWriteFails(t *testing.T) {
	catalog := newCatalogFixture()
	itemID, _ := catalog.addProduct("10.00", 5)
	lines := newFakeCartItemStore()
	lines.addErr = errors.New("insert failed")
	uow := &fakeUnitOfWork{}
	h := NewAddToCartHandler(newFakeCartStore(), lines, catalog.items, catalog.products, catalog.resolver, uow)

	res := h.Handle(context.Background(), AddToCartCommand{
		UserID:   uuid.New(),
		ItemID:   itemID,
		Quantity: 1,
	})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Zero(t, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
}

func seedCartWithLine(t *testing.T, carts *fakeCartStore, lines *fakeCartItemStore, userID, baseItemID uuid.UUID, quantity int) *models.CartItem {
	t.Helper()
	cart := &models.Cart{UserID: userID, Status: models.CartStatusActive}
	require.NoError(t, carts.Add(context.Background(), cart))
	line := &models.CartItem{CartID: cart.ID, BaseItemID: baseItemID, Quantity: quantity}
	require.NoError(t, lines.Add(context.Background(), line))
	return line
}

func TestUpdateCartItemQuantity(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	userID := uuid.New()
	line := seedCartWithLine(t, carts, lines, userID, baseItemID, 2)
	h := NewUpdateCartItemQuantityHandler(carts, lines, catalog.products, catalog.resolver)

	res := h.Handle(context.Background(), UpdateCartItemQuantityCommand{
		UserID:     userID,
		CartItemID: line.ID,
		Quantity:   7,
	})

	require.True(t, res.Success)
	assert.Equal(t, 7, res.Data.Quantity)
}

func TestUpdateCartItemQuantityZeroRemoves(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	userID := uuid.New()
	line := seedCartWithLine(t, carts, lines, userID, baseItemID, 2)
	h := NewUpdateCartItemQuantityHandler(carts, lines, catalog.products, catalog.resolver)

	res := h.Handle(context.Background(), UpdateCartItemQuantityCommand{
		UserID:     userID,
		CartItemID: line.ID,
		Quantity:   0,
	})

	require.True(t, res.Success)
	assert.True(t, line.DeletedAt.Valid)
}

func TestUpdateCartItemQuantityNotOwner(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	line := seedCartWithLine(t, carts, lines, uuid.New(), baseItemID, 2)
	h := NewUpdateCartItemQuantityHandler(carts, lines, catalog.products, catalog.resolver)

	res := h.Handle(context.Background(), UpdateCartItemQuantityCommand{
		UserID:     uuid.New(),
		CartItemID: line.ID,
		Quantity:   1,
	})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeUnauthorized, res.ErrorType)
}

func TestUpdateCartItemQuantityRechecksStock(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 3)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	userID := uuid.New()
	line := seedCartWithLine(t, carts, lines, userID, baseItemID, 2)
	h := NewUpdateCartItemQuantityHandler(carts, lines, catalog.products, catalog.resolver)

	res := h.Handle(context.Background(), UpdateCartItemQuantityCommand{
		UserID:     userID,
		CartItemID: line.ID,
		Quantity:   4,
	})

	assert.Equal(t, results.StatusValidationError, res.Status)
}

func TestUpdateCartItemQuantityMissingLine(t *testing.T) {
	catalog := newCatalogFixture()
	h := NewUpdateCartItemQuantityHandler(newFakeCartStore(), newFakeCartItemStore(), catalog.products, catalog.resolver)

	res := h.Handle(context.Background(), UpdateCartItemQuantityCommand{
		UserID:     uuid.New(),
		CartItemID: uuid.New(),
		Quantity:   1,
	})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

func TestRemoveFromCart(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	userID := uuid.New()
	line := seedCartWithLine(t, carts, lines, userID, baseItemID, 2)
	h := NewRemoveFromCartHandler(carts, lines)

	res := h.Handle(context.Background(), RemoveFromCartCommand{UserID: userID, CartItemID: line.ID})

	require.True(t, res.Success)
	assert.True(t, line.DeletedAt.Valid)
}

func TestRemoveFromCartNotOwner(t *testing.T) {
	catalog := newCatalogFixture()
	_, baseItemID := catalog.addProduct("10.00", 10)
	carts := newFakeCartStore()
	lines := newFakeCartItemStore()
	line := seedCartWithLine(t, carts, lines, uuid.New(), baseItemID, 2)
	h := NewRemoveFromCartHandler(carts, lines)

	res := h.Handle(context.Background(), RemoveFromCartCommand{UserID: uuid.New(), CartItemID: line.ID})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeUnauthorized, res.ErrorType)
	assert.False(t, line.DeletedAt.Valid)
}

func TestGetActiveCartMissing(t *testing.T) {
	h := NewGetActiveCartHandler(newFakeCartStore())

	res := h.Handle(context.Background(), GetActiveCartQuery{UserID: uuid.New()})

	assert.Equal(t, results.StatusNotFound, res.Status)
}
