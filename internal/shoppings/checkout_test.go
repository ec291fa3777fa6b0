// internal/shoppings/checkout_test.go
package shoppings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
)

type checkoutFixture struct {
	carts      *fakeCartStore
	lines      *fakeCartItemStore
	orders     *fakeOrderStore
	orderItems *fakeOrderItemStore
	activities *fakeOrderActivityStore
	catalog    *catalogFixture
	uow        *fakeUnitOfWork
	publisher  *recordingPublisher
	handler    *CheckoutHandler
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		carts:      newFakeCartStore(),
		lines:      newFakeCartItemStore(),
		orders:     newFakeOrderStore(),
		orderItems: &fakeOrderItemStore{},
		activities: &fakeOrderActivityStore{},
		catalog:    newCatalogFixture(),
		uow:        &fakeUnitOfWork{},
		publisher:  &recordingPublisher{},
	}
	f.handler = NewCheckoutHandler(
		f.carts, f.lines, f.orders, f.orderItems, f.activities,
		f.catalog.items, f.catalog.products, f.catalog.resolver,
		f.uow, f.publisher,
	)
	return f
}

func (f *checkoutFixture) seedCart(t *testing.T, userID uuid.UUID, lines ...models.CartItem) *models.Cart {
	t.Helper()
	cart := &models.Cart{UserID: userID, Status: models.CartStatusActive}
	require.NoError(t, f.carts.Add(context.Background(), cart))
	for i := range lines {
		lines[i].CartID = cart.ID
		require.NoError(t, f.lines.Add(context.Background(), &lines[i]))
	}
	cart.Items = lines
	return cart
}

func TestCheckoutCartNotFound(t *testing.T) {
	f := newCheckoutFixture()

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: uuid.New(), CartID: uuid.New()})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

func TestCheckoutNotOwner(t *testing.T) {
	f := newCheckoutFixture()
	_, baseItemID := f.catalog.addProduct("10.00", 5)
	cart := f.seedCart(t, uuid.New(), models.CartItem{BaseItemID: baseItemID, Quantity: 1})

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: uuid.New(), CartID: cart.ID})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeUnauthorized, res.ErrorType)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()
	cart := f.seedCart(t, userID)

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: userID, CartID: cart.ID})

	assert.Equal(t, results.StatusValidationError, res.Status)
}

func TestCheckoutCartAlreadyCheckedOut(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()
	_, baseItemID := f.catalog.addProduct("10.00", 5)
	cart := f.seedCart(t, userID, models.CartItem{BaseItemID: baseItemID, Quantity: 1})
	cart.Status = models.CartStatusCheckedOut

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: userID, CartID: cart.ID})

	assert.Equal(t, results.StatusValidationError, res.Status)
	// Without loaded locales Tr returns the key itself, which is enough to
	// tell the checked-out refusal apart from the empty-cart one.
	assert.Equal(t, i18n.KeyCartCheckedOut, res.Message)
}

func TestCheckoutSnapshotsPricesAndDecrementsStock(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()
	_, productBase := f.catalog.addProduct("10.50", 5)
	_, serviceBase := f.catalog.addService("25.00")
	cart := f.seedCart(t, userID,
		models.CartItem{BaseItemID: productBase, Quantity: 2},
		models.CartItem{BaseItemID: serviceBase, Quantity: 1},
	)

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: userID, CartID: cart.ID})

	require.True(t, res.Success)
	order := res.Data
	require.NotNil(t, order)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("46.00")),
		"total %s", order.TotalAmount)
	require.NotNil(t, order.CurrentActivity)
	assert.Equal(t, models.OrderStatusPending, order.CurrentActivity.Status)
	assert.Equal(t, &order.CurrentActivity.ID, order.OrderActivityID)

	orderItems, err := f.orderItems.ForOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, orderItems, 2)
	for _, item := range orderItems {
		assert.True(t, item.LineTotal.Equal(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	}

	product, err := f.catalog.products.GetByBaseItemID(context.Background(), productBase)
	require.NoError(t, err)
	assert.Equal(t, 3, product.StockCount)

	assert.Equal(t, models.CartStatusCheckedOut, cart.Status)
	for i := range cart.Items {
		assert.True(t, cart.Items[i].DeletedAt.Valid)
	}

	assert.Equal(t, 1, f.uow.commits)
	assert.Zero(t, f.uow.rollbacks)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.OrderCreated, f.publisher.events[0].Type)
	assert.Equal(t, order.ID, f.publisher.events[0].OrderID)
}

func TestCheckoutOversoldLineAborts(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()
	_, baseItemID := f.catalog.addProduct("10.00", 1)
	cart := f.seedCart(t, userID, models.CartItem{BaseItemID: baseItemID, Quantity: 2})

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: userID, CartID: cart.ID})

	assert.Equal(t, results.StatusValidationError, res.Status)
	assert.Zero(t, f.uow.commits)
	assert.Equal(t, 1, f.uow.rollbacks)
	assert.Empty(t, f.publisher.events)
	assert.Equal(t, models.CartStatusActive, cart.Status)
}

func TestCheckoutUnavailableItemAborts(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()
	_, baseItemID := f.catalog.addProduct("10.00", 5)
	f.catalog.items.items[baseItemID].IsAvailable = false
	cart := f.seedCart(t, userID, models.CartItem{BaseItemID: baseItemID, Quantity: 1})

	res := f.handler.Handle(context.Background(), CheckoutCommand{UserID: userID, CartID: cart.ID})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Zero(t, f.uow.commits)
	assert.Equal(t, 1, f.uow.rollbacks)
}
