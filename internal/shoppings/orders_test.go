// internal/shoppings/orders_test.go
package shoppings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
)

func seedOrder(t *testing.T, orders *fakeOrderStore, activities *fakeOrderActivityStore, userID uuid.UUID, status models.OrderStatus, items ...models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:      userID,
		CartID:      uuid.New(),
		TotalAmount: decimal.RequireFromString("21.00"),
	}
	require.NoError(t, orders.Add(context.Background(), order))
	for i := range items {
		items[i].OrderID = order.ID
	}
	order.Items = items

	activity := &models.OrderActivity{OrderID: order.ID, Status: status}
	require.NoError(t, activities.Add(context.Background(), activity))
	order.OrderActivityID = &activity.ID
	order.CurrentActivity = activity
	return order
}

func TestGetOrderByIDHidesOtherUsersOrders(t *testing.T) {
	orders := newFakeOrderStore()
	activities := &fakeOrderActivityStore{}
	order := seedOrder(t, orders, activities, uuid.New(), models.OrderStatusPending)
	h := NewGetOrderByIDHandler(orders)

	res := h.Handle(context.Background(), GetOrderByIDQuery{UserID: uuid.New(), OrderID: order.ID})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

func TestGetOrderByID(t *testing.T) {
	orders := newFakeOrderStore()
	activities := &fakeOrderActivityStore{}
	userID := uuid.New()
	order := seedOrder(t, orders, activities, userID, models.OrderStatusPending)
	h := NewGetOrderByIDHandler(orders)

	res := h.Handle(context.Background(), GetOrderByIDQuery{UserID: userID, OrderID: order.ID})

	require.True(t, res.Success)
	assert.Equal(t, order.ID, res.Data.ID)
}

func TestListOrderActivitiesHidesOtherUsersOrders(t *testing.T) {
	orders := newFakeOrderStore()
	activities := &fakeOrderActivityStore{}
	order := seedOrder(t, orders, activities, uuid.New(), models.OrderStatusPending)
	h := NewListOrderActivitiesHandler(orders, activities)

	res := h.Handle(context.Background(), ListOrderActivitiesQuery{UserID: uuid.New(), OrderID: order.ID})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

type cancelFixture struct {
	orders     *fakeOrderStore
	activities *fakeOrderActivityStore
	catalog    *catalogFixture
	uow        *fakeUnitOfWork
	med        *mediator.Mediator
	publisher  *recordingPublisher
	restocks   []catalogs.AdjustProductStockCommand
	handler    *CancelOrderHandler
}

func newCancelFixture(restockResult results.Result[int]) *cancelFixture {
	f := &cancelFixture{
		orders:     newFakeOrderStore(),
		activities: &fakeOrderActivityStore{},
		catalog:    newCatalogFixture(),
		uow:        &fakeUnitOfWork{},
		med:        mediator.New(),
		publisher:  &recordingPublisher{},
	}
	mediator.RegisterFunc(f.med, func(_ context.Context, cmd catalogs.AdjustProductStockCommand) results.Result[int] {
		f.restocks = append(f.restocks, cmd)
		return restockResult
	})
	f.handler = NewCancelOrderHandler(f.orders, f.activities, f.catalog.resolver, f.uow, f.med, f.publisher)
	return f
}

func TestCancelOrderNotOwner(t *testing.T) {
	f := newCancelFixture(results.Ok(0))
	order := seedOrder(t, f.orders, f.activities, uuid.New(), models.OrderStatusPending)

	res := f.handler.Handle(context.Background(), CancelOrderCommand{UserID: uuid.New(), OrderID: order.ID})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeUnauthorized, res.ErrorType)
	assert.Len(t, f.activities.activities, 1)
	assert.Empty(t, f.publisher.events)
}

func TestCancelOrderFinalStates(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderStatusCancelled, models.OrderStatusDelivered} {
		t.Run(string(status), func(t *testing.T) {
			f := newCancelFixture(results.Ok(0))
			userID := uuid.New()
			order := seedOrder(t, f.orders, f.activities, userID, status)

			res := f.handler.Handle(context.Background(), CancelOrderCommand{UserID: userID, OrderID: order.ID})

			assert.Equal(t, results.StatusValidationError, res.Status)
			assert.Len(t, f.activities.activities, 1)
		})
	}
}

func TestCancelOrderRestoresProductStock(t *testing.T) {
	f := newCancelFixture(results.Ok(7))
	userID := uuid.New()
	_, productBase := f.catalog.addProduct("10.00", 0)
	_, serviceBase := f.catalog.addService("25.00")
	order := seedOrder(t, f.orders, f.activities, userID, models.OrderStatusPaid,
		models.OrderItem{BaseItemID: productBase, Quantity: 2},
		models.OrderItem{BaseItemID: serviceBase, Quantity: 1},
	)

	res := f.handler.Handle(context.Background(), CancelOrderCommand{
		UserID:  userID,
		OrderID: order.ID,
		Reason:  "changed my mind",
	})

	require.True(t, res.Success)
	require.NotNil(t, order.CurrentActivity)
	assert.Equal(t, models.OrderStatusCancelled, order.CurrentActivity.Status)
	assert.Equal(t, "changed my mind", order.CurrentActivity.Note)

	// Only the product line triggers compensation.
	require.Len(t, f.restocks, 1)
	productRes, err := f.catalog.resolver.ResolveBase(context.Background(), productBase)
	require.NoError(t, err)
	assert.Equal(t, productRes.ConcreteID, f.restocks[0].ProductID)
	assert.Equal(t, 2, f.restocks[0].Delta)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.OrderCancelled, f.publisher.events[0].Type)
	assert.Equal(t, order.ID, f.publisher.events[0].OrderID)
}

func TestCancelOrderSurvivesFailedRestock(t *testing.T) {
	f := newCancelFixture(results.Fail[int]("AdjustStockFailed", "stock row gone", nil))
	userID := uuid.New()
	_, productBase := f.catalog.addProduct("10.00", 0)
	order := seedOrder(t, f.orders, f.activities, userID, models.OrderStatusPending,
		models.OrderItem{BaseItemID: productBase, Quantity: 1},
	)

	res := f.handler.Handle(context.Background(), CancelOrderCommand{UserID: userID, OrderID: order.ID})

	// Compensation is best effort; the cancellation stands.
	require.True(t, res.Success)
	assert.Equal(t, models.OrderStatusCancelled, order.CurrentActivity.Status)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.OrderCancelled, f.publisher.events[0].Type)
}

func TestCancelOrderSkipsUnresolvableItems(t *testing.T) {
	f := newCancelFixture(results.Ok(0))
	userID := uuid.New()
	order := seedOrder(t, f.orders, f.activities, userID, models.OrderStatusPending,
		models.OrderItem{BaseItemID: uuid.New(), Quantity: 1},
	)

	res := f.handler.Handle(context.Background(), CancelOrderCommand{UserID: userID, OrderID: order.ID})

	require.True(t, res.Success)
	assert.Empty(t, f.restocks)
}

func TestMarkOrderShipped(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderStatusPending, models.OrderStatusPaid} {
		t.Run(string(status), func(t *testing.T) {
			orders := newFakeOrderStore()
			activities := &fakeOrderActivityStore{}
			publisher := &recordingPublisher{}
			order := seedOrder(t, orders, activities, uuid.New(), status)
			h := NewMarkOrderShippedHandler(orders, activities, &fakeUnitOfWork{}, publisher)

			res := h.Handle(context.Background(), MarkOrderShippedCommand{OrderID: order.ID})

			require.True(t, res.Success)
			assert.Equal(t, models.OrderStatusShipped, order.CurrentActivity.Status)
			require.Len(t, publisher.events, 1)
			assert.Equal(t, events.OrderShipped, publisher.events[0].Type)
		})
	}
}

func TestMarkOrderShippedRejectsOtherStates(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			orders := newFakeOrderStore()
			activities := &fakeOrderActivityStore{}
			order := seedOrder(t, orders, activities, uuid.New(), status)
			h := NewMarkOrderShippedHandler(orders, activities, &fakeUnitOfWork{}, &recordingPublisher{})

			res := h.Handle(context.Background(), MarkOrderShippedCommand{OrderID: order.ID})

			assert.Equal(t, results.StatusValidationError, res.Status)
		})
	}
}

func TestMarkOrderDelivered(t *testing.T) {
	orders := newFakeOrderStore()
	activities := &fakeOrderActivityStore{}
	publisher := &recordingPublisher{}
	order := seedOrder(t, orders, activities, uuid.New(), models.OrderStatusShipped)
	h := NewMarkOrderDeliveredHandler(orders, activities, &fakeUnitOfWork{}, publisher)

	res := h.Handle(context.Background(), MarkOrderDeliveredCommand{OrderID: order.ID})

	require.True(t, res.Success)
	assert.Equal(t, models.OrderStatusDelivered, order.CurrentActivity.Status)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.OrderDelivered, publisher.events[0].Type)
}

func TestMarkOrderDeliveredRequiresShipped(t *testing.T) {
	orders := newFakeOrderStore()
	activities := &fakeOrderActivityStore{}
	order := seedOrder(t, orders, activities, uuid.New(), models.OrderStatusPending)
	h := NewMarkOrderDeliveredHandler(orders, activities, &fakeUnitOfWork{}, &recordingPublisher{})

	res := h.Handle(context.Background(), MarkOrderDeliveredCommand{OrderID: order.ID})

	assert.Equal(t, results.StatusValidationError, res.Status)
}
