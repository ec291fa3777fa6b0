// internal/shoppings/orders.go
package shoppings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type GetOrderByIDQuery struct {
	UserID  uuid.UUID `json:"-"`
	OrderID uuid.UUID `json:"-"`
}

type GetOrderByIDHandler struct {
	orders OrderStore
}

func NewGetOrderByIDHandler(orders OrderStore) *GetOrderByIDHandler {
	return &GetOrderByIDHandler{orders: orders}
}

func (h *GetOrderByIDHandler) Handle(ctx context.Context, q GetOrderByIDQuery) results.Result[*models.Order] {
	order, err := h.orders.GetWithItems(ctx, q.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	// Other users' orders look like they do not exist.
	if order.UserID != q.UserID {
		return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyOrderNotFound))
	}
	return results.Ok(order)
}

type ListUserOrdersQuery struct {
	UserID     uuid.UUID `json:"-"`
	Pagination utils.PaginationParams
}

type ListUserOrdersHandler struct {
	orders OrderStore
}

func NewListUserOrdersHandler(orders OrderStore) *ListUserOrdersHandler {
	return &ListUserOrdersHandler{orders: orders}
}

func (h *ListUserOrdersHandler) Handle(ctx context.Context, q ListUserOrdersQuery) results.Result[results.PaginatedResult[models.Order]] {
	orders, total, err := h.orders.ListForUser(ctx, q.UserID, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.Order]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(orders, q.Pagination.Page, q.Pagination.Limit, total))
}

type ListOrderActivitiesQuery struct {
	UserID  uuid.UUID `json:"-"`
	OrderID uuid.UUID `json:"-"`
}

type ListOrderActivitiesHandler struct {
	orders     OrderStore
	activities OrderActivityStore
}

func NewListOrderActivitiesHandler(orders OrderStore, activities OrderActivityStore) *ListOrderActivitiesHandler {
	return &ListOrderActivitiesHandler{orders: orders, activities: activities}
}

func (h *ListOrderActivitiesHandler) Handle(ctx context.Context, q ListOrderActivitiesQuery) results.Result[[]models.OrderActivity] {
	order, err := h.orders.GetWithItems(ctx, q.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[[]models.OrderActivity](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[[]models.OrderActivity](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != q.UserID {
		return results.NotFound[[]models.OrderActivity](i18n.Tr(ctx, i18n.KeyOrderNotFound))
	}

	activities, err := h.activities.ForOrder(ctx, q.OrderID)
	if err != nil {
		return results.Internal[[]models.OrderActivity](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(activities)
}

func currentStatus(order *models.Order) models.OrderStatus {
	if order.CurrentActivity == nil {
		return models.OrderStatusPending
	}
	return order.CurrentActivity.Status
}

// transition appends a new activity row and repoints the order inside one
// transaction. The activity log is append-only; rows are never updated.
func transition(ctx context.Context, uow database.UnitOfWork, orders OrderStore, activities OrderActivityStore, order *models.Order, status models.OrderStatus, note string) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			uow.Rollback(txCtx)
		}
	}()

	activity := &models.OrderActivity{OrderID: order.ID, Status: status, Note: note}
	if err := activities.Add(txCtx, activity); err != nil {
		return err
	}
	if err := uow.Save(txCtx); err != nil {
		return err
	}

	order.OrderActivityID = &activity.ID
	if err := orders.Update(txCtx, order); err != nil {
		return err
	}

	if err := uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true

	order.CurrentActivity = activity
	return nil
}

type CancelOrderCommand struct {
	UserID  uuid.UUID `json:"-"`
	OrderID uuid.UUID `json:"-"`
	Reason  string    `json:"reason"`
}

// CancelOrderHandler cancels an order and restores product stock. The
// cancellation itself is transactional; stock restoration runs afterwards
// through the mediator and is best effort.
type CancelOrderHandler struct {
	orders     OrderStore
	activities OrderActivityStore
	resolver   ItemResolver
	uow        database.UnitOfWork
	med        *mediator.Mediator
	publisher  events.Publisher
}

func NewCancelOrderHandler(orders OrderStore, activities OrderActivityStore, resolver ItemResolver, uow database.UnitOfWork, med *mediator.Mediator, publisher events.Publisher) *CancelOrderHandler {
	return &CancelOrderHandler{orders: orders, activities: activities, resolver: resolver, uow: uow, med: med, publisher: publisher}
}

func (h *CancelOrderHandler) Handle(ctx context.Context, cmd CancelOrderCommand) results.Result[*models.Order] {
	order, err := h.orders.GetWithItems(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != cmd.UserID {
		return results.Fail[*models.Order](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
	}

	switch currentStatus(order) {
	case models.OrderStatusCancelled, models.OrderStatusDelivered:
		return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyOrderFinalState))
	}

	if err := transition(ctx, h.uow, h.orders, h.activities, order, models.OrderStatusCancelled, cmd.Reason); err != nil {
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	// Compensation after commit. A failed restock never un-cancels the
	// order; it is logged for the operators to reconcile.
	for _, item := range order.Items {
		resolution, err := h.resolver.ResolveBase(ctx, item.BaseItemID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"order_id":     order.ID,
				"base_item_id": item.BaseItemID,
			}).Warn("Stock compensation skipped, item could not be resolved")
			continue
		}
		if resolution.Kind != models.ItemKindProduct {
			continue
		}

		restock := mediator.Send[int](ctx, h.med, catalogs.AdjustProductStockCommand{
			ProductID: resolution.ConcreteID,
			Delta:     item.Quantity,
		})
		if !restock.Success {
			logrus.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"product_id": resolution.ConcreteID,
				"quantity":   item.Quantity,
				"message":    restock.Message,
			}).Warn("Stock compensation failed")
		}
	}

	h.publisher.PublishOrderEvent(events.OrderEvent{
		Type:        events.OrderCancelled,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	})

	return results.OkMsg(order, i18n.Tr(ctx, i18n.KeyOrderCancelled))
}

type MarkOrderShippedCommand struct {
	OrderID uuid.UUID `json:"-"`
}

type MarkOrderShippedHandler struct {
	orders     OrderStore
	activities OrderActivityStore
	uow        database.UnitOfWork
	publisher  events.Publisher
}

func NewMarkOrderShippedHandler(orders OrderStore, activities OrderActivityStore, uow database.UnitOfWork, publisher events.Publisher) *MarkOrderShippedHandler {
	return &MarkOrderShippedHandler{orders: orders, activities: activities, uow: uow, publisher: publisher}
}

func (h *MarkOrderShippedHandler) Handle(ctx context.Context, cmd MarkOrderShippedCommand) results.Result[*models.Order] {
	order, err := h.orders.GetWithItems(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	switch currentStatus(order) {
	case models.OrderStatusPending, models.OrderStatusPaid:
	default:
		return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyOrderFinalState))
	}

	if err := transition(ctx, h.uow, h.orders, h.activities, order, models.OrderStatusShipped, ""); err != nil {
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	h.publisher.PublishOrderEvent(events.OrderEvent{
		Type:        events.OrderShipped,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	})

	return results.OkMsg(order, i18n.Tr(ctx, i18n.KeyOrderShipped))
}

type MarkOrderDeliveredCommand struct {
	OrderID uuid.UUID `json:"-"`
}

type MarkOrderDeliveredHandler struct {
	orders     OrderStore
	activities OrderActivityStore
	uow        database.UnitOfWork
	publisher  events.Publisher
}

func NewMarkOrderDeliveredHandler(orders OrderStore, activities OrderActivityStore, uow database.UnitOfWork, publisher events.Publisher) *MarkOrderDeliveredHandler {
	return &MarkOrderDeliveredHandler{orders: orders, activities: activities, uow: uow, publisher: publisher}
}

func (h *MarkOrderDeliveredHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) results.Result[*models.Order] {
	order, err := h.orders.GetWithItems(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if currentStatus(order) != models.OrderStatusShipped {
		return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyOrderFinalState))
	}

	if err := transition(ctx, h.uow, h.orders, h.activities, order, models.OrderStatusDelivered, ""); err != nil {
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	h.publisher.PublishOrderEvent(events.OrderEvent{
		Type:        events.OrderDelivered,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	})

	return results.OkMsg(order, i18n.Tr(ctx, i18n.KeyOrderDelivered))
}
