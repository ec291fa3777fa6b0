// internal/shoppings/checkout.go
package shoppings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
)

type CheckoutCommand struct {
	UserID uuid.UUID `json:"-"`
	CartID uuid.UUID `json:"cart_id" validate:"required"`
}

// CheckoutHandler turns the active cart into an order. Prices are read from
// the catalog at checkout time and snapshotted onto order items; product
// stock is decremented in the same transaction, so an oversold line aborts
// the whole checkout.
type CheckoutHandler struct {
	carts      CartStore
	lines      CartItemStore
	orders     OrderStore
	orderItems OrderItemStore
	activities OrderActivityStore
	items      BaseItemStore
	products   ProductStore
	resolver   ItemResolver
	uow        database.UnitOfWork
	publisher  events.Publisher
}

func NewCheckoutHandler(
	carts CartStore,
	lines CartItemStore,
	orders OrderStore,
	orderItems OrderItemStore,
	activities OrderActivityStore,
	items BaseItemStore,
	products ProductStore,
	resolver ItemResolver,
	uow database.UnitOfWork,
	publisher events.Publisher,
) *CheckoutHandler {
	return &CheckoutHandler{
		carts:      carts,
		lines:      lines,
		orders:     orders,
		orderItems: orderItems,
		activities: activities,
		items:      items,
		products:   products,
		resolver:   resolver,
		uow:        uow,
		publisher:  publisher,
	}
}

func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) results.Result[*models.Order] {
	cart, err := h.carts.GetWithItems(ctx, cmd.CartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyCartNotFound))
		}
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if cart.UserID != cmd.UserID {
		return results.Fail[*models.Order](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyCartNotFound), nil)
	}
	if cart.Status != models.CartStatusActive {
		return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyCartCheckedOut))
	}
	if len(cart.Items) == 0 {
		return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyCartEmpty))
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	order := &models.Order{
		UserID:      cmd.UserID,
		CartID:      cart.ID,
		TotalAmount: decimal.Zero,
	}
	if err := h.orders.Add(txCtx, order); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}

	total := decimal.Zero
	for i := range cart.Items {
		line := &cart.Items[i]

		item, err := h.items.GetByID(txCtx, line.BaseItemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return results.NotFound[*models.Order](i18n.Tr(ctx, i18n.KeyItemNotFound))
			}
			return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		if !item.IsAvailable {
			return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), nil)
		}

		resolution, err := h.resolver.ResolveBase(txCtx, line.BaseItemID)
		if err != nil {
			return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		if resolution.Kind == models.ItemKindProduct {
			product, err := h.products.GetByBaseItemID(txCtx, line.BaseItemID)
			if err != nil {
				return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
			}
			if product.StockCount < line.Quantity {
				return results.Validation[*models.Order](i18n.Tr(ctx, i18n.KeyProductOutOfStock))
			}
			product.StockCount -= line.Quantity
			if err := h.products.Update(txCtx, product); err != nil {
				return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
			}
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		orderItem := &models.OrderItem{
			OrderID:    order.ID,
			BaseItemID: line.BaseItemID,
			Quantity:   line.Quantity,
			Price:      item.Price,
			LineTotal:  lineTotal,
		}
		if err := h.orderItems.Add(txCtx, orderItem); err != nil {
			return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
		}
		total = total.Add(lineTotal)

		if err := h.lines.Remove(txCtx, line); err != nil {
			return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	activity := &models.OrderActivity{OrderID: order.ID, Status: models.OrderStatusPending}
	if err := h.activities.Add(txCtx, activity); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}

	order.TotalAmount = total
	order.OrderActivityID = &activity.ID
	if err := h.orders.Update(txCtx, order); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}

	cart.Status = models.CartStatusCheckedOut
	if err := h.carts.Update(txCtx, cart); err != nil {
		return results.Fail[*models.Order]("CheckoutFailed", i18n.Tr(ctx, i18n.KeyCheckoutFailed), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Order](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  cmd.UserID,
		"total":    total,
	}).Info("Order created")

	h.publisher.PublishOrderEvent(events.OrderEvent{
		Type:        events.OrderCreated,
		OrderID:     order.ID,
		UserID:      cmd.UserID,
		TotalAmount: total,
		OccurredAt:  time.Now(),
	})

	order.CurrentActivity = activity
	return results.OkMsg(order, i18n.Tr(ctx, i18n.KeyOrderCreated))
}
