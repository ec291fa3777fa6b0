// internal/payments/payments.go

// Package payments records payment attempts against orders and keeps the
// order activity log in step with provider outcomes.
package payments

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

type CreatePaymentCommand struct {
	UserID     uuid.UUID `json:"-"`
	OrderID    uuid.UUID `json:"order_id" validate:"required"`
	MethodCode string    `json:"method_code" validate:"required"`
}

// CreatePaymentResult carries the client secret the frontend needs to finish
// the provider flow.
type CreatePaymentResult struct {
	Payment      *models.Payment `json:"payment"`
	ClientSecret string          `json:"client_secret,omitempty"`
}

type CreatePaymentHandler struct {
	payments PaymentStore
	methods  PaymentMethodStore
	orders   OrderStore
	gateway  Gateway
}

func NewCreatePaymentHandler(payments PaymentStore, methods PaymentMethodStore, orders OrderStore, gateway Gateway) *CreatePaymentHandler {
	return &CreatePaymentHandler{payments: payments, methods: methods, orders: orders, gateway: gateway}
}

func (h *CreatePaymentHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) results.Result[CreatePaymentResult] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	order, err := h.orders.GetWithItems(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != cmd.UserID {
		return results.Fail[CreatePaymentResult](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
	}
	if order.CurrentActivity != nil && order.CurrentActivity.Status != models.OrderStatusPending {
		return results.Validation[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyPaymentNotPayable))
	}

	// One live payment per order; a failed or refunded attempt may be retried.
	if existing, err := h.payments.ForOrder(ctx, cmd.OrderID); err == nil {
		if existing.Status == models.PaymentStatusPending || existing.Status == models.PaymentStatusSucceeded {
			return results.Fail[CreatePaymentResult](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyPaymentExists), nil)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	method, err := h.methods.GetByCode(ctx, cmd.MethodCode)
	if err != nil || !method.Enabled {
		return results.Validation[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyPaymentMethodInvalid))
	}

	intent, err := h.gateway.CreateIntent(ctx, order.TotalAmount, "", map[string]string{
		"order_id": order.ID.String(),
		"user_id":  cmd.UserID.String(),
	})
	if err != nil {
		return results.Fail[CreatePaymentResult]("PaymentFailed", i18n.Tr(ctx, i18n.KeyPaymentFailed), err)
	}

	payment := &models.Payment{
		OrderID:         order.ID,
		PaymentMethodID: method.ID,
		Amount:          order.TotalAmount,
		Status:          models.PaymentStatusPending,
		ProviderRef:     intent.Ref,
	}
	if err := h.payments.Add(ctx, payment); err != nil {
		return results.Internal[CreatePaymentResult](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	return results.OkMsg(CreatePaymentResult{Payment: payment, ClientSecret: intent.ClientSecret},
		i18n.Tr(ctx, i18n.KeyPaymentCreated))
}

type ConfirmPaymentCommand struct {
	UserID    uuid.UUID `json:"-"`
	PaymentID uuid.UUID `json:"payment_id" validate:"required"`
}

// ConfirmPaymentHandler reads the provider intent status. On success the
// payment and the order's paid activity commit together.
type ConfirmPaymentHandler struct {
	payments   PaymentStore
	orders     OrderStore
	activities OrderActivityStore
	gateway    Gateway
	uow        database.UnitOfWork
	publisher  events.Publisher
}

func NewConfirmPaymentHandler(payments PaymentStore, orders OrderStore, activities OrderActivityStore, gateway Gateway, uow database.UnitOfWork, publisher events.Publisher) *ConfirmPaymentHandler {
	return &ConfirmPaymentHandler{payments: payments, orders: orders, activities: activities, gateway: gateway, uow: uow, publisher: publisher}
}

func (h *ConfirmPaymentHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) results.Result[*models.Payment] {
	payment, err := h.payments.GetByID(ctx, cmd.PaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentNotFound))
		}
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	order, err := h.orders.GetWithItems(ctx, payment.OrderID)
	if err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != cmd.UserID {
		return results.Fail[*models.Payment](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
	}
	if payment.Status != models.PaymentStatusPending {
		return results.Validation[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentNotPayable))
	}

	status, err := h.gateway.IntentStatus(ctx, payment.ProviderRef)
	if err != nil {
		return results.Fail[*models.Payment]("PaymentFailed", i18n.Tr(ctx, i18n.KeyPaymentFailed), err)
	}

	switch status {
	case IntentSucceeded:
	case IntentPending:
		return results.Validation[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentFailed))
	default:
		payment.Status = models.PaymentStatusFailed
		if err := h.payments.Update(ctx, payment); err != nil {
			return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		return results.Fail[*models.Payment]("PaymentFailed", i18n.Tr(ctx, i18n.KeyPaymentFailed), nil)
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	now := time.Now()
	payment.Status = models.PaymentStatusSucceeded
	payment.ProcessedAt = &now
	if err := h.payments.Update(txCtx, payment); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	activity := &models.OrderActivity{OrderID: order.ID, Status: models.OrderStatusPaid}
	if err := h.activities.Add(txCtx, activity); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	order.OrderActivityID = &activity.ID
	if err := h.orders.Update(txCtx, order); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"order_id":   order.ID,
	}).Info("Payment confirmed")

	h.publisher.PublishOrderEvent(events.OrderEvent{
		Type:        events.OrderPaid,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	})

	return results.OkMsg(payment, i18n.Tr(ctx, i18n.KeyPaymentSuccess))
}

type RefundPaymentCommand struct {
	UserID    uuid.UUID `json:"-"`
	PaymentID uuid.UUID `json:"payment_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
}

// RefundPaymentHandler reverses a settled payment. Unless the order was
// already cancelled it also appends the cancelled activity and restores
// product stock the same way order cancellation does.
type RefundPaymentHandler struct {
	payments   PaymentStore
	orders     OrderStore
	activities OrderActivityStore
	gateway    Gateway
	uow        database.UnitOfWork
	resolver   ItemResolver
	med        *mediator.Mediator
}

func NewRefundPaymentHandler(payments PaymentStore, orders OrderStore, activities OrderActivityStore, gateway Gateway, uow database.UnitOfWork, resolver ItemResolver, med *mediator.Mediator) *RefundPaymentHandler {
	return &RefundPaymentHandler{payments: payments, orders: orders, activities: activities, gateway: gateway, uow: uow, resolver: resolver, med: med}
}

func (h *RefundPaymentHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) results.Result[*models.Payment] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Payment](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	payment, err := h.payments.GetByID(ctx, cmd.PaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentNotFound))
		}
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if payment.Status != models.PaymentStatusSucceeded {
		return results.Validation[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentNotPayable))
	}

	order, err := h.orders.GetWithItems(ctx, payment.OrderID)
	if err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != cmd.UserID {
		return results.Fail[*models.Payment](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
	}
	if order.CurrentActivity != nil && order.CurrentActivity.Status == models.OrderStatusDelivered {
		return results.Validation[*models.Payment](i18n.Tr(ctx, i18n.KeyOrderFinalState))
	}
	// Cancellation already wrote the activity and restored stock; the refund
	// then only settles the payment side.
	alreadyCancelled := order.CurrentActivity != nil && order.CurrentActivity.Status == models.OrderStatusCancelled

	if payment.ProviderRef != "" {
		if err := h.gateway.Refund(ctx, payment.ProviderRef, payment.Amount, cmd.Reason); err != nil {
			return results.Fail[*models.Payment]("RefundFailed", i18n.Tr(ctx, i18n.KeyPaymentFailed), err)
		}
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	now := time.Now()
	payment.Status = models.PaymentStatusRefunded
	payment.RefundedAt = &now
	payment.RefundReason = cmd.Reason
	if err := h.payments.Update(txCtx, payment); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if !alreadyCancelled {
		activity := &models.OrderActivity{OrderID: order.ID, Status: models.OrderStatusCancelled, Note: cmd.Reason}
		if err := h.activities.Add(txCtx, activity); err != nil {
			return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		if err := h.uow.Save(txCtx); err != nil {
			return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}

		order.OrderActivityID = &activity.ID
		if err := h.orders.Update(txCtx, order); err != nil {
			return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	if !alreadyCancelled {
		// Checkout decremented product stock; the refund cancels the order, so
		// it restores stock the same best-effort way CancelOrder does.
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
	}

	return results.OkMsg(payment, i18n.Tr(ctx, i18n.KeyPaymentRefunded))
}

type GetPaymentForOrderQuery struct {
	UserID  uuid.UUID `json:"-"`
	OrderID uuid.UUID `json:"-"`
}

type GetPaymentForOrderHandler struct {
	payments PaymentStore
	orders   OrderStore
}

func NewGetPaymentForOrderHandler(payments PaymentStore, orders OrderStore) *GetPaymentForOrderHandler {
	return &GetPaymentForOrderHandler{payments: payments, orders: orders}
}

func (h *GetPaymentForOrderHandler) Handle(ctx context.Context, q GetPaymentForOrderQuery) results.Result[*models.Payment] {
	order, err := h.orders.GetWithItems(ctx, q.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Payment](i18n.Tr(ctx, i18n.KeyOrderNotFound))
		}
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if order.UserID != q.UserID {
		return results.NotFound[*models.Payment](i18n.Tr(ctx, i18n.KeyOrderNotFound))
	}

	payment, err := h.payments.ForOrder(ctx, q.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Payment](i18n.Tr(ctx, i18n.KeyPaymentNotFound))
		}
		return results.Internal[*models.Payment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(payment)
}

type ListPaymentMethodsQuery struct{}

type ListPaymentMethodsHandler struct {
	methods PaymentMethodStore
}

func NewListPaymentMethodsHandler(methods PaymentMethodStore) *ListPaymentMethodsHandler {
	return &ListPaymentMethodsHandler{methods: methods}
}

func (h *ListPaymentMethodsHandler) Handle(ctx context.Context, q ListPaymentMethodsQuery) results.Result[[]models.PaymentMethod] {
	methods, err := h.methods.ListEnabled(ctx)
	if err != nil {
		return results.Internal[[]models.PaymentMethod](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(methods)
}
