// internal/handlers/payment.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/payments"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type PaymentHandler struct {
	m *mediator.Mediator
}

func NewPaymentHandler(m *mediator.Mediator) *PaymentHandler {
	return &PaymentHandler{m: m}
}

// CreatePayment handles POST /v1/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd payments.CreatePaymentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[payments.CreatePaymentResult](c.Request.Context(), h.m, cmd))
}

// ConfirmPayment handles POST /v1/payments/:id/confirm. It re-reads the
// provider intent and settles the payment and order together.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := payments.ConfirmPaymentCommand{UserID: userID, PaymentID: paymentID}
	utils.Respond(c, mediator.Send[*models.Payment](c.Request.Context(), h.m, cmd))
}

// RefundPayment handles POST /v1/payments/:id/refund
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd payments.RefundPaymentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID
	cmd.PaymentID = paymentID

	utils.Respond(c, mediator.Send[*models.Payment](c.Request.Context(), h.m, cmd))
}

// GetPaymentForOrder handles GET /v1/orders/:id/payment
func (h *PaymentHandler) GetPaymentForOrder(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := payments.GetPaymentForOrderQuery{UserID: userID, OrderID: orderID}
	utils.Respond(c, mediator.Send[*models.Payment](c.Request.Context(), h.m, q))
}

// ListPaymentMethods handles GET /v1/payments/methods
func (h *PaymentHandler) ListPaymentMethods(c *gin.Context) {
	utils.Respond(c, mediator.Send[[]models.PaymentMethod](c.Request.Context(), h.m, payments.ListPaymentMethodsQuery{}))
}
