// internal/handlers/order.go
package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/shoppings"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type OrderHandler struct {
	m *mediator.Mediator
}

func NewOrderHandler(m *mediator.Mediator) *OrderHandler {
	return &OrderHandler{m: m}
}

// GetOrder handles GET /v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
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

	q := shoppings.GetOrderByIDQuery{UserID: userID, OrderID: orderID}
	utils.Respond(c, mediator.Send[*models.Order](c.Request.Context(), h.m, q))
}

// ListOrders handles GET /v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	q := shoppings.ListUserOrdersQuery{
		UserID:     userID,
		Pagination: utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.Order]](c.Request.Context(), h.m, q))
}

// ListActivities handles GET /v1/orders/:id/activities and returns the full
// status history, oldest first.
func (h *OrderHandler) ListActivities(c *gin.Context) {
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

	q := shoppings.ListOrderActivitiesQuery{UserID: userID, OrderID: orderID}
	utils.Respond(c, mediator.Send[[]models.OrderActivity](c.Request.Context(), h.m, q))
}

// CancelOrder handles POST /v1/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
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

	// The body only carries an optional reason; a missing body is fine.
	var cmd shoppings.CancelOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID
	cmd.OrderID = orderID

	utils.Respond(c, mediator.Send[*models.Order](c.Request.Context(), h.m, cmd))
}

// MarkShipped handles POST /v1/orders/:id/ship
func (h *OrderHandler) MarkShipped(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := shoppings.MarkOrderShippedCommand{OrderID: orderID}
	utils.Respond(c, mediator.Send[*models.Order](c.Request.Context(), h.m, cmd))
}

// MarkDelivered handles POST /v1/orders/:id/deliver
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := shoppings.MarkOrderDeliveredCommand{OrderID: orderID}
	utils.Respond(c, mediator.Send[*models.Order](c.Request.Context(), h.m, cmd))
}
