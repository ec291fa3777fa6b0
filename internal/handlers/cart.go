// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/shoppings"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type CartHandler struct {
	m *mediator.Mediator
}

func NewCartHandler(m *mediator.Mediator) *CartHandler {
	return &CartHandler{m: m}
}

// GetCart handles GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	utils.Respond(c, mediator.Send[*models.Cart](c.Request.Context(), h.m, shoppings.GetActiveCartQuery{UserID: userID}))
}

// AddItem handles POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd shoppings.AddToCartCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[*models.CartItem](c.Request.Context(), h.m, cmd))
}

// UpdateItem handles PUT /v1/cart/items/:id. Quantity zero removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd shoppings.UpdateCartItemQuantityCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID
	cmd.CartItemID = cartItemID

	utils.Respond(c, mediator.Send[*models.CartItem](c.Request.Context(), h.m, cmd))
}

// RemoveItem handles DELETE /v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := shoppings.RemoveFromCartCommand{UserID: userID, CartItemID: cartItemID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// Checkout handles POST /v1/cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd shoppings.CheckoutCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[*models.Order](c.Request.Context(), h.m, cmd))
}
