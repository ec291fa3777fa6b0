// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/users"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// AuthHandler exposes registration, password login, OTP login and token
// refresh. All business rules live in the users package; these methods only
// bind input and translate the Result into HTTP.
type AuthHandler struct {
	m *mediator.Mediator
}

func NewAuthHandler(m *mediator.Mediator) *AuthHandler {
	return &AuthHandler{m: m}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var cmd users.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.RespondCreated(c, mediator.Send[users.AuthPayload](c.Request.Context(), h.m, cmd))
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var cmd users.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.Respond(c, mediator.Send[users.AuthPayload](c.Request.Context(), h.m, cmd))
}

// RefreshToken handles POST /v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var cmd users.RefreshTokenCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.Respond(c, mediator.Send[users.AuthPayload](c.Request.Context(), h.m, cmd))
}

// RequestLoginCode handles POST /v1/auth/otp/request
func (h *AuthHandler) RequestLoginCode(c *gin.Context) {
	var cmd users.RequestLoginCodeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// VerifyLoginCode handles POST /v1/auth/otp/verify
func (h *AuthHandler) VerifyLoginCode(c *gin.Context) {
	var cmd users.VerifyLoginCodeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.Respond(c, mediator.Send[users.AuthPayload](c.Request.Context(), h.m, cmd))
}
