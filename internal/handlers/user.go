// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/storage"
	"github.com/sooqhub/sooq-backend/internal/users"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type UserHandler struct {
	m       *mediator.Mediator
	storage *storage.Service
}

func NewUserHandler(m *mediator.Mediator, storage *storage.Service) *UserHandler {
	return &UserHandler{m: m, storage: storage}
}

// GetProfile handles GET /v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	utils.Respond(c, mediator.Send[*models.User](c.Request.Context(), h.m, users.GetProfileQuery{UserID: userID}))
}

// UpdateProfile handles PUT /v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd users.UpdateProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.Respond(c, mediator.Send[*models.User](c.Request.Context(), h.m, cmd))
}

// UploadAvatar handles POST /v1/users/me/avatar. The uploaded URL is merged
// into the user's profile data under "avatar_url".
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyFileUploadFailed))
		return
	}
	defer file.Close()

	uploaded, err := h.storage.Upload(file, header, h.storage.OptionsFor("avatars"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyFileInvalidType))
		return
	}

	cmd := users.UpdateProfileCommand{
		UserID:      userID,
		ProfileData: map[string]interface{}{"avatar_url": uploaded.URL},
	}
	utils.Respond(c, mediator.Send[*models.User](c.Request.Context(), h.m, cmd))
}

// AddFavorite handles POST /v1/users/me/favorites
func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd users.AddFavoriteCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[*models.Favorite](c.Request.Context(), h.m, cmd))
}

// RemoveFavorite handles DELETE /v1/users/me/favorites/:itemId
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := users.RemoveFavoriteCommand{UserID: userID, ItemID: itemID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// IsFavorite handles GET /v1/users/me/favorites/:itemId
func (h *UserHandler) IsFavorite(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := users.IsFavoriteQuery{UserID: userID, ItemID: itemID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, q))
}

// ListFavorites handles GET /v1/users/me/favorites
func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	q := users.ListFavoritesQuery{
		UserID:     userID,
		Pagination: utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.Favorite]](c.Request.Context(), h.m, q))
}

// ResolveFavorite handles GET /v1/users/me/favorites/:itemId/item and maps a
// favorite row back to the catalog item it points at.
func (h *UserHandler) ResolveFavorite(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	favoriteID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := users.GetItemIDByFavoriteIDQuery{UserID: userID, FavoriteID: favoriteID}
	utils.Respond(c, mediator.Send[catalogs.Resolution](c.Request.Context(), h.m, q))
}
