// internal/handlers/communication.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/communication"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// CommunicationHandler covers comments, reviews and buyer-seller
// conversations.
type CommunicationHandler struct {
	m *mediator.Mediator
}

func NewCommunicationHandler(m *mediator.Mediator) *CommunicationHandler {
	return &CommunicationHandler{m: m}
}

// CreateComment handles POST /v1/comments
func (h *CommunicationHandler) CreateComment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd communication.CreateCommentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[*models.Comment](c.Request.Context(), h.m, cmd))
}

// UpdateComment handles PUT /v1/comments/:id
func (h *CommunicationHandler) UpdateComment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd communication.UpdateCommentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID
	cmd.CommentID = commentID

	utils.Respond(c, mediator.Send[*models.Comment](c.Request.Context(), h.m, cmd))
}

// DeleteComment handles DELETE /v1/comments/:id
func (h *CommunicationHandler) DeleteComment(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := communication.DeleteCommentCommand{UserID: userID, CommentID: commentID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// ListComments handles GET /v1/items/:id/comments
func (h *CommunicationHandler) ListComments(c *gin.Context) {
	baseItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := communication.ListCommentsQuery{
		BaseItemID: baseItemID,
		Pagination: utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.Comment]](c.Request.Context(), h.m, q))
}

// CreateReview handles POST /v1/reviews
func (h *CommunicationHandler) CreateReview(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd communication.CreateReviewCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.UserID = userID

	utils.RespondCreated(c, mediator.Send[*models.Review](c.Request.Context(), h.m, cmd))
}

// ListReviews handles GET /v1/items/:id/reviews
func (h *CommunicationHandler) ListReviews(c *gin.Context) {
	baseItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := communication.ListReviewsQuery{
		BaseItemID: baseItemID,
		Pagination: utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.Review]](c.Request.Context(), h.m, q))
}

// StartConversation handles POST /v1/conversations
func (h *CommunicationHandler) StartConversation(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd communication.StartConversationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.BuyerID = userID

	utils.RespondCreated(c, mediator.Send[*models.Conversation](c.Request.Context(), h.m, cmd))
}

// ListConversations handles GET /v1/conversations
func (h *CommunicationHandler) ListConversations(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	q := communication.ListConversationsQuery{UserID: userID}
	utils.Respond(c, mediator.Send[[]models.Conversation](c.Request.Context(), h.m, q))
}

// SendMessage handles POST /v1/conversations/:id/messages
func (h *CommunicationHandler) SendMessage(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd communication.SendMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.SenderID = userID
	cmd.ConversationID = conversationID

	utils.RespondCreated(c, mediator.Send[*models.Message](c.Request.Context(), h.m, cmd))
}

// ListMessages handles GET /v1/conversations/:id/messages
func (h *CommunicationHandler) ListMessages(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := communication.ListMessagesQuery{
		UserID:         userID,
		ConversationID: conversationID,
		Pagination:     utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.Message]](c.Request.Context(), h.m, q))
}

// MarkConversationRead handles POST /v1/conversations/:id/read
func (h *CommunicationHandler) MarkConversationRead(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := communication.MarkConversationReadCommand{UserID: userID, ConversationID: conversationID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}
