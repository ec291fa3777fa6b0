// internal/communication/conversations.go
package communication

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// StartConversationCommand opens a buyer-to-seller thread, optionally about
// one item. Starting an already-existing thread returns it instead of
// creating a duplicate.
type StartConversationCommand struct {
	BuyerID uuid.UUID  `json:"-"`
	ItemID  *uuid.UUID `json:"item_id"`
	// SellerID is required only for item-less conversations; with an item it
	// is derived from the item's owner.
	SellerID *uuid.UUID `json:"seller_id"`
}

type StartConversationHandler struct {
	conversations ConversationStore
	items         BaseItemStore
	resolver      ItemResolver
}

func NewStartConversationHandler(conversations ConversationStore, items BaseItemStore, resolver ItemResolver) *StartConversationHandler {
	return &StartConversationHandler{conversations: conversations, items: items, resolver: resolver}
}

func (h *StartConversationHandler) Handle(ctx context.Context, cmd StartConversationCommand) results.Result[*models.Conversation] {
	var (
		sellerID   uuid.UUID
		baseItemID *uuid.UUID
	)

	switch {
	case cmd.ItemID != nil:
		resolution, err := h.resolver.Resolve(ctx, *cmd.ItemID)
		if err != nil {
			if errors.Is(err, catalogs.ErrItemNotFound) {
				return results.NotFound[*models.Conversation](i18n.Tr(ctx, i18n.KeyItemNotFound))
			}
			return results.Internal[*models.Conversation](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		item, err := h.items.GetByID(ctx, resolution.BaseItemID)
		if err != nil {
			return results.Internal[*models.Conversation](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		sellerID = item.OwnerID
		id := resolution.BaseItemID
		baseItemID = &id
	case cmd.SellerID != nil:
		sellerID = *cmd.SellerID
	default:
		return results.Validation[*models.Conversation](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	if sellerID == cmd.BuyerID {
		return results.Validation[*models.Conversation](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	existing, err := h.conversations.Between(ctx, cmd.BuyerID, sellerID, baseItemID)
	if err == nil {
		return results.Ok(existing)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[*models.Conversation](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	conversation := &models.Conversation{
		BaseItemID: baseItemID,
		BuyerID:    cmd.BuyerID,
		SellerID:   sellerID,
	}
	if err := h.conversations.Add(ctx, conversation); err != nil {
		return results.Internal[*models.Conversation](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(conversation, i18n.Tr(ctx, i18n.KeyConversationStarted))
}

type SendMessageCommand struct {
	SenderID       uuid.UUID `json:"-"`
	ConversationID uuid.UUID `json:"-"`
	Body           string    `json:"body" validate:"required"`
}

type SendMessageHandler struct {
	conversations ConversationStore
	messages      MessageStore
}

func NewSendMessageHandler(conversations ConversationStore, messages MessageStore) *SendMessageHandler {
	return &SendMessageHandler{conversations: conversations, messages: messages}
}

func (h *SendMessageHandler) Handle(ctx context.Context, cmd SendMessageCommand) results.Result[*models.Message] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Message](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	conversation, err := h.conversations.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Message](i18n.Tr(ctx, i18n.KeyConversationNotFound))
		}
		return results.Internal[*models.Message](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if conversation.BuyerID != cmd.SenderID && conversation.SellerID != cmd.SenderID {
		return results.Fail[*models.Message](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyNotParticipant), nil)
	}

	message := &models.Message{
		ConversationID: cmd.ConversationID,
		SenderID:       cmd.SenderID,
		Body:           cmd.Body,
	}
	if err := h.messages.Add(ctx, message); err != nil {
		return results.Internal[*models.Message](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(message, i18n.Tr(ctx, i18n.KeyMessageSent))
}

type MarkConversationReadCommand struct {
	UserID         uuid.UUID `json:"-"`
	ConversationID uuid.UUID `json:"-"`
}

type MarkConversationReadHandler struct {
	conversations ConversationStore
	messages      MessageStore
}

func NewMarkConversationReadHandler(conversations ConversationStore, messages MessageStore) *MarkConversationReadHandler {
	return &MarkConversationReadHandler{conversations: conversations, messages: messages}
}

func (h *MarkConversationReadHandler) Handle(ctx context.Context, cmd MarkConversationReadCommand) results.Result[bool] {
	conversation, err := h.conversations.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyConversationNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if conversation.BuyerID != cmd.UserID && conversation.SellerID != cmd.UserID {
		return results.Fail[bool](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyNotParticipant), nil)
	}

	if err := h.messages.MarkRead(ctx, cmd.ConversationID, cmd.UserID); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(true)
}

type ListConversationsQuery struct {
	UserID uuid.UUID `json:"-"`
}

type ListConversationsHandler struct {
	conversations ConversationStore
}

func NewListConversationsHandler(conversations ConversationStore) *ListConversationsHandler {
	return &ListConversationsHandler{conversations: conversations}
}

func (h *ListConversationsHandler) Handle(ctx context.Context, q ListConversationsQuery) results.Result[[]models.Conversation] {
	conversations, err := h.conversations.ListForUser(ctx, q.UserID)
	if err != nil {
		return results.Internal[[]models.Conversation](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(conversations)
}

type ListMessagesQuery struct {
	UserID         uuid.UUID `json:"-"`
	ConversationID uuid.UUID `json:"-"`
	Pagination     utils.PaginationParams
}

type ListMessagesHandler struct {
	conversations ConversationStore
	messages      MessageStore
}

func NewListMessagesHandler(conversations ConversationStore, messages MessageStore) *ListMessagesHandler {
	return &ListMessagesHandler{conversations: conversations, messages: messages}
}

func (h *ListMessagesHandler) Handle(ctx context.Context, q ListMessagesQuery) results.Result[results.PaginatedResult[models.Message]] {
	conversation, err := h.conversations.GetByID(ctx, q.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[results.PaginatedResult[models.Message]](i18n.Tr(ctx, i18n.KeyConversationNotFound))
		}
		return results.Internal[results.PaginatedResult[models.Message]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if conversation.BuyerID != q.UserID && conversation.SellerID != q.UserID {
		return results.Fail[results.PaginatedResult[models.Message]](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyNotParticipant), nil)
	}

	messages, total, err := h.messages.ListForConversation(ctx, q.ConversationID, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.Message]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(messages, q.Pagination.Page, q.Pagination.Limit, total))
}
