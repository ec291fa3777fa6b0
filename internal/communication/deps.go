// internal/communication/deps.go
package communication

import (
	"context"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type BaseContentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BaseContent, error)
	Add(ctx context.Context, content *models.BaseContent) error
	Update(ctx context.Context, content *models.BaseContent) error
	Remove(ctx context.Context, content *models.BaseContent) error
}

type AttachmentStore interface {
	Add(ctx context.Context, attachment *models.Attachment) error
}

type CommentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
	Remove(ctx context.Context, comment *models.Comment) error
	ListForItem(ctx context.Context, baseItemID uuid.UUID, params utils.PaginationParams) ([]models.Comment, int64, error)
}

type ReviewStore interface {
	ForUserItem(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Review, error)
	Add(ctx context.Context, review *models.Review) error
	ListForItem(ctx context.Context, baseItemID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error)
}

type ConversationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	Between(ctx context.Context, buyerID, sellerID uuid.UUID, baseItemID *uuid.UUID) (*models.Conversation, error)
	Add(ctx context.Context, conversation *models.Conversation) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
}

type MessageStore interface {
	Add(ctx context.Context, message *models.Message) error
	ListForConversation(ctx context.Context, conversationID uuid.UUID, params utils.PaginationParams) ([]models.Message, int64, error)
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error
}

type BaseItemStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BaseItem, error)
	Update(ctx context.Context, item *models.BaseItem) error
}

type ItemResolver interface {
	Resolve(ctx context.Context, itemID uuid.UUID) (catalogs.Resolution, error)
}
