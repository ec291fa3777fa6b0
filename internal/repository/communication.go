// internal/repository/communication.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type BaseContentRepository struct {
	*Repository[models.BaseContent]
}

func NewBaseContentRepository(db *gorm.DB) *BaseContentRepository {
	return &BaseContentRepository{NewRepository[models.BaseContent](db)}
}

type AttachmentRepository struct {
	*Repository[models.Attachment]
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{NewRepository[models.Attachment](db)}
}

type CommentRepository struct {
	*Repository[models.Comment]
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{NewRepository[models.Comment](db)}
}

func (r *CommentRepository) ListForItem(ctx context.Context, baseItemID uuid.UUID, params utils.PaginationParams) ([]models.Comment, int64, error) {
	query := r.conn(ctx).Model(&models.Comment{}).
		Preload("Content").Preload("Content.Attachments").Preload("User").
		Where("base_item_id = ?", baseItemID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

type ReviewRepository struct {
	*Repository[models.Review]
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{NewRepository[models.Review](db)}
}

func (r *ReviewRepository) ForUserItem(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Review, error) {
	return r.First(ctx, "user_id = ? AND base_item_id = ?", userID, baseItemID)
}

func (r *ReviewRepository) ListForItem(ctx context.Context, baseItemID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := r.conn(ctx).Model(&models.Review{}).
		Preload("Content").Preload("User").
		Where("base_item_id = ?", baseItemID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "rating"})
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

type ConversationRepository struct {
	*Repository[models.Conversation]
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{NewRepository[models.Conversation](db)}
}

// Between finds an existing conversation for the buyer/seller pair, scoped
// to one item when baseItemID is set.
func (r *ConversationRepository) Between(ctx context.Context, buyerID, sellerID uuid.UUID, baseItemID *uuid.UUID) (*models.Conversation, error) {
	query := r.conn(ctx).Where("buyer_id = ? AND seller_id = ?", buyerID, sellerID)
	if baseItemID != nil {
		query = query.Where("base_item_id = ?", *baseItemID)
	} else {
		query = query.Where("base_item_id IS NULL")
	}

	var conversation models.Conversation
	if err := query.First(&conversation).Error; err != nil {
		return nil, mapErr(err)
	}
	return &conversation, nil
}

func (r *ConversationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.conn(ctx).
		Preload("Buyer").Preload("Seller").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

type MessageRepository struct {
	*Repository[models.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{NewRepository[models.Message](db)}
}

func (r *MessageRepository) ListForConversation(ctx context.Context, conversationID uuid.UUID, params utils.PaginationParams) ([]models.Message, int64, error) {
	query := r.conn(ctx).Model(&models.Message{}).
		Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var messages []models.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// MarkRead stamps every unread message not sent by readerID.
func (r *MessageRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	return r.conn(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", gorm.Expr("NOW()")).Error
}
