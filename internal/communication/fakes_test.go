// internal/communication/fakes_test.go
package communication

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type fakeBaseContentStore struct {
	contents map[uuid.UUID]*models.BaseContent
}

func newFakeBaseContentStore() *fakeBaseContentStore {
	return &fakeBaseContentStore{contents: make(map[uuid.UUID]*models.BaseContent)}
}

func (f *fakeBaseContentStore) GetByID(_ context.Context, id uuid.UUID) (*models.BaseContent, error) {
	if content, ok := f.contents[id]; ok && !content.DeletedAt.Valid {
		return content, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBaseContentStore) Add(_ context.Context, content *models.BaseContent) error {
	content.ID = uuid.New()
	f.contents[content.ID] = content
	return nil
}

func (f *fakeBaseContentStore) Update(_ context.Context, content *models.BaseContent) error {
	f.contents[content.ID] = content
	return nil
}

func (f *fakeBaseContentStore) Remove(_ context.Context, content *models.BaseContent) error {
	content.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

type fakeAttachmentStore struct {
	attachments []*models.Attachment
}

func (f *fakeAttachmentStore) Add(_ context.Context, attachment *models.Attachment) error {
	attachment.ID = uuid.New()
	f.attachments = append(f.attachments, attachment)
	return nil
}

type fakeCommentStore struct {
	comments map[uuid.UUID]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uuid.UUID]*models.Comment)}
}

func (f *fakeCommentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	if comment, ok := f.comments[id]; ok && !comment.DeletedAt.Valid {
		return comment, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCommentStore) Add(_ context.Context, comment *models.Comment) error {
	comment.ID = uuid.New()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentStore) Remove(_ context.Context, comment *models.Comment) error {
	comment.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeCommentStore) ListForItem(_ context.Context, baseItemID uuid.UUID, _ utils.PaginationParams) ([]models.Comment, int64, error) {
	var out []models.Comment
	for _, comment := range f.comments {
		if comment.BaseItemID == baseItemID && !comment.DeletedAt.Valid {
			out = append(out, *comment)
		}
	}
	return out, int64(len(out)), nil
}

type fakeReviewStore struct {
	reviews map[uuid.UUID]*models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[uuid.UUID]*models.Review)}
}

func (f *fakeReviewStore) ForUserItem(_ context.Context, userID, baseItemID uuid.UUID) (*models.Review, error) {
	for _, review := range f.reviews {
		if review.UserID == userID && review.BaseItemID == baseItemID {
			return review, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReviewStore) Add(_ context.Context, review *models.Review) error {
	review.ID = uuid.New()
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewStore) ListForItem(_ context.Context, baseItemID uuid.UUID, _ utils.PaginationParams) ([]models.Review, int64, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.BaseItemID == baseItemID {
			out = append(out, *review)
		}
	}
	return out, int64(len(out)), nil
}

type fakeConversationStore struct {
	conversations map[uuid.UUID]*models.Conversation
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{conversations: make(map[uuid.UUID]*models.Conversation)}
}

func (f *fakeConversationStore) GetByID(_ context.Context, id uuid.UUID) (*models.Conversation, error) {
	if conversation, ok := f.conversations[id]; ok {
		return conversation, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeConversationStore) Between(_ context.Context, buyerID, sellerID uuid.UUID, baseItemID *uuid.UUID) (*models.Conversation, error) {
	for _, conversation := range f.conversations {
		if conversation.BuyerID != buyerID || conversation.SellerID != sellerID {
			continue
		}
		switch {
		case baseItemID == nil && conversation.BaseItemID == nil:
			return conversation, nil
		case baseItemID != nil && conversation.BaseItemID != nil && *baseItemID == *conversation.BaseItemID:
			return conversation, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeConversationStore) Add(_ context.Context, conversation *models.Conversation) error {
	conversation.ID = uuid.New()
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationStore) ListForUser(_ context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, conversation := range f.conversations {
		if conversation.BuyerID == userID || conversation.SellerID == userID {
			out = append(out, *conversation)
		}
	}
	return out, nil
}

type fakeMessageStore struct {
	messages []*models.Message
}

func (f *fakeMessageStore) Add(_ context.Context, message *models.Message) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageStore) ListForConversation(_ context.Context, conversationID uuid.UUID, _ utils.PaginationParams) ([]models.Message, int64, error) {
	var out []models.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			out = append(out, *message)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMessageStore) MarkRead(_ context.Context, conversationID, readerID uuid.UUID) error {
	now := time.Now()
	for _, message := range f.messages {
		if message.ConversationID == conversationID && message.SenderID != readerID && message.ReadAt == nil {
			message.ReadAt = &now
		}
	}
	return nil
}

type fakeBaseItemStore struct {
	items map[uuid.UUID]*models.BaseItem
}

func newFakeBaseItemStore() *fakeBaseItemStore {
	return &fakeBaseItemStore{items: make(map[uuid.UUID]*models.BaseItem)}
}

func (f *fakeBaseItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.BaseItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBaseItemStore) Update(_ context.Context, item *models.BaseItem) error {
	f.items[item.ID] = item
	return nil
}

type fakeResolver struct {
	byItem map[uuid.UUID]catalogs.Resolution
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{byItem: make(map[uuid.UUID]catalogs.Resolution)}
}

func (f *fakeResolver) Resolve(_ context.Context, itemID uuid.UUID) (catalogs.Resolution, error) {
	if res, ok := f.byItem[itemID]; ok {
		return res, nil
	}
	return catalogs.Resolution{}, catalogs.ErrItemNotFound
}

func pageOne() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 20}
}

type fakeUnitOfWork struct {
	commits   int
	rollbacks int
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeUnitOfWork) Commit(_ context.Context) error                     { f.commits++; return nil }
func (f *fakeUnitOfWork) Rollback(_ context.Context)                         { f.rollbacks++ }
func (f *fakeUnitOfWork) Save(_ context.Context) error                       { return nil }
