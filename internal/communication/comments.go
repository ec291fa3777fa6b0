// internal/communication/comments.go

// Package communication covers comments, reviews and buyer-seller
// conversations. Comments and reviews share the BaseContent table so
// attachments have one home.
package communication

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type AttachmentInput struct {
	URL       string `json:"url" validate:"required,url"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// CreateCommentCommand accepts a Product, Service or BaseItem id; the
// resolver normalizes it before anything is written.
type CreateCommentCommand struct {
	UserID      uuid.UUID         `json:"-"`
	ItemID      uuid.UUID         `json:"item_id" validate:"required"`
	Title       string            `json:"title" validate:"max=255"`
	Body        string            `json:"body" validate:"required"`
	Attachments []AttachmentInput `json:"attachments" validate:"dive"`
}

type CreateCommentHandler struct {
	comments    CommentStore
	contents    BaseContentStore
	attachments AttachmentStore
	resolver    ItemResolver
	uow         database.UnitOfWork
}

func NewCreateCommentHandler(comments CommentStore, contents BaseContentStore, attachments AttachmentStore, resolver ItemResolver, uow database.UnitOfWork) *CreateCommentHandler {
	return &CreateCommentHandler{comments: comments, contents: contents, attachments: attachments, resolver: resolver, uow: uow}
}

func (h *CreateCommentHandler) Handle(ctx context.Context, cmd CreateCommentCommand) results.Result[*models.Comment] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Comment](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	resolution, err := h.resolver.Resolve(ctx, cmd.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[*models.Comment](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	content := &models.BaseContent{Title: cmd.Title, Body: cmd.Body}
	if err := h.contents.Add(txCtx, content); err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	for _, a := range cmd.Attachments {
		attachment := &models.Attachment{
			BaseContentID: content.ID,
			URL:           a.URL,
			MimeType:      a.MimeType,
			SizeBytes:     a.SizeBytes,
		}
		if err := h.attachments.Add(txCtx, attachment); err != nil {
			return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	comment := &models.Comment{
		BaseItemID:    resolution.BaseItemID,
		UserID:        cmd.UserID,
		BaseContentID: content.ID,
	}
	if err := h.comments.Add(txCtx, comment); err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	comment.Content = *content
	return results.OkMsg(comment, i18n.Tr(ctx, i18n.KeyCommentCreated))
}

type UpdateCommentCommand struct {
	UserID    uuid.UUID `json:"-"`
	CommentID uuid.UUID `json:"-"`
	Title     *string   `json:"title"`
	Body      *string   `json:"body"`
}

type UpdateCommentHandler struct {
	comments CommentStore
	contents BaseContentStore
}

func NewUpdateCommentHandler(comments CommentStore, contents BaseContentStore) *UpdateCommentHandler {
	return &UpdateCommentHandler{comments: comments, contents: contents}
}

func (h *UpdateCommentHandler) Handle(ctx context.Context, cmd UpdateCommentCommand) results.Result[*models.Comment] {
	comment, err := h.comments.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Comment](i18n.Tr(ctx, i18n.KeyCommentNotFound))
		}
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if comment.UserID != cmd.UserID {
		return results.Fail[*models.Comment](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyCommentNotAuthor), nil)
	}

	content, err := h.contents.GetByID(ctx, comment.BaseContentID)
	if err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if cmd.Title != nil {
		content.Title = *cmd.Title
	}
	if cmd.Body != nil {
		content.Body = *cmd.Body
	}
	if err := h.contents.Update(ctx, content); err != nil {
		return results.Internal[*models.Comment](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	comment.Content = *content
	return results.OkMsg(comment, i18n.Tr(ctx, i18n.KeyCommentUpdated))
}

type DeleteCommentCommand struct {
	UserID    uuid.UUID `json:"-"`
	CommentID uuid.UUID `json:"-"`
}

type DeleteCommentHandler struct {
	comments CommentStore
	contents BaseContentStore
	uow      database.UnitOfWork
}

func NewDeleteCommentHandler(comments CommentStore, contents BaseContentStore, uow database.UnitOfWork) *DeleteCommentHandler {
	return &DeleteCommentHandler{comments: comments, contents: contents, uow: uow}
}

func (h *DeleteCommentHandler) Handle(ctx context.Context, cmd DeleteCommentCommand) results.Result[bool] {
	comment, err := h.comments.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyCommentNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if comment.UserID != cmd.UserID {
		return results.Fail[bool](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyCommentNotAuthor), nil)
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	if err := h.comments.Remove(txCtx, comment); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	content, err := h.contents.GetByID(txCtx, comment.BaseContentID)
	if err == nil {
		if err := h.contents.Remove(txCtx, content); err != nil {
			return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyCommentDeleted))
}

type ListCommentsQuery struct {
	BaseItemID uuid.UUID `json:"-"`
	Pagination utils.PaginationParams
}

type ListCommentsHandler struct {
	comments CommentStore
}

func NewListCommentsHandler(comments CommentStore) *ListCommentsHandler {
	return &ListCommentsHandler{comments: comments}
}

func (h *ListCommentsHandler) Handle(ctx context.Context, q ListCommentsQuery) results.Result[results.PaginatedResult[models.Comment]] {
	comments, total, err := h.comments.ListForItem(ctx, q.BaseItemID, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.Comment]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(comments, q.Pagination.Page, q.Pagination.Limit, total))
}
