// internal/communication/reviews.go
package communication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type CreateReviewCommand struct {
	UserID uuid.UUID `json:"-"`
	ItemID uuid.UUID `json:"item_id" validate:"required"`
	Rating int       `json:"rating" validate:"required,min=1,max=5"`
	Title  string    `json:"title" validate:"max=255"`
	Body   string    `json:"body"`
}

// CreateReviewHandler enforces one review per user per item and keeps the
// BaseItem rating aggregates in step with the review rows, inside one
// transaction.
type CreateReviewHandler struct {
	reviews  ReviewStore
	contents BaseContentStore
	items    BaseItemStore
	resolver ItemResolver
	uow      database.UnitOfWork
}

func NewCreateReviewHandler(reviews ReviewStore, contents BaseContentStore, items BaseItemStore, resolver ItemResolver, uow database.UnitOfWork) *CreateReviewHandler {
	return &CreateReviewHandler{reviews: reviews, contents: contents, items: items, resolver: resolver, uow: uow}
}

func (h *CreateReviewHandler) Handle(ctx context.Context, cmd CreateReviewCommand) results.Result[*models.Review] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Review](i18n.Tr(ctx, i18n.KeyReviewInvalidRating))
	}

	resolution, err := h.resolver.Resolve(ctx, cmd.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[*models.Review](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if _, err := h.reviews.ForUserItem(ctx, cmd.UserID, resolution.BaseItemID); err == nil {
		return results.Fail[*models.Review](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyReviewExists), nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	content := &models.BaseContent{Title: cmd.Title, Body: cmd.Body}
	if err := h.contents.Add(txCtx, content); err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	review := &models.Review{
		BaseItemID:    resolution.BaseItemID,
		UserID:        cmd.UserID,
		Rating:        cmd.Rating,
		BaseContentID: content.ID,
	}
	if err := h.reviews.Add(txCtx, review); err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetByID(txCtx, resolution.BaseItemID)
	if err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	// Incremental mean: new = (old * count + rating) / (count + 1).
	oldSum := item.Rating.Mul(decimal.NewFromInt(item.ReviewCount))
	newCount := item.ReviewCount + 1
	item.Rating = oldSum.Add(decimal.NewFromInt(int64(cmd.Rating))).
		Div(decimal.NewFromInt(newCount)).Round(2)
	item.ReviewCount = newCount
	if err := h.items.Update(txCtx, item); err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Review](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	review.Content = *content
	return results.OkMsg(review, i18n.Tr(ctx, i18n.KeyReviewCreated))
}

type ListReviewsQuery struct {
	BaseItemID uuid.UUID `json:"-"`
	Pagination utils.PaginationParams
}

type ListReviewsHandler struct {
	reviews ReviewStore
}

func NewListReviewsHandler(reviews ReviewStore) *ListReviewsHandler {
	return &ListReviewsHandler{reviews: reviews}
}

func (h *ListReviewsHandler) Handle(ctx context.Context, q ListReviewsQuery) results.Result[results.PaginatedResult[models.Review]] {
	reviews, total, err := h.reviews.ListForItem(ctx, q.BaseItemID, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.Review]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(reviews, q.Pagination.Page, q.Pagination.Limit, total))
}
