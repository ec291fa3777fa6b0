// internal/catalogs/queries.go
package catalogs

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// ListCatalogItemsQuery lists BaseItems across both specializations.
type ListCatalogItemsQuery struct {
	Filter     repository.CatalogFilter
	Pagination utils.PaginationParams
}

type ListCatalogItemsHandler struct {
	items BaseItemStore
}

func NewListCatalogItemsHandler(items BaseItemStore) *ListCatalogItemsHandler {
	return &ListCatalogItemsHandler{items: items}
}

func (h *ListCatalogItemsHandler) Handle(ctx context.Context, q ListCatalogItemsQuery) results.Result[results.PaginatedResult[models.BaseItem]] {
	items, total, err := h.items.List(ctx, q.Filter, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.BaseItem]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(items, q.Pagination.Page, q.Pagination.Limit, total))
}

// ResolveItemQuery answers the cross-module question "is this a product or
// a service, and what is its BaseItemID".
type ResolveItemQuery struct {
	ItemID uuid.UUID `json:"item_id"`
}

type ResolveItemHandler struct {
	resolver *ItemResolver
}

func NewResolveItemHandler(resolver *ItemResolver) *ResolveItemHandler {
	return &ResolveItemHandler{resolver: resolver}
}

func (h *ResolveItemHandler) Handle(ctx context.Context, q ResolveItemQuery) results.Result[Resolution] {
	resolution, err := h.resolver.Resolve(ctx, q.ItemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return results.NotFound[Resolution](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[Resolution](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(resolution)
}

type GetBaseItemIDByProductIDQuery struct {
	ProductID uuid.UUID `json:"product_id"`
}

type GetBaseItemIDByProductIDHandler struct {
	products ProductStore
}

func NewGetBaseItemIDByProductIDHandler(products ProductStore) *GetBaseItemIDByProductIDHandler {
	return &GetBaseItemIDByProductIDHandler{products: products}
}

func (h *GetBaseItemIDByProductIDHandler) Handle(ctx context.Context, q GetBaseItemIDByProductIDQuery) results.Result[uuid.UUID] {
	product, err := h.products.GetByID(ctx, q.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[uuid.UUID](i18n.Tr(ctx, i18n.KeyProductNotFound))
		}
		return results.Internal[uuid.UUID](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(product.BaseItemID)
}

type GetBaseItemIDByServiceIDQuery struct {
	ServiceID uuid.UUID `json:"service_id"`
}

type GetBaseItemIDByServiceIDHandler struct {
	services ServiceStore
}

func NewGetBaseItemIDByServiceIDHandler(services ServiceStore) *GetBaseItemIDByServiceIDHandler {
	return &GetBaseItemIDByServiceIDHandler{services: services}
}

func (h *GetBaseItemIDByServiceIDHandler) Handle(ctx context.Context, q GetBaseItemIDByServiceIDQuery) results.Result[uuid.UUID] {
	service, err := h.services.GetByID(ctx, q.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[uuid.UUID](i18n.Tr(ctx, i18n.KeyServiceNotFound))
		}
		return results.Internal[uuid.UUID](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(service.BaseItemID)
}

// ItemDetails carries the canonical BaseItem plus its kind discriminator.
type ItemDetails struct {
	Item       *models.BaseItem `json:"item"`
	Resolution Resolution       `json:"resolution"`
}

type GetItemDetailsByBaseItemIDQuery struct {
	BaseItemID uuid.UUID `json:"base_item_id"`
}

type GetItemDetailsByBaseItemIDHandler struct {
	items    BaseItemStore
	resolver *ItemResolver
}

func NewGetItemDetailsByBaseItemIDHandler(items BaseItemStore, resolver *ItemResolver) *GetItemDetailsByBaseItemIDHandler {
	return &GetItemDetailsByBaseItemIDHandler{items: items, resolver: resolver}
}

func (h *GetItemDetailsByBaseItemIDHandler) Handle(ctx context.Context, q GetItemDetailsByBaseItemIDQuery) results.Result[ItemDetails] {
	item, err := h.items.GetDetailed(ctx, q.BaseItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[ItemDetails](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[ItemDetails](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	resolution, err := h.resolver.ResolveBase(ctx, q.BaseItemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return results.NotFound[ItemDetails](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[ItemDetails](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	return results.Ok(ItemDetails{Item: item, Resolution: resolution})
}
