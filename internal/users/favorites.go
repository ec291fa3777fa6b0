// internal/users/favorites.go
package users

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

type AddFavoriteCommand struct {
	UserID uuid.UUID `json:"-"`
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

// AddFavoriteHandler stores the canonical BaseItemID. A repeat add is a
// conflict; re-adding a removed favorite revives the soft-deleted row so the
// unique (user, item) index stays satisfied.
type AddFavoriteHandler struct {
	favorites FavoriteStore
	resolver  ItemResolver
}

func NewAddFavoriteHandler(favorites FavoriteStore, resolver ItemResolver) *AddFavoriteHandler {
	return &AddFavoriteHandler{favorites: favorites, resolver: resolver}
}

func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) results.Result[*models.Favorite] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Favorite](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	resolution, err := h.resolver.Resolve(ctx, cmd.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[*models.Favorite](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[*models.Favorite](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	existing, err := h.favorites.ForUserItemIncludingDeleted(ctx, cmd.UserID, resolution.BaseItemID)
	switch {
	case err == nil && !existing.DeletedAt.Valid:
		return results.Fail[*models.Favorite](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyFavoriteExists), nil)
	case err == nil:
		if err := h.favorites.Revive(ctx, existing); err != nil {
			return results.Internal[*models.Favorite](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		return results.OkMsg(existing, i18n.Tr(ctx, i18n.KeyFavoriteAdded))
	case !errors.Is(err, repository.ErrNotFound):
		return results.Internal[*models.Favorite](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	favorite := &models.Favorite{UserID: cmd.UserID, BaseItemID: resolution.BaseItemID}
	if err := h.favorites.Add(ctx, favorite); err != nil {
		return results.Internal[*models.Favorite](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(favorite, i18n.Tr(ctx, i18n.KeyFavoriteAdded))
}

type RemoveFavoriteCommand struct {
	UserID uuid.UUID `json:"-"`
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

type RemoveFavoriteHandler struct {
	favorites FavoriteStore
	resolver  ItemResolver
}

func NewRemoveFavoriteHandler(favorites FavoriteStore, resolver ItemResolver) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{favorites: favorites, resolver: resolver}
}

func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) results.Result[bool] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[bool](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	resolution, err := h.resolver.Resolve(ctx, cmd.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	existing, err := h.favorites.ForUserItemIncludingDeleted(ctx, cmd.UserID, resolution.BaseItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyFavoriteNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if existing.DeletedAt.Valid {
		return results.Fail[bool](results.ErrTypeAlreadyDeleted, i18n.Tr(ctx, i18n.KeyFavoriteAlreadyDeleted), nil)
	}

	if err := h.favorites.Remove(ctx, existing); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyFavoriteRemoved))
}

type IsFavoriteQuery struct {
	UserID uuid.UUID `json:"-"`
	ItemID uuid.UUID `json:"-"`
}

type IsFavoriteHandler struct {
	favorites FavoriteStore
	resolver  ItemResolver
}

func NewIsFavoriteHandler(favorites FavoriteStore, resolver ItemResolver) *IsFavoriteHandler {
	return &IsFavoriteHandler{favorites: favorites, resolver: resolver}
}

func (h *IsFavoriteHandler) Handle(ctx context.Context, q IsFavoriteQuery) results.Result[bool] {
	resolution, err := h.resolver.Resolve(ctx, q.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if _, err := h.favorites.ForUserItem(ctx, q.UserID, resolution.BaseItemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.Ok(false)
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(true)
}

type ListFavoritesQuery struct {
	UserID     uuid.UUID `json:"-"`
	Pagination utils.PaginationParams
}

type ListFavoritesHandler struct {
	favorites FavoriteStore
}

func NewListFavoritesHandler(favorites FavoriteStore) *ListFavoritesHandler {
	return &ListFavoritesHandler{favorites: favorites}
}

func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) results.Result[results.PaginatedResult[models.Favorite]] {
	favorites, total, err := h.favorites.ListForUser(ctx, q.UserID, q.Pagination)
	if err != nil {
		return results.Internal[results.PaginatedResult[models.Favorite]](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(results.Paginate(favorites, q.Pagination.Page, q.Pagination.Limit, total))
}

// GetItemIDByFavoriteIDQuery recovers the concrete Product or Service id for
// a stored favorite.
type GetItemIDByFavoriteIDQuery struct {
	UserID     uuid.UUID `json:"-"`
	FavoriteID uuid.UUID `json:"-"`
}

type GetItemIDByFavoriteIDHandler struct {
	favorites FavoriteStore
	resolver  ItemResolver
}

func NewGetItemIDByFavoriteIDHandler(favorites FavoriteStore, resolver ItemResolver) *GetItemIDByFavoriteIDHandler {
	return &GetItemIDByFavoriteIDHandler{favorites: favorites, resolver: resolver}
}

func (h *GetItemIDByFavoriteIDHandler) Handle(ctx context.Context, q GetItemIDByFavoriteIDQuery) results.Result[catalogs.Resolution] {
	favorite, err := h.favorites.GetByID(ctx, q.FavoriteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[catalogs.Resolution](i18n.Tr(ctx, i18n.KeyFavoriteNotFound))
		}
		return results.Internal[catalogs.Resolution](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if favorite.UserID != q.UserID {
		return results.NotFound[catalogs.Resolution](i18n.Tr(ctx, i18n.KeyFavoriteNotFound))
	}

	resolution, err := h.resolver.ResolveBase(ctx, favorite.BaseItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[catalogs.Resolution](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[catalogs.Resolution](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(resolution)
}

// GetItemOwnerQuery answers "who sells this item", used when opening a
// conversation from a listing.
type GetItemOwnerQuery struct {
	ItemID uuid.UUID `json:"-"`
}

type GetItemOwnerHandler struct {
	items    BaseItemStore
	resolver ItemResolver
}

func NewGetItemOwnerHandler(items BaseItemStore, resolver ItemResolver) *GetItemOwnerHandler {
	return &GetItemOwnerHandler{items: items, resolver: resolver}
}

func (h *GetItemOwnerHandler) Handle(ctx context.Context, q GetItemOwnerQuery) results.Result[uuid.UUID] {
	resolution, err := h.resolver.Resolve(ctx, q.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[uuid.UUID](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[uuid.UUID](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetByID(ctx, resolution.BaseItemID)
	if err != nil {
		return results.Internal[uuid.UUID](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(item.OwnerID)
}
