// internal/shoppings/cart.go
package shoppings

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

// AddToCartCommand accepts an opaque ItemID; resolution to the canonical
// BaseItemID happens here, not at the call site.
type AddToCartCommand struct {
	UserID   uuid.UUID `json:"-"`
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type AddToCartHandler struct {
	carts    CartStore
	lines    CartItemStore
	items    BaseItemStore
	products ProductStore
	resolver ItemResolver
	uow      database.UnitOfWork
}

func NewAddToCartHandler(carts CartStore, lines CartItemStore, items BaseItemStore, products ProductStore, resolver ItemResolver, uow database.UnitOfWork) *AddToCartHandler {
	return &AddToCartHandler{carts: carts, lines: lines, items: items, products: products, resolver: resolver, uow: uow}
}

func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) results.Result[*models.CartItem] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.CartItem](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	resolution, err := h.resolver.Resolve(ctx, cmd.ItemID)
	if err != nil {
		if errors.Is(err, catalogs.ErrItemNotFound) {
			return results.NotFound[*models.CartItem](i18n.Tr(ctx, i18n.KeyItemNotFound))
		}
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetByID(ctx, resolution.BaseItemID)
	if err != nil {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if !item.IsAvailable {
		return results.Fail[*models.CartItem](i18n.KeyAddToCartFailed, i18n.Tr(ctx, i18n.KeyAddToCartFailed), nil)
	}

	// The cart row and its line commit together, so a line-write failure
	// never strands a freshly created cart.
	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	cart, err := h.carts.ActiveForUser(txCtx, cmd.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		cart = &models.Cart{UserID: cmd.UserID, Status: models.CartStatusActive}
		if err := h.carts.Add(txCtx, cart); err != nil {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		if err := h.uow.Save(txCtx); err != nil {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	// Re-adding a soft-deleted line revives the old row; a live line just
	// grows.
	line, err := h.lines.LineIncludingDeleted(txCtx, cart.ID, resolution.BaseItemID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	newQuantity := cmd.Quantity
	if line != nil && !line.DeletedAt.Valid {
		newQuantity = line.Quantity + cmd.Quantity
	}

	if resolution.Kind == models.ItemKindProduct {
		product, err := h.products.GetByBaseItemID(txCtx, resolution.BaseItemID)
		if err != nil {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		if product.StockCount < newQuantity {
			return results.Validation[*models.CartItem](i18n.Tr(ctx, i18n.KeyProductOutOfStock))
		}
	}

	switch {
	case line == nil:
		line = &models.CartItem{CartID: cart.ID, BaseItemID: resolution.BaseItemID, Quantity: newQuantity}
		if err := h.lines.Add(txCtx, line); err != nil {
			return results.Fail[*models.CartItem]("AddToCartFailed", i18n.Tr(ctx, i18n.KeyAddToCartFailed), err)
		}
	case line.DeletedAt.Valid:
		if err := h.lines.Revive(txCtx, line, newQuantity); err != nil {
			return results.Fail[*models.CartItem]("AddToCartFailed", i18n.Tr(ctx, i18n.KeyAddToCartFailed), err)
		}
		line.Quantity = newQuantity
	default:
		line.Quantity = newQuantity
		if err := h.lines.Update(txCtx, line); err != nil {
			return results.Fail[*models.CartItem]("AddToCartFailed", i18n.Tr(ctx, i18n.KeyAddToCartFailed), err)
		}
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	return results.OkMsg(line, i18n.Tr(ctx, i18n.KeyCartItemAdded))
}

// UpdateCartItemQuantityCommand sets an absolute quantity. Zero soft-deletes
// the line; the row is stamped, never dropped.
type UpdateCartItemQuantityCommand struct {
	UserID     uuid.UUID `json:"-"`
	CartItemID uuid.UUID `json:"-"`
	Quantity   int       `json:"quantity" validate:"min=0"`
}

type UpdateCartItemQuantityHandler struct {
	carts    CartStore
	lines    CartItemStore
	products ProductStore
	resolver ItemResolver
}

func NewUpdateCartItemQuantityHandler(carts CartStore, lines CartItemStore, products ProductStore, resolver ItemResolver) *UpdateCartItemQuantityHandler {
	return &UpdateCartItemQuantityHandler{carts: carts, lines: lines, products: products, resolver: resolver}
}

func (h *UpdateCartItemQuantityHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantityCommand) results.Result[*models.CartItem] {
	if cmd.Quantity < 0 {
		return results.Validation[*models.CartItem](i18n.Tr(ctx, i18n.KeyValidationInvalid, "quantity"))
	}

	line, err := h.lines.GetByID(ctx, cmd.CartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.CartItem](i18n.Tr(ctx, i18n.KeyCartItemNotFound))
		}
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	cart, err := h.carts.GetWithItems(ctx, line.CartID)
	if err != nil {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if cart.UserID != cmd.UserID {
		return results.Fail[*models.CartItem](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyCartItemNotFound), nil)
	}

	if cmd.Quantity == 0 {
		if err := h.lines.Remove(ctx, line); err != nil {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		return results.OkMsg(line, i18n.Tr(ctx, i18n.KeyCartItemRemoved))
	}

	resolution, err := h.resolver.ResolveBase(ctx, line.BaseItemID)
	if err == nil && resolution.Kind == models.ItemKindProduct {
		product, perr := h.products.GetByBaseItemID(ctx, line.BaseItemID)
		if perr != nil {
			return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), perr)
		}
		if product.StockCount < cmd.Quantity {
			return results.Validation[*models.CartItem](i18n.Tr(ctx, i18n.KeyProductOutOfStock))
		}
	}

	line.Quantity = cmd.Quantity
	if err := h.lines.Update(ctx, line); err != nil {
		return results.Internal[*models.CartItem](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(line, i18n.Tr(ctx, i18n.KeyCartItemUpdated))
}

type RemoveFromCartCommand struct {
	UserID     uuid.UUID `json:"-"`
	CartItemID uuid.UUID `json:"-"`
}

type RemoveFromCartHandler struct {
	carts CartStore
	lines CartItemStore
}

func NewRemoveFromCartHandler(carts CartStore, lines CartItemStore) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{carts: carts, lines: lines}
}

func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) results.Result[bool] {
	line, err := h.lines.GetByID(ctx, cmd.CartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyCartItemNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	cart, err := h.carts.GetWithItems(ctx, line.CartID)
	if err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if cart.UserID != cmd.UserID {
		return results.Fail[bool](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyCartItemNotFound), nil)
	}

	if err := h.lines.Remove(ctx, line); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyCartItemRemoved))
}

type GetActiveCartQuery struct {
	UserID uuid.UUID `json:"-"`
}

type GetActiveCartHandler struct {
	carts CartStore
}

func NewGetActiveCartHandler(carts CartStore) *GetActiveCartHandler {
	return &GetActiveCartHandler{carts: carts}
}

func (h *GetActiveCartHandler) Handle(ctx context.Context, q GetActiveCartQuery) results.Result[*models.Cart] {
	cart, err := h.carts.ActiveForUser(ctx, q.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Cart](i18n.Tr(ctx, i18n.KeyCartNotFound))
		}
		return results.Internal[*models.Cart](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(cart)
}
