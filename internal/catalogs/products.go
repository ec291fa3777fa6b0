// internal/catalogs/products.go
package catalogs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type MediaInput struct {
	URL  string           `json:"url" validate:"required,max=500"`
	Kind models.MediaKind `json:"kind,omitempty"`
}

type FeatureInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"max=255"`
}

// CreateProductCommand creates the whole product aggregate: BaseItem,
// Product, media and features, inside one transaction.
type CreateProductCommand struct {
	OwnerID     uuid.UUID       `json:"-"`
	Name        string          `json:"name" validate:"required,min=3,max=255"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	BrandID     *uuid.UUID      `json:"brand_id,omitempty"`
	SKU         string          `json:"sku" validate:"max=64"`
	StockCount  int             `json:"stock_count" validate:"min=0"`
	Media       []MediaInput    `json:"media,omitempty" validate:"dive"`
	Features    []FeatureInput  `json:"features,omitempty" validate:"dive"`
}

type CreateProductHandler struct {
	items      BaseItemStore
	products   ProductStore
	categories CategoryStore
	brands     BrandStore
	media      MediaStore
	features   FeatureStore
	uow        database.UnitOfWork
}

func NewCreateProductHandler(items BaseItemStore, products ProductStore, categories CategoryStore, brands BrandStore, media MediaStore, features FeatureStore, uow database.UnitOfWork) *CreateProductHandler {
	return &CreateProductHandler{
		items:      items,
		products:   products,
		categories: categories,
		brands:     brands,
		media:      media,
		features:   features,
		uow:        uow,
	}
}

func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) results.Result[*models.Product] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}
	if !cmd.Price.IsPositive() {
		return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyValidationInvalid, "price"))
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	if _, err := h.categories.GetByID(txCtx, cmd.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyCategoryNotFound))
		}
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if cmd.BrandID != nil {
		if _, err := h.brands.GetByID(txCtx, *cmd.BrandID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyBrandNotFound))
			}
			return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	item := &models.BaseItem{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		CategoryID:  cmd.CategoryID,
		BrandID:     cmd.BrandID,
		OwnerID:     cmd.OwnerID,
		IsAvailable: true,
	}
	if err := h.items.Add(txCtx, item); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	// Generated BaseItem id is needed before the dependent rows go in.
	if err := h.uow.Save(txCtx); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	product := &models.Product{
		BaseItemID: item.ID,
		SKU:        cmd.SKU,
		StockCount: cmd.StockCount,
	}
	if err := h.products.Add(txCtx, product); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	for _, m := range cmd.Media {
		kind := m.Kind
		if kind == "" {
			kind = models.MediaKindImage
		}
		if err := h.media.Add(txCtx, &models.Media{BaseItemID: item.ID, URL: m.URL, Kind: kind}); err != nil {
			return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}
	for _, f := range cmd.Features {
		if err := h.features.Add(txCtx, &models.Feature{BaseItemID: item.ID, Name: f.Name, Value: f.Value}); err != nil {
			return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	product.BaseItem = *item
	return results.OkMsg(product, i18n.Tr(ctx, i18n.KeyProductCreated))
}

// UpdateProductCommand patches the product aggregate; nil fields are left
// untouched.
type UpdateProductCommand struct {
	ProductID   uuid.UUID        `json:"-"`
	OwnerID     uuid.UUID        `json:"-"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         *string          `json:"sku,omitempty" validate:"omitempty,max=64"`
	StockCount  *int             `json:"stock_count,omitempty" validate:"omitempty,min=0"`
	IsAvailable *bool            `json:"is_available,omitempty"`
}

type UpdateProductHandler struct {
	items    BaseItemStore
	products ProductStore
	uow      database.UnitOfWork
}

func NewUpdateProductHandler(items BaseItemStore, products ProductStore, uow database.UnitOfWork) *UpdateProductHandler {
	return &UpdateProductHandler{items: items, products: products, uow: uow}
}

func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) results.Result[*models.Product] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}
	if cmd.Price != nil && !cmd.Price.IsPositive() {
		return results.Validation[*models.Product](i18n.Tr(ctx, i18n.KeyValidationInvalid, "price"))
	}

	product, err := h.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Product](i18n.Tr(ctx, i18n.KeyProductNotFound))
		}
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetByID(ctx, product.BaseItemID)
	if err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if item.OwnerID != cmd.OwnerID {
		return results.Fail[*models.Product](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	if cmd.Name != nil {
		item.Name = *cmd.Name
	}
	if cmd.Description != nil {
		item.Description = *cmd.Description
	}
	if cmd.Price != nil {
		item.Price = *cmd.Price
	}
	if cmd.IsAvailable != nil {
		item.IsAvailable = *cmd.IsAvailable
	}
	if err := h.items.Update(txCtx, item); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if cmd.SKU != nil {
		product.SKU = *cmd.SKU
	}
	if cmd.StockCount != nil {
		product.StockCount = *cmd.StockCount
	}
	if err := h.products.Update(txCtx, product); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	product.BaseItem = *item
	return results.OkMsg(product, i18n.Tr(ctx, i18n.KeyProductUpdated))
}

type DeleteProductCommand struct {
	ProductID uuid.UUID `json:"-"`
	OwnerID   uuid.UUID `json:"-"`
}

type DeleteProductHandler struct {
	items    BaseItemStore
	products ProductStore
	uow      database.UnitOfWork
}

func NewDeleteProductHandler(items BaseItemStore, products ProductStore, uow database.UnitOfWork) *DeleteProductHandler {
	return &DeleteProductHandler{items: items, products: products, uow: uow}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) results.Result[bool] {
	product, err := h.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyProductNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetByID(ctx, product.BaseItemID)
	if err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if item.OwnerID != cmd.OwnerID {
		return results.Fail[bool](results.ErrTypeUnauthorized, i18n.Tr(ctx, i18n.KeyOrderNotOwner), nil)
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

	if err := h.products.Remove(txCtx, product); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.items.Remove(txCtx, item); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyProductDeleted))
}

// AdjustProductStockCommand applies a signed stock delta. The cancel-order
// flow sends it through the mediator to restore quantities.
type AdjustProductStockCommand struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Delta     int       `json:"delta" validate:"required"`
}

type AdjustProductStockHandler struct {
	products ProductStore
}

func NewAdjustProductStockHandler(products ProductStore) *AdjustProductStockHandler {
	return &AdjustProductStockHandler{products: products}
}

func (h *AdjustProductStockHandler) Handle(ctx context.Context, cmd AdjustProductStockCommand) results.Result[int] {
	product, err := h.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[int](i18n.Tr(ctx, i18n.KeyProductNotFound))
		}
		return results.Internal[int](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	next := product.StockCount + cmd.Delta
	if next < 0 {
		return results.Validation[int](i18n.Tr(ctx, i18n.KeyProductOutOfStock))
	}

	product.StockCount = next
	if err := h.products.Update(ctx, product); err != nil {
		return results.Internal[int](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	logrus.WithFields(logrus.Fields{
		"product_id": cmd.ProductID,
		"delta":      cmd.Delta,
		"stock":      next,
	}).Info("Product stock adjusted")

	return results.Ok(next)
}

type GetProductByIDQuery struct {
	ProductID uuid.UUID `json:"-"`
}

type GetProductByIDHandler struct {
	items    BaseItemStore
	products ProductStore
}

func NewGetProductByIDHandler(items BaseItemStore, products ProductStore) *GetProductByIDHandler {
	return &GetProductByIDHandler{items: items, products: products}
}

func (h *GetProductByIDHandler) Handle(ctx context.Context, q GetProductByIDQuery) results.Result[*models.Product] {
	product, err := h.products.GetByID(ctx, q.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Product](i18n.Tr(ctx, i18n.KeyProductNotFound))
		}
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetDetailed(ctx, product.BaseItemID)
	if err != nil {
		return results.Internal[*models.Product](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	product.BaseItem = *item
	return results.Ok(product)
}
