// internal/catalogs/brands.go
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

type CreateBrandCommand struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	LogoURL string `json:"logo_url" validate:"omitempty,max=500"`
}

type CreateBrandHandler struct {
	brands BrandStore
}

func NewCreateBrandHandler(brands BrandStore) *CreateBrandHandler {
	return &CreateBrandHandler{brands: brands}
}

// Handle creates a brand. A live duplicate name is AlreadyExists; a
// soft-deleted one is revived so the unique index never blocks a recreate.
func (h *CreateBrandHandler) Handle(ctx context.Context, cmd CreateBrandCommand) results.Result[*models.Brand] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Brand](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	existing, err := h.brands.GetByNameIncludingDeleted(ctx, cmd.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[*models.Brand](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if existing != nil {
		if !existing.DeletedAt.Valid {
			return results.Fail[*models.Brand](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyBrandExists), nil)
		}
		if err := h.brands.Revive(ctx, existing); err != nil {
			return results.Internal[*models.Brand](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
		return results.OkMsg(existing, i18n.Tr(ctx, i18n.KeyBrandCreated))
	}

	brand := &models.Brand{Name: cmd.Name, LogoURL: cmd.LogoURL}
	if err := h.brands.Add(ctx, brand); err != nil {
		return results.Internal[*models.Brand](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(brand, i18n.Tr(ctx, i18n.KeyBrandCreated))
}

type DeleteBrandCommand struct {
	BrandID uuid.UUID `json:"-"`
}

type DeleteBrandHandler struct {
	brands BrandStore
}

func NewDeleteBrandHandler(brands BrandStore) *DeleteBrandHandler {
	return &DeleteBrandHandler{brands: brands}
}

func (h *DeleteBrandHandler) Handle(ctx context.Context, cmd DeleteBrandCommand) results.Result[bool] {
	brand, err := h.brands.GetByIDIncludingDeleted(ctx, cmd.BrandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[bool](i18n.Tr(ctx, i18n.KeyBrandNotFound))
		}
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if brand.DeletedAt.Valid {
		return results.Fail[bool](results.ErrTypeAlreadyDeleted, i18n.Tr(ctx, i18n.KeyBrandAlreadyDeleted), nil)
	}

	if err := h.brands.Remove(ctx, brand); err != nil {
		return results.Internal[bool](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(true, i18n.Tr(ctx, i18n.KeyBrandDeleted))
}

type ListBrandsQuery struct{}

type ListBrandsHandler struct {
	brands BrandStore
}

func NewListBrandsHandler(brands BrandStore) *ListBrandsHandler {
	return &ListBrandsHandler{brands: brands}
}

func (h *ListBrandsHandler) Handle(ctx context.Context, _ ListBrandsQuery) results.Result[[]models.Brand] {
	brands, err := h.brands.ListAll(ctx)
	if err != nil {
		return results.Internal[[]models.Brand](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(brands)
}
