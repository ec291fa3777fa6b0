// internal/catalogs/categories.go
package catalogs

import (
	"context"
	"errors"

	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type CreateCategoryCommand struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type CreateCategoryHandler struct {
	categories CategoryStore
}

func NewCreateCategoryHandler(categories CategoryStore) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories}
}

func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) results.Result[*models.Category] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Category](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}

	if _, err := h.categories.GetByName(ctx, cmd.Name); err == nil {
		return results.Fail[*models.Category](results.ErrTypeAlreadyExists, i18n.Tr(ctx, i18n.KeyCategoryExists), nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return results.Internal[*models.Category](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	category := &models.Category{Name: cmd.Name, Description: cmd.Description}
	if err := h.categories.Add(ctx, category); err != nil {
		return results.Internal[*models.Category](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.OkMsg(category, i18n.Tr(ctx, i18n.KeyCategoryCreated))
}

type ListCategoriesQuery struct{}

type ListCategoriesHandler struct {
	categories CategoryStore
}

func NewListCategoriesHandler(categories CategoryStore) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

func (h *ListCategoriesHandler) Handle(ctx context.Context, _ ListCategoriesQuery) results.Result[[]models.Category] {
	categories, err := h.categories.ListAll(ctx)
	if err != nil {
		return results.Internal[[]models.Category](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	return results.Ok(categories)
}
