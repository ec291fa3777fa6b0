// internal/catalogs/services.go
package catalogs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sooqhub/sooq-backend/internal/database"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// CreateServiceCommand creates the service aggregate: BaseItem, Service,
// media and features, inside one transaction.
type CreateServiceCommand struct {
	OwnerID         uuid.UUID       `json:"-"`
	Name            string          `json:"name" validate:"required,min=3,max=255"`
	Description     string          `json:"description" validate:"max=5000"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      uuid.UUID       `json:"category_id" validate:"required"`
	BrandID         *uuid.UUID      `json:"brand_id,omitempty"`
	ServiceType     string          `json:"service_type" validate:"required,max=100"`
	DurationMinutes int             `json:"duration_minutes" validate:"min=0"`
	Media           []MediaInput    `json:"media,omitempty" validate:"dive"`
	Features        []FeatureInput  `json:"features,omitempty" validate:"dive"`
}

type CreateServiceHandler struct {
	items      BaseItemStore
	services   ServiceStore
	categories CategoryStore
	media      MediaStore
	features   FeatureStore
	uow        database.UnitOfWork
}

func NewCreateServiceHandler(items BaseItemStore, services ServiceStore, categories CategoryStore, media MediaStore, features FeatureStore, uow database.UnitOfWork) *CreateServiceHandler {
	return &CreateServiceHandler{
		items:      items,
		services:   services,
		categories: categories,
		media:      media,
		features:   features,
		uow:        uow,
	}
}

func (h *CreateServiceHandler) Handle(ctx context.Context, cmd CreateServiceCommand) results.Result[*models.Service] {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return results.Validation[*models.Service](i18n.Tr(ctx, i18n.KeyValidationFailed))
	}
	if !cmd.Price.IsPositive() {
		return results.Validation[*models.Service](i18n.Tr(ctx, i18n.KeyValidationInvalid, "price"))
	}

	txCtx, err := h.uow.Begin(ctx)
	if err != nil {
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed := false
	defer func() {
		if !committed {
			h.uow.Rollback(txCtx)
		}
	}()

	if _, err := h.categories.GetByID(txCtx, cmd.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.Validation[*models.Service](i18n.Tr(ctx, i18n.KeyCategoryNotFound))
		}
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
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
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	if err := h.uow.Save(txCtx); err != nil {
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	service := &models.Service{
		BaseItemID:      item.ID,
		ServiceType:     cmd.ServiceType,
		DurationMinutes: cmd.DurationMinutes,
	}
	if err := h.services.Add(txCtx, service); err != nil {
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	for _, m := range cmd.Media {
		kind := m.Kind
		if kind == "" {
			kind = models.MediaKindImage
		}
		if err := h.media.Add(txCtx, &models.Media{BaseItemID: item.ID, URL: m.URL, Kind: kind}); err != nil {
			return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}
	for _, f := range cmd.Features {
		if err := h.features.Add(txCtx, &models.Feature{BaseItemID: item.ID, Name: f.Name, Value: f.Value}); err != nil {
			return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
		}
	}

	if err := h.uow.Commit(txCtx); err != nil {
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}
	committed = true

	service.BaseItem = *item
	return results.OkMsg(service, i18n.Tr(ctx, i18n.KeyServiceCreated))
}

type GetServiceByIDQuery struct {
	ServiceID uuid.UUID `json:"-"`
}

type GetServiceByIDHandler struct {
	items    BaseItemStore
	services ServiceStore
}

func NewGetServiceByIDHandler(items BaseItemStore, services ServiceStore) *GetServiceByIDHandler {
	return &GetServiceByIDHandler{items: items, services: services}
}

func (h *GetServiceByIDHandler) Handle(ctx context.Context, q GetServiceByIDQuery) results.Result[*models.Service] {
	service, err := h.services.GetByID(ctx, q.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return results.NotFound[*models.Service](i18n.Tr(ctx, i18n.KeyServiceNotFound))
		}
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	item, err := h.items.GetDetailed(ctx, service.BaseItemID)
	if err != nil {
		return results.Internal[*models.Service](i18n.Tr(ctx, i18n.KeyInternalError), err)
	}

	service.BaseItem = *item
	return results.Ok(service)
}
