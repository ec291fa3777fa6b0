// internal/catalogs/deps.go
package catalogs

import (
	"context"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// Store interfaces declare exactly what the handlers consume; the
// repository package satisfies them, tests fake them.

type BaseItemStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BaseItem, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*models.BaseItem, error)
	Add(ctx context.Context, item *models.BaseItem) error
	Update(ctx context.Context, item *models.BaseItem) error
	Remove(ctx context.Context, item *models.BaseItem) error
	List(ctx context.Context, filter repository.CatalogFilter, params utils.PaginationParams) ([]models.BaseItem, int64, error)
}

type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Product, error)
	Add(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Remove(ctx context.Context, product *models.Product) error
}

type ServiceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Service, error)
	Add(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Remove(ctx context.Context, service *models.Service) error
}

type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Add(ctx context.Context, category *models.Category) error
	ListAll(ctx context.Context) ([]models.Category, error)
}

type BrandStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetByNameIncludingDeleted(ctx context.Context, name string) (*models.Brand, error)
	GetByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	Add(ctx context.Context, brand *models.Brand) error
	Remove(ctx context.Context, brand *models.Brand) error
	Revive(ctx context.Context, brand *models.Brand) error
	ListAll(ctx context.Context) ([]models.Brand, error)
}

type MediaStore interface {
	Add(ctx context.Context, media *models.Media) error
}

type FeatureStore interface {
	Add(ctx context.Context, feature *models.Feature) error
}
