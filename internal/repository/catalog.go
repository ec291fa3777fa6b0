// internal/repository/catalog.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type ProductRepository struct {
	*Repository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{NewRepository[models.Product](db)}
}

func (r *ProductRepository) GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Product, error) {
	return r.First(ctx, "base_item_id = ?", baseItemID)
}

type ServiceRepository struct {
	*Repository[models.Service]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{NewRepository[models.Service](db)}
}

func (r *ServiceRepository) GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Service, error) {
	return r.First(ctx, "base_item_id = ?", baseItemID)
}

type BaseItemRepository struct {
	*Repository[models.BaseItem]
}

func NewBaseItemRepository(db *gorm.DB) *BaseItemRepository {
	return &BaseItemRepository{NewRepository[models.BaseItem](db)}
}

// GetDetailed loads a BaseItem with its media, features, category and brand.
func (r *BaseItemRepository) GetDetailed(ctx context.Context, id uuid.UUID) (*models.BaseItem, error) {
	var item models.BaseItem
	err := r.conn(ctx).
		Preload("Media").Preload("Features").Preload("Category").Preload("Brand").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &item, nil
}

// CatalogFilter narrows the paginated catalog listing.
type CatalogFilter struct {
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	OwnerID    *uuid.UUID
	Search     string
	PriceMin   *float64
	PriceMax   *float64
	Available  *bool
	Kind       models.ItemKind
}

func (r *BaseItemRepository) List(ctx context.Context, filter CatalogFilter, params utils.PaginationParams) ([]models.BaseItem, int64, error) {
	query := r.conn(ctx).Model(&models.BaseItem{}).
		Preload("Media").Preload("Category").Preload("Brand")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}
	switch filter.Kind {
	case models.ItemKindProduct:
		query = query.Where("EXISTS (SELECT 1 FROM products p WHERE p.base_item_id = base_items.id AND p.deleted_at IS NULL)")
	case models.ItemKindService:
		query = query.Where("EXISTS (SELECT 1 FROM services s WHERE s.base_item_id = base_items.id AND s.deleted_at IS NULL)")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var items []models.BaseItem
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

type CategoryRepository struct {
	*Repository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{NewRepository[models.Category](db)}
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.First(ctx, "name = ?", name)
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.conn(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

type BrandRepository struct {
	*Repository[models.Brand]
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{NewRepository[models.Brand](db)}
}

// GetByNameIncludingDeleted also sees soft-deleted rows so a recreate can
// revive them instead of tripping the unique index.
func (r *BrandRepository) GetByNameIncludingDeleted(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.conn(ctx).Unscoped().Where("name = ?", name).First(&brand).Error; err != nil {
		return nil, mapErr(err)
	}
	return &brand, nil
}

func (r *BrandRepository) GetByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.conn(ctx).Unscoped().First(&brand, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &brand, nil
}

// Revive clears the soft-delete stamp.
func (r *BrandRepository) Revive(ctx context.Context, brand *models.Brand) error {
	return r.conn(ctx).Unscoped().Model(brand).Update("deleted_at", nil).Error
}

func (r *BrandRepository) ListAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.conn(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

type MediaRepository struct {
	*Repository[models.Media]
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{NewRepository[models.Media](db)}
}

type FeatureRepository struct {
	*Repository[models.Feature]
}

func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{NewRepository[models.Feature](db)}
}
