// internal/catalogs/fakes_test.go
package catalogs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// Write methods for the stores declared in resolver_test.go, so the same
// fakes serve the aggregate command handlers.

func (f *fakeProductStore) Add(_ context.Context, product *models.Product) error {
	product.ID = uuid.New()
	if f.byID == nil {
		f.byID = make(map[uuid.UUID]*models.Product)
	}
	if f.byBase == nil {
		f.byBase = make(map[uuid.UUID]*models.Product)
	}
	f.byID[product.ID] = product
	f.byBase[product.BaseItemID] = product
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, product *models.Product) error {
	f.byID[product.ID] = product
	f.byBase[product.BaseItemID] = product
	return nil
}

func (f *fakeProductStore) Remove(_ context.Context, product *models.Product) error {
	product.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	delete(f.byID, product.ID)
	delete(f.byBase, product.BaseItemID)
	return nil
}

type fakeItemStore struct {
	items map[uuid.UUID]*models.BaseItem
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[uuid.UUID]*models.BaseItem)}
}

func (f *fakeItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.BaseItem, error) {
	if item, ok := f.items[id]; ok && !item.DeletedAt.Valid {
		return item, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeItemStore) GetDetailed(ctx context.Context, id uuid.UUID) (*models.BaseItem, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeItemStore) Add(_ context.Context, item *models.BaseItem) error {
	item.ID = uuid.New()
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemStore) Update(_ context.Context, item *models.BaseItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemStore) Remove(_ context.Context, item *models.BaseItem) error {
	item.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeItemStore) List(_ context.Context, filter repository.CatalogFilter, _ utils.PaginationParams) ([]models.BaseItem, int64, error) {
	var out []models.BaseItem
	for _, item := range f.items {
		if item.DeletedAt.Valid {
			continue
		}
		if filter.CategoryID != nil && item.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	if category, ok := f.categories[id]; ok {
		return category, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategoryStore) GetByName(_ context.Context, name string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategoryStore) Add(_ context.Context, category *models.Category) error {
	category.ID = uuid.New()
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryStore) ListAll(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

type fakeBrandStore struct {
	brands map[uuid.UUID]*models.Brand
}

func newFakeBrandStore() *fakeBrandStore {
	return &fakeBrandStore{brands: make(map[uuid.UUID]*models.Brand)}
}

func (f *fakeBrandStore) GetByID(_ context.Context, id uuid.UUID) (*models.Brand, error) {
	if brand, ok := f.brands[id]; ok && !brand.DeletedAt.Valid {
		return brand, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBrandStore) GetByIDIncludingDeleted(_ context.Context, id uuid.UUID) (*models.Brand, error) {
	if brand, ok := f.brands[id]; ok {
		return brand, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBrandStore) GetByNameIncludingDeleted(_ context.Context, name string) (*models.Brand, error) {
	for _, brand := range f.brands {
		if brand.Name == name {
			return brand, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBrandStore) Add(_ context.Context, brand *models.Brand) error {
	brand.ID = uuid.New()
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandStore) Remove(_ context.Context, brand *models.Brand) error {
	brand.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeBrandStore) Revive(_ context.Context, brand *models.Brand) error {
	brand.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakeBrandStore) ListAll(_ context.Context) ([]models.Brand, error) {
	var out []models.Brand
	for _, brand := range f.brands {
		if !brand.DeletedAt.Valid {
			out = append(out, *brand)
		}
	}
	return out, nil
}

type fakeMediaStore struct {
	media []*models.Media
}

func (f *fakeMediaStore) Add(_ context.Context, media *models.Media) error {
	media.ID = uuid.New()
	f.media = append(f.media, media)
	return nil
}

type fakeFeatureStore struct {
	features []*models.Feature
}

func (f *fakeFeatureStore) Add(_ context.Context, feature *models.Feature) error {
	feature.ID = uuid.New()
	f.features = append(f.features, feature)
	return nil
}

type fakeUnitOfWork struct {
	commits   int
	rollbacks int
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeUnitOfWork) Commit(_ context.Context) error                     { f.commits++; return nil }
func (f *fakeUnitOfWork) Rollback(_ context.Context)                         { f.rollbacks++ }
func (f *fakeUnitOfWork) Save(_ context.Context) error                       { return nil }
