// internal/users/fakes_test.go
package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email || user.Username == username {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Add(_ context.Context, user *models.User) error {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeFavoriteStore struct {
	favorites map[uuid.UUID]*models.Favorite
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{favorites: make(map[uuid.UUID]*models.Favorite)}
}

func (f *fakeFavoriteStore) GetByID(_ context.Context, id uuid.UUID) (*models.Favorite, error) {
	if favorite, ok := f.favorites[id]; ok && !favorite.DeletedAt.Valid {
		return favorite, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFavoriteStore) ForUserItem(_ context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error) {
	for _, favorite := range f.favorites {
		if favorite.UserID == userID && favorite.BaseItemID == baseItemID && !favorite.DeletedAt.Valid {
			return favorite, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFavoriteStore) ForUserItemIncludingDeleted(_ context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error) {
	for _, favorite := range f.favorites {
		if favorite.UserID == userID && favorite.BaseItemID == baseItemID {
			return favorite, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFavoriteStore) Add(_ context.Context, favorite *models.Favorite) error {
	favorite.ID = uuid.New()
	f.favorites[favorite.ID] = favorite
	return nil
}

func (f *fakeFavoriteStore) Remove(_ context.Context, favorite *models.Favorite) error {
	favorite.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeFavoriteStore) Revive(_ context.Context, favorite *models.Favorite) error {
	favorite.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakeFavoriteStore) ListForUser(_ context.Context, userID uuid.UUID, _ utils.PaginationParams) ([]models.Favorite, int64, error) {
	var out []models.Favorite
	for _, favorite := range f.favorites {
		if favorite.UserID == userID && !favorite.DeletedAt.Valid {
			out = append(out, *favorite)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBaseItemStore struct {
	items map[uuid.UUID]*models.BaseItem
}

func newFakeBaseItemStore() *fakeBaseItemStore {
	return &fakeBaseItemStore{items: make(map[uuid.UUID]*models.BaseItem)}
}

func (f *fakeBaseItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.BaseItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, repository.ErrNotFound
}

type fakeResolver struct {
	byItem map[uuid.UUID]catalogs.Resolution
	byBase map[uuid.UUID]catalogs.Resolution
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		byItem: make(map[uuid.UUID]catalogs.Resolution),
		byBase: make(map[uuid.UUID]catalogs.Resolution),
	}
}

func (f *fakeResolver) Resolve(_ context.Context, itemID uuid.UUID) (catalogs.Resolution, error) {
	if res, ok := f.byItem[itemID]; ok {
		return res, nil
	}
	return catalogs.Resolution{}, catalogs.ErrItemNotFound
}

func (f *fakeResolver) ResolveBase(_ context.Context, baseItemID uuid.UUID) (catalogs.Resolution, error) {
	if res, ok := f.byBase[baseItemID]; ok {
		return res, nil
	}
	return catalogs.Resolution{}, catalogs.ErrItemNotFound
}

// addProduct registers a resolvable product item and returns its ids.
func (f *fakeResolver) addProduct(baseItemID uuid.UUID) (itemID uuid.UUID) {
	itemID = uuid.New()
	res := catalogs.Resolution{Kind: models.ItemKindProduct, BaseItemID: baseItemID, ConcreteID: itemID}
	f.byItem[itemID] = res
	f.byBase[baseItemID] = res
	return itemID
}
