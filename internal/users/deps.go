// internal/users/deps.go
package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type FavoriteStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Favorite, error)
	ForUserItem(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error)
	ForUserItemIncludingDeleted(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error)
	Add(ctx context.Context, favorite *models.Favorite) error
	Remove(ctx context.Context, favorite *models.Favorite) error
	Revive(ctx context.Context, favorite *models.Favorite) error
	ListForUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.Favorite, int64, error)
}

type BaseItemStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BaseItem, error)
}

type ItemResolver interface {
	Resolve(ctx context.Context, itemID uuid.UUID) (catalogs.Resolution, error)
	ResolveBase(ctx context.Context, baseItemID uuid.UUID) (catalogs.Resolution, error)
}
