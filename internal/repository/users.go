// internal/repository/users.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewRepository[models.User](db)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.First(ctx, "email = ?", email)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.First(ctx, "phone = ?", phone)
}

func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	return r.First(ctx, "email = ? OR username = ?", email, username)
}

type FavoriteRepository struct {
	*Repository[models.Favorite]
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{NewRepository[models.Favorite](db)}
}

func (r *FavoriteRepository) ForUserItem(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error) {
	return r.First(ctx, "user_id = ? AND base_item_id = ?", userID, baseItemID)
}

// ForUserItemIncludingDeleted also sees soft-deleted rows so a re-add can
// revive them under the unique (user, item) index.
func (r *FavoriteRepository) ForUserItemIncludingDeleted(ctx context.Context, userID, baseItemID uuid.UUID) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.conn(ctx).Unscoped().
		Where("user_id = ? AND base_item_id = ?", userID, baseItemID).
		First(&favorite).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Revive(ctx context.Context, favorite *models.Favorite) error {
	return r.conn(ctx).Unscoped().Model(favorite).Update("deleted_at", nil).Error
}

func (r *FavoriteRepository) ListForUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.Favorite, int64, error) {
	query := r.conn(ctx).Model(&models.Favorite{}).
		Preload("BaseItem").Preload("BaseItem.Media").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var favorites []models.Favorite
	if err := query.Find(&favorites).Error; err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}
