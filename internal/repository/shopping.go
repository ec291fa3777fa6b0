// internal/repository/shopping.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type CartRepository struct {
	*Repository[models.Cart]
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{NewRepository[models.Cart](db)}
}

// ActiveForUser returns the user's single active cart with its live lines,
// ErrNotFound when the user has none.
func (r *CartRepository) ActiveForUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.conn(ctx).
		Preload("Items").
		Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &cart, nil
}

// GetWithItems loads a cart by id with its live lines only; soft-deleted
// lines are excluded by the DeletedAt clause GORM adds.
func (r *CartRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.conn(ctx).Preload("Items").First(&cart, "id = ?", id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &cart, nil
}

type CartItemRepository struct {
	*Repository[models.CartItem]
}

func NewCartItemRepository(db *gorm.DB) *CartItemRepository {
	return &CartItemRepository{NewRepository[models.CartItem](db)}
}

func (r *CartItemRepository) ActiveLine(ctx context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error) {
	return r.First(ctx, "cart_id = ? AND base_item_id = ?", cartID, baseItemID)
}

// LineIncludingDeleted also sees soft-deleted lines so re-adding a removed
// item revives the old row instead of inserting a duplicate.
func (r *CartItemRepository) LineIncludingDeleted(ctx context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error) {
	var line models.CartItem
	err := r.conn(ctx).Unscoped().
		Where("cart_id = ? AND base_item_id = ?", cartID, baseItemID).
		First(&line).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &line, nil
}

func (r *CartItemRepository) Revive(ctx context.Context, line *models.CartItem, quantity int) error {
	return r.conn(ctx).Unscoped().Model(line).
		Updates(map[string]interface{}{"deleted_at": nil, "quantity": quantity}).Error
}

type OrderRepository struct {
	*Repository[models.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{NewRepository[models.Order](db)}
}

func (r *OrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.conn(ctx).
		Preload("Items").Preload("CurrentActivity").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &order, nil
}

func (r *OrderRepository) ListForUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.Order, int64, error) {
	query := r.conn(ctx).Model(&models.Order{}).
		Preload("Items").Preload("CurrentActivity").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowedSortFields := []string{"created_at", "total_amount"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

type OrderItemRepository struct {
	*Repository[models.OrderItem]
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{NewRepository[models.OrderItem](db)}
}

func (r *OrderItemRepository) ForOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	return r.Find(ctx, "order_id = ?", orderID)
}

type OrderActivityRepository struct {
	*Repository[models.OrderActivity]
}

func NewOrderActivityRepository(db *gorm.DB) *OrderActivityRepository {
	return &OrderActivityRepository{NewRepository[models.OrderActivity](db)}
}

// ForOrder returns the append-only status history, oldest first.
func (r *OrderActivityRepository) ForOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderActivity, error) {
	var activities []models.OrderActivity
	err := r.conn(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
