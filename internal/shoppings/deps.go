// internal/shoppings/deps.go
package shoppings

import (
	"context"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type CartStore interface {
	ActiveForUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	Add(ctx context.Context, cart *models.Cart) error
	Update(ctx context.Context, cart *models.Cart) error
}

type CartItemStore interface {
	ActiveLine(ctx context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error)
	LineIncludingDeleted(ctx context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	Add(ctx context.Context, line *models.CartItem) error
	Update(ctx context.Context, line *models.CartItem) error
	Remove(ctx context.Context, line *models.CartItem) error
	Revive(ctx context.Context, line *models.CartItem, quantity int) error
}

type OrderStore interface {
	GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Add(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	ListForUser(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]models.Order, int64, error)
}

type OrderItemStore interface {
	Add(ctx context.Context, item *models.OrderItem) error
	ForOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
}

type OrderActivityStore interface {
	Add(ctx context.Context, activity *models.OrderActivity) error
	ForOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderActivity, error)
}

type BaseItemStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BaseItem, error)
}

type ProductStore interface {
	GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
}

// ItemResolver is the catalog module's resolution service, consumed here
// through the narrow surface the cart and order flows need.
type ItemResolver interface {
	Resolve(ctx context.Context, itemID uuid.UUID) (catalogs.Resolution, error)
	ResolveBase(ctx context.Context, baseItemID uuid.UUID) (catalogs.Resolution, error)
}
