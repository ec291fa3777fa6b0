// internal/models/shopping.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds a user's pending purchases. A user has at most one active cart;
// checkout flips the status to checked_out rather than deleting the row.
type Cart struct {
	BaseModel
	UserID uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Status CartStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`

	User  User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

// CartItem lines are soft-deleted (DeletedAt), never hard-removed, so cart
// history survives quantity-zero updates and checkout.
type CartItem struct {
	BaseModel
	CartID     uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	BaseItemID uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null"`

	Cart     Cart     `json:"cart,omitempty" gorm:"foreignKey:CartID"`
	BaseItem BaseItem `json:"base_item,omitempty" gorm:"foreignKey:BaseItemID"`
}

// Order does not carry a status column. Its current status is resolved
// through OrderActivityID, a pointer to the latest row of an append-only
// activity log.
type Order struct {
	BaseModel
	UserID          uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	CartID          uuid.UUID       `json:"cart_id" gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	OrderActivityID *uuid.UUID      `json:"order_activity_id" gorm:"type:uuid"`

	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Activities      []OrderActivity `json:"activities,omitempty" gorm:"foreignKey:OrderID"`
	CurrentActivity *OrderActivity  `json:"current_activity,omitempty" gorm:"foreignKey:OrderActivityID"`
}

type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	BaseItemID uuid.UUID       `json:"base_item_id" gorm:"type:uuid;not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	LineTotal  decimal.Decimal `json:"line_total" gorm:"type:numeric(12,2);not null"`

	Order    Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	BaseItem BaseItem `json:"base_item,omitempty" gorm:"foreignKey:BaseItemID"`
}

// OrderActivity rows are append-only; status transitions insert a new row
// and repoint Order.OrderActivityID.
type OrderActivity struct {
	BaseModel
	OrderID uuid.UUID   `json:"order_id" gorm:"type:uuid;not null;index"`
	Status  OrderStatus `json:"status" gorm:"type:varchar(20);not null"`
	Note    string      `json:"note" gorm:"size:255"`
}
