// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`

	Items []BaseItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

type Brand struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	LogoURL string `json:"logo_url" gorm:"size:500"`
}

// BaseItem is the common row for anything sellable. Every non-catalog module
// references a sellable through BaseItemID only, never through the
// Product/Service primary keys.
type BaseItem struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	CategoryID  uuid.UUID       `json:"category_id" gorm:"type:uuid;not null;index"`
	BrandID     *uuid.UUID      `json:"brand_id" gorm:"type:uuid;index"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
	Rating      decimal.Decimal `json:"rating" gorm:"type:numeric(3,2);default:0"`
	ReviewCount int64           `json:"review_count" gorm:"default:0"`

	// Relationships
	Category Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand    *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Owner    User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Media    []Media   `json:"media,omitempty" gorm:"foreignKey:BaseItemID"`
	Features []Feature `json:"features,omitempty" gorm:"foreignKey:BaseItemID"`
}

// Product specializes a BaseItem with stock-keeping fields. It carries its
// own primary key, distinct from BaseItemID.
type Product struct {
	BaseModel
	BaseItemID uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;uniqueIndex"`
	SKU        string    `json:"sku" gorm:"size:64;index"`
	StockCount int       `json:"stock_count" gorm:"default:0"`

	BaseItem BaseItem `json:"base_item,omitempty" gorm:"foreignKey:BaseItemID"`
}

// Service specializes a BaseItem with scheduling fields.
type Service struct {
	BaseModel
	BaseItemID      uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;uniqueIndex"`
	ServiceType     string    `json:"service_type" gorm:"size:100"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:0"`

	BaseItem BaseItem `json:"base_item,omitempty" gorm:"foreignKey:BaseItemID"`
}

type Media struct {
	BaseModel
	BaseItemID uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index"`
	URL        string    `json:"url" gorm:"size:500;not null"`
	Kind       MediaKind `json:"kind" gorm:"type:varchar(20);default:'image'"`
	SortOrder  int       `json:"sort_order" gorm:"default:0"`
}

type Feature struct {
	BaseModel
	BaseItemID uuid.UUID `json:"base_item_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Value      string    `json:"value" gorm:"size:255"`
}
