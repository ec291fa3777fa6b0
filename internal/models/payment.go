// internal/models/payment.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod struct {
	BaseModel
	Code        string `json:"code" gorm:"uniqueIndex;size:50;not null"`
	DisplayName string `json:"display_name" gorm:"size:100;not null"`
	Enabled     bool   `json:"enabled" gorm:"default:true"`
}

type Payment struct {
	BaseModel
	OrderID         uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" gorm:"type:uuid;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Status          PaymentStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ProviderRef     string          `json:"provider_ref" gorm:"size:255"`
	ProcessedAt     *time.Time      `json:"processed_at"`
	RefundedAt      *time.Time      `json:"refunded_at"`
	RefundReason    string          `json:"refund_reason,omitempty" gorm:"type:text"`

	Order  Order         `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Method PaymentMethod `json:"method,omitempty" gorm:"foreignKey:PaymentMethodID"`
}
