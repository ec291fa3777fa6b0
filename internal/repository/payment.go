// internal/repository/payment.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/models"
)

type PaymentRepository struct {
	*Repository[models.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{NewRepository[models.Payment](db)}
}

func (r *PaymentRepository) ForOrder(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.conn(ctx).
		Preload("Method").
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByProviderRef(ctx context.Context, ref string) (*models.Payment, error) {
	return r.First(ctx, "provider_ref = ?", ref)
}

type PaymentMethodRepository struct {
	*Repository[models.PaymentMethod]
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{NewRepository[models.PaymentMethod](db)}
}

func (r *PaymentMethodRepository) GetByCode(ctx context.Context, code string) (*models.PaymentMethod, error) {
	return r.First(ctx, "code = ?", code)
}

func (r *PaymentMethodRepository) ListEnabled(ctx context.Context) ([]models.PaymentMethod, error) {
	return r.Find(ctx, "enabled = ?", true)
}
