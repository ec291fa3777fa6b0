// internal/payments/deps.go
package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/models"
)

// ItemResolver maps a BaseItemID back to its concrete product or service,
// so refunds can restore product stock.
type ItemResolver interface {
	ResolveBase(ctx context.Context, baseItemID uuid.UUID) (catalogs.Resolution, error)
}

type PaymentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ForOrder(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
	Add(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment) error
}

type PaymentMethodStore interface {
	GetByCode(ctx context.Context, code string) (*models.PaymentMethod, error)
	ListEnabled(ctx context.Context) ([]models.PaymentMethod, error)
}

type OrderStore interface {
	GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
}

type OrderActivityStore interface {
	Add(ctx context.Context, activity *models.OrderActivity) error
}

// Intent is the provider-side view of a payment attempt.
type Intent struct {
	Ref          string
	ClientSecret string
	Status       IntentStatus
}

type IntentStatus string

const (
	IntentPending   IntentStatus = "pending"
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
)

// Gateway wraps the payment provider. Handlers only see this surface, so
// tests swap in a fake instead of hitting Stripe.
type Gateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*Intent, error)
	IntentStatus(ctx context.Context, ref string) (IntentStatus, error)
	Refund(ctx context.Context, ref string, amount decimal.Decimal, reason string) error
}
