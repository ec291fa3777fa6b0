// internal/payments/offline.go
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfflineGateway stands in when no provider is configured. Every intent
// succeeds immediately, which also covers cash-on-delivery style methods
// where no money moves online.
type OfflineGateway struct{}

func NewOfflineGateway() *OfflineGateway {
	return &OfflineGateway{}
}

func (g *OfflineGateway) CreateIntent(_ context.Context, _ decimal.Decimal, _ string, _ map[string]string) (*Intent, error) {
	return &Intent{
		Ref:    fmt.Sprintf("offline_%s", uuid.NewString()),
		Status: IntentSucceeded,
	}, nil
}

func (g *OfflineGateway) IntentStatus(_ context.Context, _ string) (IntentStatus, error) {
	return IntentSucceeded, nil
}

func (g *OfflineGateway) Refund(_ context.Context, _ string, _ decimal.Decimal, _ string) error {
	return nil
}
