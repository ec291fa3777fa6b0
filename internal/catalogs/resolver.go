// internal/catalogs/resolver.go
package catalogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
)

// ErrItemNotFound means the identifier matched neither the product nor the
// service table. A store failure is returned as-is and is never collapsed
// into this sentinel.
var ErrItemNotFound = errors.New("item not found")

// Resolution is the outcome of resolving an opaque item identifier.
type Resolution struct {
	Kind       models.ItemKind `json:"kind"`
	BaseItemID uuid.UUID       `json:"base_item_id"`
	ConcreteID uuid.UUID       `json:"concrete_id"`
}

type resolverProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Product, error)
}

type resolverServiceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetByBaseItemID(ctx context.Context, baseItemID uuid.UUID) (*models.Service, error)
}

// ItemResolver answers "is this identifier a product or a service, and what
// is its canonical BaseItemID". Every module that accepts an opaque ItemId
// goes through this one service; the two-step lookup lives nowhere else.
type ItemResolver struct {
	products resolverProductStore
	services resolverServiceStore
}

func NewItemResolver(products resolverProductStore, services resolverServiceStore) *ItemResolver {
	return &ItemResolver{products: products, services: services}
}

// Resolve tries the product table first, then the service table. Only a
// miss falls through; a store error aborts, so callers can tell "not there"
// from "could not look".
func (r *ItemResolver) Resolve(ctx context.Context, itemID uuid.UUID) (Resolution, error) {
	product, err := r.products.GetByID(ctx, itemID)
	if err == nil {
		return Resolution{Kind: models.ItemKindProduct, BaseItemID: product.BaseItemID, ConcreteID: product.ID}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Resolution{}, fmt.Errorf("product lookup: %w", err)
	}

	service, err := r.services.GetByID(ctx, itemID)
	if err == nil {
		return Resolution{Kind: models.ItemKindService, BaseItemID: service.BaseItemID, ConcreteID: service.ID}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Resolution{}, fmt.Errorf("service lookup: %w", err)
	}

	return Resolution{}, ErrItemNotFound
}

// ResolveBase is the reverse direction: given the canonical BaseItemID,
// find the concrete specialization row and its kind discriminator.
func (r *ItemResolver) ResolveBase(ctx context.Context, baseItemID uuid.UUID) (Resolution, error) {
	product, err := r.products.GetByBaseItemID(ctx, baseItemID)
	if err == nil {
		return Resolution{Kind: models.ItemKindProduct, BaseItemID: product.BaseItemID, ConcreteID: product.ID}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Resolution{}, fmt.Errorf("product lookup: %w", err)
	}

	service, err := r.services.GetByBaseItemID(ctx, baseItemID)
	if err == nil {
		return Resolution{Kind: models.ItemKindService, BaseItemID: service.BaseItemID, ConcreteID: service.ID}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return Resolution{}, fmt.Errorf("service lookup: %w", err)
	}

	return Resolution{}, ErrItemNotFound
}
