// internal/catalogs/resolver_test.go
package catalogs

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
)

type fakeProductStore struct {
	byID   map[uuid.UUID]*models.Product
	byBase map[uuid.UUID]*models.Product
	err    error
}

func (f *fakeProductStore) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) GetByBaseItemID(_ context.Context, baseItemID uuid.UUID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byBase[baseItemID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

type fakeServiceStore struct {
	byID   map[uuid.UUID]*models.Service
	byBase map[uuid.UUID]*models.Service
	err    error
}

func (f *fakeServiceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeServiceStore) GetByBaseItemID(_ context.Context, baseItemID uuid.UUID) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byBase[baseItemID]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func newProduct(baseItemID uuid.UUID) *models.Product {
	p := &models.Product{BaseItemID: baseItemID}
	p.ID = uuid.New()
	return p
}

func newService(baseItemID uuid.UUID) *models.Service {
	s := &models.Service{BaseItemID: baseItemID}
	s.ID = uuid.New()
	return s
}

func TestResolveFindsProductFirst(t *testing.T) {
	baseItemID := uuid.New()
	product := newProduct(baseItemID)
	products := &fakeProductStore{byID: map[uuid.UUID]*models.Product{product.ID: product}}
	services := &fakeServiceStore{}
	r := NewItemResolver(products, services)

	res, err := r.Resolve(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, models.ItemKindProduct, res.Kind)
	assert.Equal(t, baseItemID, res.BaseItemID)
	assert.Equal(t, product.ID, res.ConcreteID)
}

func TestResolveFallsThroughToService(t *testing.T) {
	baseItemID := uuid.New()
	service := newService(baseItemID)
	products := &fakeProductStore{}
	services := &fakeServiceStore{byID: map[uuid.UUID]*models.Service{service.ID: service}}
	r := NewItemResolver(products, services)

	res, err := r.Resolve(context.Background(), service.ID)

	require.NoError(t, err)
	assert.Equal(t, models.ItemKindService, res.Kind)
	assert.Equal(t, baseItemID, res.BaseItemID)
	assert.Equal(t, service.ID, res.ConcreteID)
}

func TestResolveUnknownIDReturnsSentinel(t *testing.T) {
	r := NewItemResolver(&fakeProductStore{}, &fakeServiceStore{})

	_, err := r.Resolve(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestResolveStoreFailureDoesNotFallThrough(t *testing.T) {
	dbErr := errors.New("connection reset")
	products := &fakeProductStore{err: dbErr}
	baseItemID := uuid.New()
	service := newService(baseItemID)
	services := &fakeServiceStore{byID: map[uuid.UUID]*models.Service{service.ID: service}}
	r := NewItemResolver(products, services)

	// The service table would have answered, but a failed product lookup
	// must abort, not mask.
	_, err := r.Resolve(context.Background(), service.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestResolveBaseFindsProduct(t *testing.T) {
	baseItemID := uuid.New()
	product := newProduct(baseItemID)
	products := &fakeProductStore{byBase: map[uuid.UUID]*models.Product{baseItemID: product}}
	r := NewItemResolver(products, &fakeServiceStore{})

	res, err := r.ResolveBase(context.Background(), baseItemID)

	require.NoError(t, err)
	assert.Equal(t, models.ItemKindProduct, res.Kind)
	assert.Equal(t, product.ID, res.ConcreteID)
}

func TestResolveBaseFallsThroughToService(t *testing.T) {
	baseItemID := uuid.New()
	service := newService(baseItemID)
	services := &fakeServiceStore{byBase: map[uuid.UUID]*models.Service{baseItemID: service}}
	r := NewItemResolver(&fakeProductStore{}, services)

	res, err := r.ResolveBase(context.Background(), baseItemID)

	require.NoError(t, err)
	assert.Equal(t, models.ItemKindService, res.Kind)
}

func TestResolveBaseUnknown(t *testing.T) {
	r := NewItemResolver(&fakeProductStore{}, &fakeServiceStore{})

	_, err := r.ResolveBase(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrItemNotFound)
}
