// internal/catalogs/brands_test.go
package catalogs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooqhub/sooq-backend/internal/results"
)

func TestCreateBrand(t *testing.T) {
	brands := newFakeBrandStore()
	h := NewCreateBrandHandler(brands)

	res := h.Handle(context.Background(), CreateBrandCommand{Name: "Nour", LogoURL: "https://cdn.example.com/nour.png"})

	require.True(t, res.Success)
	assert.Equal(t, "Nour", res.Data.Name)
}

func TestCreateBrandDuplicate(t *testing.T) {
	brands := newFakeBrandStore()
	h := NewCreateBrandHandler(brands)

	require.True(t, h.Handle(context.Background(), CreateBrandCommand{Name: "Nour"}).Success)

	res := h.Handle(context.Background(), CreateBrandCommand{Name: "Nour"})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeAlreadyExists, res.ErrorType)
}

func TestCreateBrandRevivesDeleted(t *testing.T) {
	brands := newFakeBrandStore()
	create := NewCreateBrandHandler(brands)
	remove := NewDeleteBrandHandler(brands)

	first := create.Handle(context.Background(), CreateBrandCommand{Name: "Nour"})
	require.True(t, first.Success)
	require.True(t, remove.Handle(context.Background(), DeleteBrandCommand{BrandID: first.Data.ID}).Success)

	second := create.Handle(context.Background(), CreateBrandCommand{Name: "Nour"})

	require.True(t, second.Success)
	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.False(t, second.Data.DeletedAt.Valid)
}

func TestDeleteBrandTwice(t *testing.T) {
	brands := newFakeBrandStore()
	create := NewCreateBrandHandler(brands)
	remove := NewDeleteBrandHandler(brands)

	created := create.Handle(context.Background(), CreateBrandCommand{Name: "Nour"})
	require.True(t, created.Success)
	require.True(t, remove.Handle(context.Background(), DeleteBrandCommand{BrandID: created.Data.ID}).Success)

	res := remove.Handle(context.Background(), DeleteBrandCommand{BrandID: created.Data.ID})

	assert.Equal(t, results.StatusFailed, res.Status)
	assert.Equal(t, results.ErrTypeAlreadyDeleted, res.ErrorType)
}

func TestDeleteBrandMissing(t *testing.T) {
	h := NewDeleteBrandHandler(newFakeBrandStore())

	res := h.Handle(context.Background(), DeleteBrandCommand{BrandID: uuid.New()})

	assert.Equal(t, results.StatusNotFound, res.Status)
}

func TestListBrandsExcludesDeleted(t *testing.T) {
	brands := newFakeBrandStore()
	create := NewCreateBrandHandler(brands)
	remove := NewDeleteBrandHandler(brands)

	kept := create.Handle(context.Background(), CreateBrandCommand{Name: "Nour"})
	require.True(t, kept.Success)
	gone := create.Handle(context.Background(), CreateBrandCommand{Name: "Cedar"})
	require.True(t, gone.Success)
	require.True(t, remove.Handle(context.Background(), DeleteBrandCommand{BrandID: gone.Data.ID}).Success)

	h := NewListBrandsHandler(brands)
	res := h.Handle(context.Background(), ListBrandsQuery{})

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Nour", res.Data[0].Name)
}
