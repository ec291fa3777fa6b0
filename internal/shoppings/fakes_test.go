// internal/shoppings/fakes_test.go
package shoppings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/events"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

type fakeCartStore struct {
	carts map[uuid.UUID]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uuid.UUID]*models.Cart)}
}

func (f *fakeCartStore) ActiveForUser(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID == userID && cart.Status == models.CartStatusActive {
			return cart, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCartStore) GetWithItems(_ context.Context, id uuid.UUID) (*models.Cart, error) {
	if cart, ok := f.carts[id]; ok {
		return cart, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCartStore) Add(_ context.Context, cart *models.Cart) error {
	cart.ID = uuid.New()
	f.carts[cart.ID] = cart
	return nil
}

func (f *fakeCartStore) Update(_ context.Context, cart *models.Cart) error {
	f.carts[cart.ID] = cart
	return nil
}

type fakeCartItemStore struct {
	lines  map[uuid.UUID]*models.CartItem
	addErr error
}

func newFakeCartItemStore() *fakeCartItemStore {
	return &fakeCartItemStore{lines: make(map[uuid.UUID]*models.CartItem)}
}

func (f *fakeCartItemStore) ActiveLine(_ context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error) {
	for _, line := range f.lines {
		if line.CartID == cartID && line.BaseItemID == baseItemID && !line.DeletedAt.Valid {
			return line, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCartItemStore) LineIncludingDeleted(_ context.Context, cartID, baseItemID uuid.UUID) (*models.CartItem, error) {
	for _, line := range f.lines {
		if line.CartID == cartID && line.BaseItemID == baseItemID {
			return line, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCartItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.CartItem, error) {
	if line, ok := f.lines[id]; ok && !line.DeletedAt.Valid {
		return line, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCartItemStore) Add(_ context.Context, line *models.CartItem) error {
	if f.addErr != nil {
		return f.addErr
	}
	line.ID = uuid.New()
	f.lines[line.ID] = line
	return nil
}

func (f *fakeCartItemStore) Update(_ context.Context, line *models.CartItem) error {
	f.lines[line.ID] = line
	return nil
}

func (f *fakeCartItemStore) Remove(_ context.Context, line *models.CartItem) error {
	line.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (f *fakeCartItemStore) Revive(_ context.Context, line *models.CartItem, quantity int) error {
	line.DeletedAt = gorm.DeletedAt{}
	line.Quantity = quantity
	return nil
}

type fakeOrderStore struct {
	orders map[uuid.UUID]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uuid.UUID]*models.Order)}
}

func (f *fakeOrderStore) GetWithItems(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if order, ok := f.orders[id]; ok {
		return order, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderStore) Add(_ context.Context, order *models.Order) error {
	order.ID = uuid.New()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderStore) Update(_ context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderStore) ListForUser(_ context.Context, userID uuid.UUID, _ utils.PaginationParams) ([]models.Order, int64, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, int64(len(out)), nil
}

type fakeOrderItemStore struct {
	items []*models.OrderItem
}

func (f *fakeOrderItemStore) Add(_ context.Context, item *models.OrderItem) error {
	item.ID = uuid.New()
	f.items = append(f.items, item)
	return nil
}

func (f *fakeOrderItemStore) ForOrder(_ context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var out []models.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeOrderActivityStore struct {
	activities []*models.OrderActivity
}

func (f *fakeOrderActivityStore) Add(_ context.Context, activity *models.OrderActivity) error {
	activity.ID = uuid.New()
	activity.CreatedAt = time.Now()
	f.activities = append(f.activities, activity)
	return nil
}

func (f *fakeOrderActivityStore) ForOrder(_ context.Context, orderID uuid.UUID) ([]models.OrderActivity, error) {
	var out []models.OrderActivity
	for _, activity := range f.activities {
		if activity.OrderID == orderID {
			out = append(out, *activity)
		}
	}
	return out, nil
}

type fakeBaseItemStore struct {
	items map[uuid.UUID]*models.BaseItem
}

func newFakeBaseItemStore() *fakeBaseItemStore {
	return &fakeBaseItemStore{items: make(map[uuid.UUID]*models.BaseItem)}
}

func (f *fakeBaseItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.BaseItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, repository.ErrNotFound
}

type fakeProductStore struct {
	byBase map[uuid.UUID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byBase: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProductStore) GetByBaseItemID(_ context.Context, baseItemID uuid.UUID) (*models.Product, error) {
	if product, ok := f.byBase[baseItemID]; ok {
		return product, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductStore) Update(_ context.Context, product *models.Product) error {
	f.byBase[product.BaseItemID] = product
	return nil
}

type fakeResolver struct {
	byItem map[uuid.UUID]catalogs.Resolution
	byBase map[uuid.UUID]catalogs.Resolution
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		byItem: make(map[uuid.UUID]catalogs.Resolution),
		byBase: make(map[uuid.UUID]catalogs.Resolution),
	}
}

func (f *fakeResolver) Resolve(_ context.Context, itemID uuid.UUID) (catalogs.Resolution, error) {
	if res, ok := f.byItem[itemID]; ok {
		return res, nil
	}
	return catalogs.Resolution{}, catalogs.ErrItemNotFound
}

func (f *fakeResolver) ResolveBase(_ context.Context, baseItemID uuid.UUID) (catalogs.Resolution, error) {
	if res, ok := f.byBase[baseItemID]; ok {
		return res, nil
	}
	return catalogs.Resolution{}, catalogs.ErrItemNotFound
}

// fakeUnitOfWork counts lifecycle calls; there is no real transaction, so the
// stores observe writes immediately either way.
type fakeUnitOfWork struct {
	begins    int
	commits   int
	rollbacks int
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	f.begins++
	return ctx, nil
}

func (f *fakeUnitOfWork) Commit(_ context.Context) error {
	f.commits++
	return nil
}

func (f *fakeUnitOfWork) Rollback(_ context.Context) {
	f.rollbacks++
}

func (f *fakeUnitOfWork) Save(_ context.Context) error {
	return nil
}

type recordingPublisher struct {
	events []events.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(event events.OrderEvent) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Close() error { return nil }

// catalogFixture wires one purchasable item through the resolver, base item
// and product stores.
type catalogFixture struct {
	items    *fakeBaseItemStore
	products *fakeProductStore
	resolver *fakeResolver
}

func newCatalogFixture() *catalogFixture {
	return &catalogFixture{
		items:    newFakeBaseItemStore(),
		products: newFakeProductStore(),
		resolver: newFakeResolver(),
	}
}

func (c *catalogFixture) addProduct(price string, stock int) (itemID, baseItemID uuid.UUID) {
	base := &models.BaseItem{
		Name:        "product",
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	base.ID = uuid.New()
	c.items.items[base.ID] = base

	product := &models.Product{BaseItemID: base.ID, StockCount: stock}
	product.ID = uuid.New()
	c.products.byBase[base.ID] = product

	res := catalogs.Resolution{Kind: models.ItemKindProduct, BaseItemID: base.ID, ConcreteID: product.ID}
	c.resolver.byItem[product.ID] = res
	c.resolver.byBase[base.ID] = res
	return product.ID, base.ID
}

func (c *catalogFixture) addService(price string) (itemID, baseItemID uuid.UUID) {
	base := &models.BaseItem{
		Name:        "service",
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	base.ID = uuid.New()
	c.items.items[base.ID] = base

	serviceID := uuid.New()
	res := catalogs.Resolution{Kind: models.ItemKindService, BaseItemID: base.ID, ConcreteID: serviceID}
	c.resolver.byItem[serviceID] = res
	c.resolver.byBase[base.ID] = res
	return serviceID, base.ID
}
