package services

import (
	"context"

	"github.com/google/uuid"
	"pixsoft/internal/models/db_models"
)

// In-memory repository fakes shared by the service tests.

type fakeSaleProductRepo struct {
	products map[uuid.UUID]*db_models.SaleProduct
}

func newFakeSaleProductRepo() *fakeSaleProductRepo {
	return &fakeSaleProductRepo{products: make(map[uuid.UUID]*db_models.SaleProduct)}
}

func (f *fakeSaleProductRepo) add(p *db_models.SaleProduct) *db_models.SaleProduct {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeSaleProductRepo) Create(_ context.Context, product *db_models.SaleProduct) error {
	f.add(product)
	return nil
}

func (f *fakeSaleProductRepo) Update(_ context.Context, product *db_models.SaleProduct) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeSaleProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, uuid.MustParse(id))
	return nil
}

func (f *fakeSaleProductRepo) GetByID(_ context.Context, id string) (*db_models.SaleProduct, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.products[parsed], nil
}

func (f *fakeSaleProductRepo) List(_ context.Context, _, _ int, onlyAvailable bool) ([]db_models.SaleProduct, error) {
	var out []db_models.SaleProduct
	for _, p := range f.products {
		if onlyAvailable && p.StockQty <= 0 {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeSaleProductRepo) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	p := f.products[uuid.MustParse(id)]
	if p == nil || p.StockQty < qty {
		return false, nil
	}
	p.StockQty -= qty
	return true, nil
}

func (f *fakeSaleProductRepo) GetStock(_ context.Context, id string) (int, error) {
	p := f.products[uuid.MustParse(id)]
	if p == nil {
		return 0, nil
	}
	return p.StockQty, nil
}

type fakeRentalRepo struct {
	products map[uuid.UUID]*db_models.RentalProduct
	plans    map[uuid.UUID]*db_models.RentalPlan
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{
		products: make(map[uuid.UUID]*db_models.RentalProduct),
		plans:    make(map[uuid.UUID]*db_models.RentalPlan),
	}
}

func (f *fakeRentalRepo) addProduct(p *db_models.RentalProduct) *db_models.RentalProduct {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeRentalRepo) addPlan(p *db_models.RentalPlan) *db_models.RentalPlan {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.plans[p.ID] = p
	return p
}

func (f *fakeRentalRepo) Create(_ context.Context, product *db_models.RentalProduct) error {
	f.addProduct(product)
	return nil
}

func (f *fakeRentalRepo) Update(_ context.Context, product *db_models.RentalProduct) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeRentalRepo) GetByID(_ context.Context, id string) (*db_models.RentalProduct, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.products[parsed], nil
}

func (f *fakeRentalRepo) List(_ context.Context, _, _ int) ([]db_models.RentalProduct, error) {
	var out []db_models.RentalProduct
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRentalRepo) CreatePlan(_ context.Context, plan *db_models.RentalPlan) error {
	f.addPlan(plan)
	return nil
}

func (f *fakeRentalRepo) GetPlanByID(_ context.Context, id string) (*db_models.RentalPlan, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.plans[parsed], nil
}

func (f *fakeRentalRepo) GetPlanByProductAndPeriod(_ context.Context, productID string, period db_models.RentalPeriod) (*db_models.RentalPlan, error) {
	for _, plan := range f.plans {
		if plan.ProductID.String() == productID && plan.Period == period {
			return plan, nil
		}
	}
	return nil, nil
}

func (f *fakeRentalRepo) ListPlansByProduct(_ context.Context, productID string) ([]db_models.RentalPlan, error) {
	var out []db_models.RentalPlan
	for _, plan := range f.plans {
		if plan.ProductID.String() == productID {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) CreateCategory(_ context.Context, _ *db_models.RentalCategory) error {
	return nil
}

func (f *fakeRentalRepo) ListCategories(_ context.Context) ([]db_models.RentalCategory, error) {
	return nil, nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*db_models.Cart
	items map[uuid.UUID]*db_models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[uuid.UUID]*db_models.Cart),
		items: make(map[uuid.UUID]*db_models.CartItem),
	}
}

func (f *fakeCartRepo) GetOrCreateByAccount(_ context.Context, accountID uuid.UUID) (*db_models.Cart, error) {
	if cart, ok := f.carts[accountID]; ok {
		return cart, nil
	}
	cart := &db_models.Cart{AccountID: accountID}
	cart.ID = uuid.New()
	f.carts[accountID] = cart
	return cart, nil
}

func (f *fakeCartRepo) GetItems(_ context.Context, cartID uuid.UUID) ([]db_models.CartItem, error) {
	var out []db_models.CartItem
	for _, item := range f.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) GetItem(_ context.Context, cartID uuid.UUID, itemID string) (*db_models.CartItem, error) {
	parsed, err := uuid.Parse(itemID)
	if err != nil {
		return nil, nil
	}
	item := f.items[parsed]
	if item == nil || item.CartID != cartID {
		return nil, nil
	}
	return item, nil
}

func (f *fakeCartRepo) UpsertItem(_ context.Context, item *db_models.CartItem) error {
	for _, existing := range f.items {
		if existing.CartID != item.CartID ||
			existing.ProductKind != item.ProductKind ||
			existing.ProductID != item.ProductID {
			continue
		}
		if (existing.RentalPlanID == nil) != (item.RentalPlanID == nil) {
			continue
		}
		if existing.RentalPlanID != nil && *existing.RentalPlanID != *item.RentalPlanID {
			continue
		}
		existing.Quantity = item.Quantity
		*item = *existing
		return nil
	}
	item.ID = uuid.New()
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeCartRepo) UpdateItemQuantity(_ context.Context, itemID uuid.UUID, quantity int) error {
	if item, ok := f.items[itemID]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	delete(f.items, itemID)
	return nil
}

type fakeOrderRepo struct {
	orders     map[uuid.UUID]*db_models.Order
	cartRepo   *fakeCartRepo
	createErr  error
	lastCartID uuid.UUID
}

func newFakeOrderRepo(cartRepo *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*db_models.Order),
		cartRepo: cartRepo,
	}
}

func (f *fakeOrderRepo) CreateFromCart(_ context.Context, order *db_models.Order, cartID uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uuid.New()
	f.orders[order.ID] = order
	f.lastCartID = cartID
	for id, item := range f.cartRepo.items {
		if item.CartID == cartID {
			delete(f.cartRepo.items, id)
		}
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, accountID uuid.UUID, orderID string) (*db_models.Order, error) {
	parsed, err := uuid.Parse(orderID)
	if err != nil {
		return nil, nil
	}
	order := f.orders[parsed]
	if order == nil || order.AccountID != accountID {
		return nil, nil
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, order := range f.orders {
		if order.AccountID == accountID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID uuid.UUID, status db_models.OrderStatus) error {
	if order, ok := f.orders[orderID]; ok {
		order.Status = status
	}
	return nil
}
