package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/pkg/utils"
)

type cartTestEnv struct {
	service    CartServiceInterface
	cartRepo   *fakeCartRepo
	saleRepo   *fakeSaleProductRepo
	rentalRepo *fakeRentalRepo
	accountID  uuid.UUID
}

func newCartTestEnv() *cartTestEnv {
	cartRepo := newFakeCartRepo()
	saleRepo := newFakeSaleProductRepo()
	rentalRepo := newFakeRentalRepo()
	return &cartTestEnv{
		service:    NewCartService(cartRepo, saleRepo, rentalRepo),
		cartRepo:   cartRepo,
		saleRepo:   saleRepo,
		rentalRepo: rentalRepo,
		accountID:  uuid.New(),
	}
}

func (e *cartTestEnv) saleProduct(price string, stock int) *db_models.SaleProduct {
	return e.saleRepo.add(&db_models.SaleProduct{
		Name:     "Laser Printer",
		Price:    decimal.RequireFromString(price),
		StockQty: stock,
	})
}

func (e *cartTestEnv) rentalProductWithPlan(period db_models.RentalPeriod, basePrice string) (*db_models.RentalProduct, *db_models.RentalPlan) {
	product := e.rentalRepo.addProduct(&db_models.RentalProduct{Name: "Copier"})
	plan := e.rentalRepo.addPlan(&db_models.RentalPlan{
		ProductID: product.ID,
		Period:    period,
		BasePrice: decimal.RequireFromString(basePrice),
	})
	return product, plan
}

func TestAddSaleItem(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("99.90", 5)

	item, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, "SALE", item.ProductKind)
	assert.Equal(t, "99.90", item.UnitPrice)
	assert.Equal(t, "199.80", item.LineTotal)
	assert.Nil(t, item.RentalPlanID)
}

func TestAddSaleItemRejectsPlan(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("99.90", 5)
	planID := uuid.New().String()

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind:  "SALE",
		ProductID:    product.ID.String(),
		Quantity:     1,
		RentalPlanID: &planID,
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotAllowed)
}

func TestAddRentalItemRequiresPlan(t *testing.T) {
	env := newCartTestEnv()
	product, _ := env.rentalProductWithPlan(db_models.PeriodMonthly, "150.00")

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "RENTAL",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	assert.ErrorIs(t, err, utils.ErrPlanRequired)
}

func TestAddRentalItemRejectsForeignPlan(t *testing.T) {
	env := newCartTestEnv()
	product, _ := env.rentalProductWithPlan(db_models.PeriodMonthly, "150.00")
	_, otherPlan := env.rentalProductWithPlan(db_models.PeriodMonthly, "200.00")

	otherPlanID := otherPlan.ID.String()
	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind:  "RENTAL",
		ProductID:    product.ID.String(),
		Quantity:     1,
		RentalPlanID: &otherPlanID,
	})
	assert.ErrorIs(t, err, utils.ErrPlanProductMismatch)
}

func TestAddRentalItemUsesPlanPrice(t *testing.T) {
	env := newCartTestEnv()
	product, plan := env.rentalProductWithPlan(db_models.PeriodMonthly, "150.00")

	planID := plan.ID.String()
	item, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind:  "RENTAL",
		ProductID:    product.ID.String(),
		Quantity:     2,
		RentalPlanID: &planID,
	})
	require.NoError(t, err)

	assert.Equal(t, "150.00", item.UnitPrice)
	assert.Equal(t, "300.00", item.LineTotal)
	require.NotNil(t, item.RentalPlanID)
	assert.Equal(t, plan.ID, *item.RentalPlanID)
}

func TestAddItemValidatesKindAndQuantity(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("10.00", 5)

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    0,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	_, err = env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "LEASE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidProductKind)
}

func TestReAddingSameLineOverwritesQuantity(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("10.00", 5)

	req := request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	}
	_, err := env.service.AddItem(context.Background(), env.accountID, req)
	require.NoError(t, err)

	req.Quantity = 4
	_, err = env.service.AddItem(context.Background(), env.accountID, req)
	require.NoError(t, err)

	cart, err := env.service.GetCart(context.Background(), env.accountID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, "40.00", cart.TotalPrice)
}

func TestSameProductDifferentPlansAreSeparateLines(t *testing.T) {
	env := newCartTestEnv()
	product, monthly := env.rentalProductWithPlan(db_models.PeriodMonthly, "150.00")
	annual := env.rentalRepo.addPlan(&db_models.RentalPlan{
		ProductID: product.ID,
		Period:    db_models.PeriodAnnual,
		BasePrice: decimal.RequireFromString("1500.00"),
	})

	for _, plan := range []*db_models.RentalPlan{monthly, annual} {
		planID := plan.ID.String()
		_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
			ProductKind:  "RENTAL",
			ProductID:    product.ID.String(),
			Quantity:     1,
			RentalPlanID: &planID,
		})
		require.NoError(t, err)
	}

	cart, err := env.service.GetCart(context.Background(), env.accountID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "1650.00", cart.TotalPrice)
}

func TestUpdateAndRemoveItem(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("10.00", 5)

	item, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	require.NoError(t, err)

	updated, err := env.service.UpdateItemQuantity(context.Background(), env.accountID, item.ID.String(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	_, err = env.service.UpdateItemQuantity(context.Background(), env.accountID, item.ID.String(), 0)
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	require.NoError(t, env.service.RemoveItem(context.Background(), env.accountID, item.ID.String()))

	cart, err := env.service.GetCart(context.Background(), env.accountID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartIsScopedToAccount(t *testing.T) {
	env := newCartTestEnv()
	product := env.saleProduct("10.00", 5)

	item, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	require.NoError(t, err)

	otherAccount := uuid.New()
	_, err = env.service.UpdateItemQuantity(context.Background(), otherAccount, item.ID.String(), 2)
	assert.ErrorIs(t, err, utils.ErrCartItemNotFound)

	err = env.service.RemoveItem(context.Background(), otherAccount, item.ID.String())
	assert.ErrorIs(t, err, utils.ErrCartItemNotFound)
}
