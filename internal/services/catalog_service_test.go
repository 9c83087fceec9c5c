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

type fakeSaleCategoryRepo struct {
	categories map[uuid.UUID]*db_models.SaleCategory
}

func newFakeSaleCategoryRepo() *fakeSaleCategoryRepo {
	return &fakeSaleCategoryRepo{categories: make(map[uuid.UUID]*db_models.SaleCategory)}
}

func (f *fakeSaleCategoryRepo) Create(_ context.Context, category *db_models.SaleCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeSaleCategoryRepo) GetByID(_ context.Context, id string) (*db_models.SaleCategory, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.categories[parsed], nil
}

func (f *fakeSaleCategoryRepo) ListTopLevel(_ context.Context) ([]db_models.SaleCategory, error) {
	var out []db_models.SaleCategory
	for _, c := range f.categories {
		if c.ParentID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func newCatalogTestService() (CatalogServiceInterface, *fakeSaleProductRepo) {
	productRepo := newFakeSaleProductRepo()
	return NewCatalogService(productRepo, newFakeSaleCategoryRepo()), productRepo
}

func TestCreateProductRejectsMalformedPrice(t *testing.T) {
	service, _ := newCatalogTestService()

	for _, price := range []string{"not-a-number", "-5.00"} {
		_, err := service.CreateProduct(context.Background(), request_models.CreateSaleProductRequest{
			Name:        "Scanner",
			Description: "Desktop scanner",
			Sku:         "SCN-1",
			Price:       price,
			CategoryID:  uuid.NewString(),
		})
		assert.ErrorIs(t, err, utils.ErrInvalidPrice, "price %q", price)
	}
}

func TestUpdateProductRejectsMalformedPrice(t *testing.T) {
	service, repo := newCatalogTestService()
	product := repo.add(&db_models.SaleProduct{
		Name:     "Scanner",
		Price:    decimal.RequireFromString("120.00"),
		StockQty: 4,
	})

	bad := "12,50"
	_, err := service.UpdateProduct(context.Background(), product.ID.String(), request_models.UpdateSaleProductRequest{
		Price: &bad,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidPrice)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("120.00")))
}

func TestPurchaseDecrementsStock(t *testing.T) {
	service, repo := newCatalogTestService()
	product := repo.add(&db_models.SaleProduct{
		Name:     "Scanner",
		Price:    decimal.RequireFromString("120.00"),
		StockQty: 10,
	})

	result, err := service.Purchase(context.Background(), product.ID.String(), 3)
	require.NoError(t, err)

	assert.Equal(t, 7, result.NewStock)
	assert.Equal(t, 7, product.StockQty)
}

func TestPurchaseInsufficientStockReportsAvailable(t *testing.T) {
	service, repo := newCatalogTestService()
	product := repo.add(&db_models.SaleProduct{
		Name:     "Scanner",
		Price:    decimal.RequireFromString("120.00"),
		StockQty: 2,
	})

	_, err := service.Purchase(context.Background(), product.ID.String(), 5)
	require.Error(t, err)

	var stockErr *utils.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)

	// The failed attempt must not have touched the stock.
	assert.Equal(t, 2, product.StockQty)
}

func TestPurchaseExactRemainingStock(t *testing.T) {
	service, repo := newCatalogTestService()
	product := repo.add(&db_models.SaleProduct{
		Name:     "Scanner",
		Price:    decimal.RequireFromString("120.00"),
		StockQty: 4,
	})

	result, err := service.Purchase(context.Background(), product.ID.String(), 4)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewStock)

	_, err = service.Purchase(context.Background(), product.ID.String(), 1)
	var stockErr *utils.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
}

func TestPurchaseValidation(t *testing.T) {
	service, repo := newCatalogTestService()
	product := repo.add(&db_models.SaleProduct{
		Name:     "Scanner",
		Price:    decimal.RequireFromString("120.00"),
		StockQty: 4,
	})

	_, err := service.Purchase(context.Background(), product.ID.String(), 0)
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	_, err = service.Purchase(context.Background(), product.ID.String(), -2)
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	_, err = service.Purchase(context.Background(), uuid.NewString(), 1)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}
