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

type orderTestEnv struct {
	cartTestEnv
	orderService OrderServiceInterface
	orderRepo    *fakeOrderRepo
}

func newOrderTestEnv() *orderTestEnv {
	cartEnv := newCartTestEnv()
	orderRepo := newFakeOrderRepo(cartEnv.cartRepo)
	return &orderTestEnv{
		cartTestEnv:  *cartEnv,
		orderRepo:    orderRepo,
		orderService: NewOrderService(orderRepo, cartEnv.cartRepo, cartEnv.saleRepo, cartEnv.rentalRepo),
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	env := newOrderTestEnv()

	_, err := env.orderService.CreateOrderFromCart(context.Background(), env.accountID)
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
}

func TestCheckoutFreezesPricesAndClearsCart(t *testing.T) {
	env := newOrderTestEnv()
	product := env.saleProduct("25.00", 10)
	rentalProduct, plan := env.rentalProductWithPlan(db_models.PeriodMonthly, "150.00")

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    2,
	})
	require.NoError(t, err)

	planID := plan.ID.String()
	_, err = env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind:  "RENTAL",
		ProductID:    rentalProduct.ID.String(),
		Quantity:     1,
		RentalPlanID: &planID,
	})
	require.NoError(t, err)

	order, err := env.orderService.CreateOrderFromCart(context.Background(), env.accountID)
	require.NoError(t, err)

	assert.Equal(t, "PENDING", order.Status)
	assert.Equal(t, "200.00", order.TotalPrice)
	require.Len(t, order.Items, 2)

	// Raising the catalog price afterwards must not touch the stored order.
	product.Price = decimal.RequireFromString("999.00")
	stored, err := env.orderService.GetOrder(context.Background(), env.accountID, order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "200.00", stored.TotalPrice)

	cart, err := env.service.GetCart(context.Background(), env.accountID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	env := newOrderTestEnv()
	product := env.saleProduct("25.00", 10)

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	require.NoError(t, err)

	env.orderRepo.createErr = utils.ErrDatabaseError
	_, err = env.orderService.CreateOrderFromCart(context.Background(), env.accountID)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	cart, err := env.service.GetCart(context.Background(), env.accountID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestOrdersAreScopedToAccount(t *testing.T) {
	env := newOrderTestEnv()
	product := env.saleProduct("25.00", 10)

	_, err := env.service.AddItem(context.Background(), env.accountID, request_models.AddCartItemRequest{
		ProductKind: "SALE",
		ProductID:   product.ID.String(),
		Quantity:    1,
	})
	require.NoError(t, err)

	order, err := env.orderService.CreateOrderFromCart(context.Background(), env.accountID)
	require.NoError(t, err)

	_, err = env.orderService.GetOrder(context.Background(), uuid.New(), order.ID.String())
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)

	orders, err := env.orderService.ListOrders(context.Background(), env.accountID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
