package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type OrderServiceInterface interface {
	// CreateOrderFromCart converts the account's cart into an order. Unit
	// prices are evaluated once here and frozen as price_at_purchase; the
	// cart's items are deleted in the same transaction as the order insert.
	CreateOrderFromCart(ctx context.Context, accountID uuid.UUID) (*response_models.OrderResponse, error)
	GetOrder(ctx context.Context, accountID uuid.UUID, orderID string) (*response_models.OrderResponse, error)
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error)
}

func NewOrderService(
	orderRepo repositories.IOrderRepository,
	cartRepo repositories.ICartRepository,
	saleRepo repositories.ISaleProductRepository,
	rentalRepo repositories.IRentalProductRepository,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		saleRepo:   saleRepo,
		rentalRepo: rentalRepo,
	}
}

type OrderService struct {
	orderRepo  repositories.IOrderRepository
	cartRepo   repositories.ICartRepository
	saleRepo   repositories.ISaleProductRepository
	rentalRepo repositories.IRentalProductRepository
}

func (s *OrderService) CreateOrderFromCart(ctx context.Context, accountID uuid.UUID) (*response_models.OrderResponse, error) {
	cart, err := s.cartRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	cartItems, err := s.cartRepo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(cartItems) == 0 {
		return nil, utils.ErrEmptyCart
	}

	order := &db_models.Order{
		AccountID: accountID,
		Status:    db_models.OrderStatusPending,
	}

	total := decimal.Zero
	for i := range cartItems {
		unitPrice, err := s.unitPriceFor(ctx, &cartItems[i])
		if err != nil {
			return nil, err
		}

		orderItem := db_models.OrderItem{
			ProductKind:     cartItems[i].ProductKind,
			ProductID:       cartItems[i].ProductID,
			Quantity:        cartItems[i].Quantity,
			RentalPlanID:    cartItems[i].RentalPlanID,
			PriceAtPurchase: unitPrice,
		}
		order.Items = append(order.Items, orderItem)
		total = total.Add(orderItem.LineTotal())
	}
	order.TotalPrice = total

	if err := s.orderRepo.CreateFromCart(ctx, order, cart.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toOrderResponse(order), nil
}

func (s *OrderService) GetOrder(ctx context.Context, accountID uuid.UUID, orderID string) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, accountID, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

func (s *OrderService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error) {
	orders, err := s.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *toOrderResponse(&orders[i]))
	}
	return result, nil
}

// unitPriceFor mirrors the cart's price resolution: plan base price for
// rental lines, product price for sale lines.
func (s *OrderService) unitPriceFor(ctx context.Context, item *db_models.CartItem) (decimal.Decimal, error) {
	if item.RentalPlanID != nil {
		plan, err := s.rentalRepo.GetPlanByID(ctx, item.RentalPlanID.String())
		if err != nil {
			return decimal.Zero, utils.ErrDatabaseError
		}
		if plan == nil {
			return decimal.Zero, utils.ErrPlanNotFound
		}
		return plan.BasePrice, nil
	}

	product, err := s.saleRepo.GetByID(ctx, item.ProductID.String())
	if err != nil {
		return decimal.Zero, utils.ErrDatabaseError
	}
	if product == nil {
		return decimal.Zero, utils.ErrProductNotFound
	}
	return product.Price, nil
}

func toOrderResponse(order *db_models.Order) *response_models.OrderResponse {
	resp := &response_models.OrderResponse{
		ID:         order.ID,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice.StringFixed(2),
		CreatedAt:  order.CreatedAt,
		Items:      make([]response_models.OrderItemResponse, 0, len(order.Items)),
	}
	for i := range order.Items {
		item := &order.Items[i]
		resp.Items = append(resp.Items, response_models.OrderItemResponse{
			ID:              item.ID,
			ProductKind:     string(item.ProductKind),
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			RentalPlanID:    item.RentalPlanID,
			PriceAtPurchase: item.PriceAtPurchase.StringFixed(2),
			LineTotal:       item.LineTotal().StringFixed(2),
		})
	}
	return resp
}
