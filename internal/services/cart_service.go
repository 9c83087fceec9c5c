package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type CartServiceInterface interface {
	GetCart(ctx context.Context, accountID uuid.UUID) (*response_models.CartResponse, error)
	AddItem(ctx context.Context, accountID uuid.UUID, req request_models.AddCartItemRequest) (*response_models.CartItemResponse, error)
	UpdateItemQuantity(ctx context.Context, accountID uuid.UUID, itemID string, quantity int) (*response_models.CartItemResponse, error)
	RemoveItem(ctx context.Context, accountID uuid.UUID, itemID string) error
}

func NewCartService(
	cartRepo repositories.ICartRepository,
	saleRepo repositories.ISaleProductRepository,
	rentalRepo repositories.IRentalProductRepository,
) CartServiceInterface {
	return &CartService{
		cartRepo:   cartRepo,
		saleRepo:   saleRepo,
		rentalRepo: rentalRepo,
	}
}

type CartService struct {
	cartRepo   repositories.ICartRepository
	saleRepo   repositories.ISaleProductRepository
	rentalRepo repositories.IRentalProductRepository
}

// resolvedLine is a cart line with its product looked up through the kind tag
// and its unit price settled: the plan's base price for rentals, the product
// price for sales. Maintenance pricing never enters here; that belongs to the
// standalone quote engine.
type resolvedLine struct {
	productName string
	unitPrice   decimal.Decimal
}

func (s *CartService) GetCart(ctx context.Context, accountID uuid.UUID) (*response_models.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items, err := s.cartRepo.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.CartResponse{
		ID:    cart.ID,
		Items: make([]response_models.CartItemResponse, 0, len(items)),
	}

	total := decimal.Zero
	for i := range items {
		line, err := s.resolveLine(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		itemResp := toCartItemResponse(&items[i], line)
		resp.Items = append(resp.Items, *itemResp)
		total = total.Add(line.unitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}
	resp.TotalPrice = total.StringFixed(2)

	return resp, nil
}

func (s *CartService) AddItem(ctx context.Context, accountID uuid.UUID, req request_models.AddCartItemRequest) (*response_models.CartItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, utils.ErrInvalidQuantity
	}

	kind := db_models.ProductKind(req.ProductKind)
	if !kind.Valid() {
		return nil, utils.ErrInvalidProductKind
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}

	item := &db_models.CartItem{
		ProductKind: kind,
		ProductID:   productID,
		Quantity:    req.Quantity,
	}

	switch kind {
	case db_models.KindSale:
		if req.RentalPlanID != nil {
			return nil, utils.ErrPlanNotAllowed
		}
		product, err := s.saleRepo.GetByID(ctx, productID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if product == nil {
			return nil, utils.ErrProductNotFound
		}

	case db_models.KindRental:
		if req.RentalPlanID == nil {
			return nil, utils.ErrPlanRequired
		}
		product, err := s.rentalRepo.GetByID(ctx, productID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if product == nil {
			return nil, utils.ErrProductNotFound
		}
		plan, err := s.rentalRepo.GetPlanByID(ctx, *req.RentalPlanID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if plan == nil {
			return nil, utils.ErrPlanNotFound
		}
		if plan.ProductID != productID {
			return nil, utils.ErrPlanProductMismatch
		}
		planID := plan.ID
		item.RentalPlanID = &planID
	}

	cart, err := s.cartRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	item.CartID = cart.ID

	if err := s.cartRepo.UpsertItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	line, err := s.resolveLine(ctx, item)
	if err != nil {
		return nil, err
	}
	return toCartItemResponse(item, line), nil
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, accountID uuid.UUID, itemID string, quantity int) (*response_models.CartItemResponse, error) {
	if quantity <= 0 {
		return nil, utils.ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	item, err := s.cartRepo.GetItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	item.Quantity = quantity

	line, err := s.resolveLine(ctx, item)
	if err != nil {
		return nil, err
	}
	return toCartItemResponse(item, line), nil
}

func (s *CartService) RemoveItem(ctx context.Context, accountID uuid.UUID, itemID string) error {
	cart, err := s.cartRepo.GetOrCreateByAccount(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	item, err := s.cartRepo.GetItem(ctx, cart.ID, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrCartItemNotFound
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CartService) resolveLine(ctx context.Context, item *db_models.CartItem) (resolvedLine, error) {
	if item.RentalPlanID != nil {
		plan, err := s.rentalRepo.GetPlanByID(ctx, item.RentalPlanID.String())
		if err != nil {
			return resolvedLine{}, utils.ErrDatabaseError
		}
		if plan == nil {
			return resolvedLine{}, utils.ErrPlanNotFound
		}
		product, err := s.rentalRepo.GetByID(ctx, item.ProductID.String())
		if err != nil {
			return resolvedLine{}, utils.ErrDatabaseError
		}
		if product == nil {
			return resolvedLine{}, utils.ErrProductNotFound
		}
		return resolvedLine{productName: product.Name, unitPrice: plan.BasePrice}, nil
	}

	product, err := s.saleRepo.GetByID(ctx, item.ProductID.String())
	if err != nil {
		return resolvedLine{}, utils.ErrDatabaseError
	}
	if product == nil {
		return resolvedLine{}, utils.ErrProductNotFound
	}
	return resolvedLine{productName: product.Name, unitPrice: product.Price}, nil
}

func toCartItemResponse(item *db_models.CartItem, line resolvedLine) *response_models.CartItemResponse {
	lineTotal := line.unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return &response_models.CartItemResponse{
		ID:           item.ID,
		ProductKind:  string(item.ProductKind),
		ProductID:    item.ProductID,
		ProductName:  line.productName,
		Quantity:     item.Quantity,
		RentalPlanID: item.RentalPlanID,
		UnitPrice:    line.unitPrice.StringFixed(2),
		LineTotal:    lineTotal.StringFixed(2),
	}
}
