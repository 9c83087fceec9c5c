package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type LeasingServiceInterface interface {
	CreateCategory(ctx context.Context, req request_models.CreateRentalCategoryRequest) error
	ListCategories(ctx context.Context) ([]db_models.RentalCategory, error)

	CreateProduct(ctx context.Context, req request_models.CreateRentalProductRequest) (*response_models.RentalProductResponse, error)
	GetProduct(ctx context.Context, id string) (*response_models.RentalProductResponse, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]response_models.RentalProductResponse, error)

	CreatePlan(ctx context.Context, req request_models.CreateRentalPlanRequest) (*response_models.RentalPlanResponse, error)
	ListPlans(ctx context.Context, productID string) ([]response_models.RentalPlanResponse, error)

	// Quote runs the quote engine against the plan matching the requested
	// period. When the product has no such plan the error wraps the periods
	// it does offer.
	Quote(ctx context.Context, req request_models.QuoteRequest) (*response_models.QuoteResponse, error)

	CreateContract(ctx context.Context, customerID uuid.UUID, req request_models.CreateContractRequest) (*response_models.RentalContractResponse, error)
	GetContract(ctx context.Context, id string) (*response_models.RentalContractResponse, error)
	ListContracts(ctx context.Context, customerID uuid.UUID) ([]response_models.RentalContractResponse, error)
	UpdateContractStatus(ctx context.Context, id string, status db_models.ContractStatus) error
	SignContract(ctx context.Context, id string) error
}

func NewLeasingService(
	rentalRepo repositories.IRentalProductRepository,
	contractRepo repositories.IRentalContractRepository,
) LeasingServiceInterface {
	return &LeasingService{
		rentalRepo:   rentalRepo,
		contractRepo: contractRepo,
	}
}

type LeasingService struct {
	rentalRepo   repositories.IRentalProductRepository
	contractRepo repositories.IRentalContractRepository
}

func (s *LeasingService) CreateCategory(ctx context.Context, req request_models.CreateRentalCategoryRequest) error {
	if err := s.rentalRepo.CreateCategory(ctx, &db_models.RentalCategory{Name: req.Name}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LeasingService) ListCategories(ctx context.Context) ([]db_models.RentalCategory, error) {
	categories, err := s.rentalRepo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *LeasingService) CreateProduct(ctx context.Context, req request_models.CreateRentalProductRequest) (*response_models.RentalProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}

	product := &db_models.RentalProduct{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Sku:         strings.ToUpper(req.Sku),
		StockQty:    req.StockQuantity,
	}
	if len(req.Specifications) > 0 {
		product.Specifications = []byte(req.Specifications)
	}

	if err := s.rentalRepo.Create(ctx, product); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, utils.ErrSkuAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return toRentalProductResponse(product), nil
}

func (s *LeasingService) GetProduct(ctx context.Context, id string) (*response_models.RentalProductResponse, error) {
	product, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return toRentalProductResponse(product), nil
}

func (s *LeasingService) ListProducts(ctx context.Context, page, pageSize int) ([]response_models.RentalProductResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	products, err := s.rentalRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.RentalProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toRentalProductResponse(&products[i]))
	}
	return result, nil
}

func (s *LeasingService) CreatePlan(ctx context.Context, req request_models.CreateRentalPlanRequest) (*response_models.RentalPlanResponse, error) {
	period := db_models.RentalPeriod(req.Period)
	if !period.Valid() {
		return nil, utils.ErrInvalidRentalPeriod
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}
	product, err := s.rentalRepo.GetByID(ctx, productID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, utils.ErrInvalidPrice
	}
	maintenancePrice := decimal.Zero
	if req.MaintenancePrice != "" {
		maintenancePrice, err = decimal.NewFromString(req.MaintenancePrice)
		if err != nil || maintenancePrice.IsNegative() {
			return nil, utils.ErrInvalidPrice
		}
	}

	plan := &db_models.RentalPlan{
		ProductID:        productID,
		Period:           period,
		BasePrice:        basePrice,
		MaintenancePrice: maintenancePrice,
	}

	if err := s.rentalRepo.CreatePlan(ctx, plan); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, utils.ErrPlanAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return toRentalPlanResponse(plan), nil
}

func (s *LeasingService) ListPlans(ctx context.Context, productID string) ([]response_models.RentalPlanResponse, error) {
	plans, err := s.rentalRepo.ListPlansByProduct(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.RentalPlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, *toRentalPlanResponse(&plans[i]))
	}
	return result, nil
}

func (s *LeasingService) Quote(ctx context.Context, req request_models.QuoteRequest) (*response_models.QuoteResponse, error) {
	product, plan, start, end, err := s.resolveQuoteInputs(ctx, req.ProductID, req.Period, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	quote, err := ComputeRentalQuote(plan, start, end, req.IncludeMaintenance)
	if err != nil {
		return nil, err
	}

	document := renderContractDocument(product, plan, quote, req.StartDate, req.EndDate)

	return &response_models.QuoteResponse{
		ProductID:               product.ID,
		ProductName:             product.Name,
		PlanID:                  plan.ID,
		PlanPeriod:              string(plan.Period),
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		DurationDays:            quote.DurationDays,
		DurationUnits:           quote.DurationUnits,
		BasePricePerUnit:        plan.BasePrice.StringFixed(2),
		MaintenancePricePerUnit: plan.MaintenancePrice.StringFixed(2),
		BaseCost:                quote.BaseCost.StringFixed(2),
		MaintenanceCost:         quote.MaintenanceCost.StringFixed(2),
		TotalCost:               quote.TotalCost.StringFixed(2),
		ContractDocument:        document,
	}, nil
}

func (s *LeasingService) CreateContract(ctx context.Context, customerID uuid.UUID, req request_models.CreateContractRequest) (*response_models.RentalContractResponse, error) {
	product, plan, start, end, err := s.resolveQuoteInputs(ctx, req.ProductID, req.Period, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	quote, err := ComputeRentalQuote(plan, start, end, req.IncludeMaintenance)
	if err != nil {
		return nil, err
	}

	contract := &db_models.RentalContract{
		CustomerID:       customerID,
		ProductID:        product.ID,
		PlanID:           plan.ID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		TotalCost:        quote.TotalCost,
		ContractDocument: renderContractDocument(product, plan, quote, req.StartDate, req.EndDate),
		Status:           db_models.ContractStatusPending,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toContractResponse(contract, product.Name), nil
}

func (s *LeasingService) GetContract(ctx context.Context, id string) (*response_models.RentalContractResponse, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if contract == nil {
		return nil, utils.ErrContractNotFound
	}
	return toContractResponse(contract, contract.Product.Name), nil
}

func (s *LeasingService) ListContracts(ctx context.Context, customerID uuid.UUID) ([]response_models.RentalContractResponse, error) {
	contracts, err := s.contractRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.RentalContractResponse, 0, len(contracts))
	for i := range contracts {
		result = append(result, *toContractResponse(&contracts[i], contracts[i].Product.Name))
	}
	return result, nil
}

func (s *LeasingService) UpdateContractStatus(ctx context.Context, id string, status db_models.ContractStatus) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if contract == nil {
		return utils.ErrContractNotFound
	}
	if err := s.contractRepo.UpdateStatus(ctx, contract.ID, status); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LeasingService) SignContract(ctx context.Context, id string) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if contract == nil {
		return utils.ErrContractNotFound
	}
	if err := s.contractRepo.MarkSigned(ctx, contract.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// resolveQuoteInputs loads the product and its plan for the period and parses
// the date pair. Not-found outcomes are reported distinctly from bad input.
func (s *LeasingService) resolveQuoteInputs(
	ctx context.Context,
	productID, period, startDate, endDate string,
) (*db_models.RentalProduct, *db_models.RentalPlan, time.Time, time.Time, error) {

	var zero time.Time

	p := db_models.RentalPeriod(period)
	if !p.Valid() {
		return nil, nil, zero, zero, utils.ErrInvalidRentalPeriod
	}

	product, err := s.rentalRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, zero, zero, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, nil, zero, zero, utils.ErrProductNotFound
	}

	plan, err := s.rentalRepo.GetPlanByProductAndPeriod(ctx, productID, p)
	if err != nil {
		return nil, nil, zero, zero, utils.ErrDatabaseError
	}
	if plan == nil {
		available, err := s.rentalRepo.ListPlansByProduct(ctx, productID)
		if err != nil {
			return nil, nil, zero, zero, utils.ErrDatabaseError
		}
		periods := make([]string, 0, len(available))
		for _, ap := range available {
			periods = append(periods, string(ap.Period))
		}
		return nil, nil, zero, zero, fmt.Errorf("%w: product %q offers %s",
			utils.ErrPlanNotFound, product.Name, strings.Join(periods, ", "))
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, nil, zero, zero, utils.ErrInvalidDateRange
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, nil, zero, zero, utils.ErrInvalidDateRange
	}

	return product, plan, start, end, nil
}

func renderContractDocument(
	product *db_models.RentalProduct,
	plan *db_models.RentalPlan,
	quote RentalQuote,
	startDate, endDate string,
) string {
	return fmt.Sprintf(`RENTAL AGREEMENT - %s

CONTRACT DETAILS:
- Product: %s
- SKU: %s
- Plan: %s
- Period: %s to %s
- Duration: %d day(s) (%d billing unit(s))

COST DETAILS:
- Base price per unit: $%s
- Maintenance/insurance per unit: $%s
- Base cost: $%s
- Maintenance cost: $%s
- TOTAL: $%s

TERMS AND CONDITIONS:
1. The equipment must be returned in the same condition.
2. Any damage is the renter's responsibility.
3. Payment is due at the start of the contract.
4. Cancellations under 24h notice incur a penalty.

CUSTOMER SIGNATURE: _________________________
DATE: %s`,
		product.Name,
		product.Name,
		product.Sku,
		plan.Period,
		startDate, endDate,
		quote.DurationDays, quote.DurationUnits,
		plan.BasePrice.StringFixed(2),
		plan.MaintenancePrice.StringFixed(2),
		quote.BaseCost.StringFixed(2),
		quote.MaintenanceCost.StringFixed(2),
		quote.TotalCost.StringFixed(2),
		time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
}

func toRentalProductResponse(product *db_models.RentalProduct) *response_models.RentalProductResponse {
	resp := &response_models.RentalProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		CategoryID:     product.CategoryID,
		Sku:            product.Sku,
		StockQuantity:  product.StockQty,
		IsAvailable:    product.IsAvailable(),
		Specifications: product.Specifications,
	}
	for i := range product.Plans {
		resp.Plans = append(resp.Plans, *toRentalPlanResponse(&product.Plans[i]))
	}
	return resp
}

func toRentalPlanResponse(plan *db_models.RentalPlan) *response_models.RentalPlanResponse {
	return &response_models.RentalPlanResponse{
		ID:               plan.ID,
		ProductID:        plan.ProductID,
		Period:           string(plan.Period),
		BasePrice:        plan.BasePrice.StringFixed(2),
		MaintenancePrice: plan.MaintenancePrice.StringFixed(2),
	}
}

func toContractResponse(contract *db_models.RentalContract, productName string) *response_models.RentalContractResponse {
	return &response_models.RentalContractResponse{
		ID:               contract.ID,
		ProductID:        contract.ProductID,
		ProductName:      productName,
		PlanID:           contract.PlanID,
		StartDate:        contract.StartDate,
		EndDate:          contract.EndDate,
		TotalCost:        contract.TotalCost.StringFixed(2),
		IsSigned:         contract.IsSigned,
		Status:           string(contract.Status),
		ContractDocument: contract.ContractDocument,
	}
}
