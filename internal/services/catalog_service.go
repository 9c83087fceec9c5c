package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type CatalogServiceInterface interface {
	CreateCategory(ctx context.Context, req request_models.CreateSaleCategoryRequest) (*response_models.SaleCategoryResponse, error)
	ListCategories(ctx context.Context) ([]response_models.SaleCategoryResponse, error)

	CreateProduct(ctx context.Context, req request_models.CreateSaleProductRequest) (*response_models.SaleProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req request_models.UpdateSaleProductRequest) (*response_models.SaleProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*response_models.SaleProductResponse, error)
	ListProducts(ctx context.Context, page, pageSize int, onlyAvailable bool) ([]response_models.SaleProductResponse, error)

	// Purchase decrements stock atomically; on shortfall it returns an
	// InsufficientStockError carrying the units still available.
	Purchase(ctx context.Context, id string, quantity int) (*response_models.PurchaseResponse, error)
}

func NewCatalogService(
	productRepo repositories.ISaleProductRepository,
	categoryRepo repositories.ISaleCategoryRepository,
) CatalogServiceInterface {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type CatalogService struct {
	productRepo  repositories.ISaleProductRepository
	categoryRepo repositories.ISaleCategoryRepository
}

func (s *CatalogService) CreateCategory(ctx context.Context, req request_models.CreateSaleCategoryRequest) (*response_models.SaleCategoryResponse, error) {
	category := &db_models.SaleCategory{Name: req.Name}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		parent, err := s.categoryRepo.GetByID(ctx, parentID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parent == nil {
			return nil, utils.ErrCategoryNotFound
		}
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCategoryResponse(category), nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]response_models.SaleCategoryResponse, error) {
	categories, err := s.categoryRepo.ListTopLevel(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SaleCategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *toCategoryResponse(&categories[i]))
	}
	return result, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req request_models.CreateSaleProductRequest) (*response_models.SaleProductResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, utils.ErrInvalidPrice
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	product := &db_models.SaleProduct{
		Name:        req.Name,
		Brand:       req.Brand,
		Model:       req.Model,
		Description: req.Description,
		Sku:         strings.ToUpper(req.Sku),
		Price:       price,
		StockQty:    req.StockQuantity,
		CategoryID:  categoryID,
		ImageURL:    req.ImageURL,
	}
	if len(req.CustomAttributes) > 0 {
		product.CustomAttributes = []byte(req.CustomAttributes)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, utils.ErrSkuAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return toProductResponse(product), nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req request_models.UpdateSaleProductRequest) (*response_models.SaleProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Model != nil {
		product.Model = *req.Model
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, utils.ErrInvalidPrice
		}
		product.Price = price
	}
	if req.StockQuantity != nil {
		product.StockQty = *req.StockQuantity
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if len(req.CustomAttributes) > 0 {
		product.CustomAttributes = []byte(req.CustomAttributes)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProductResponse(product), nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*response_models.SaleProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, pageSize int, onlyAvailable bool) ([]response_models.SaleProductResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	products, err := s.productRepo.List(ctx, page, pageSize, onlyAvailable)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SaleProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}
	return result, nil
}

func (s *CatalogService) Purchase(ctx context.Context, id string, quantity int) (*response_models.PurchaseResponse, error) {
	if quantity <= 0 {
		return nil, utils.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	applied, err := s.productRepo.DecrementStock(ctx, id, quantity)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !applied {
		// Lost the race or never had enough. Report what is left now.
		available, err := s.productRepo.GetStock(ctx, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return nil, &utils.InsufficientStockError{Available: available}
	}

	newStock, err := s.productRepo.GetStock(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PurchaseResponse{
		Message:  "Purchase processed, stock updated",
		NewStock: newStock,
	}, nil
}

func toCategoryResponse(category *db_models.SaleCategory) *response_models.SaleCategoryResponse {
	resp := &response_models.SaleCategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		ParentID: category.ParentID,
	}
	for i := range category.Subcategories {
		resp.Subcategories = append(resp.Subcategories, *toCategoryResponse(&category.Subcategories[i]))
	}
	return resp
}

func toProductResponse(product *db_models.SaleProduct) *response_models.SaleProductResponse {
	return &response_models.SaleProductResponse{
		ID:               product.ID,
		Name:             product.Name,
		Brand:            product.Brand,
		Model:            product.Model,
		Description:      product.Description,
		Sku:              product.Sku,
		Price:            product.Price.StringFixed(2),
		StockQuantity:    product.StockQty,
		IsAvailable:      product.IsAvailable(),
		CategoryID:       product.CategoryID,
		ImageURL:         product.ImageURL,
		CustomAttributes: product.CustomAttributes,
	}
}
