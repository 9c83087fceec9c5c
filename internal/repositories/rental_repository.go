package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
)

type IRentalProductRepository interface {
	Create(ctx context.Context, product *db_models.RentalProduct) error
	Update(ctx context.Context, product *db_models.RentalProduct) error
	GetByID(ctx context.Context, id string) (*db_models.RentalProduct, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.RentalProduct, error)

	CreatePlan(ctx context.Context, plan *db_models.RentalPlan) error
	GetPlanByID(ctx context.Context, id string) (*db_models.RentalPlan, error)
	GetPlanByProductAndPeriod(ctx context.Context, productID string, period db_models.RentalPeriod) (*db_models.RentalPlan, error)
	ListPlansByProduct(ctx context.Context, productID string) ([]db_models.RentalPlan, error)

	CreateCategory(ctx context.Context, category *db_models.RentalCategory) error
	ListCategories(ctx context.Context) ([]db_models.RentalCategory, error)
}

func NewRentalProductRepository(db *gorm.DB) IRentalProductRepository {
	return &rentalProductRepository{db: db}
}

type rentalProductRepository struct {
	db *gorm.DB
}

func (r *rentalProductRepository) Create(ctx context.Context, product *db_models.RentalProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *rentalProductRepository) Update(ctx context.Context, product *db_models.RentalProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *rentalProductRepository) GetByID(ctx context.Context, id string) (*db_models.RentalProduct, error) {
	var product db_models.RentalProduct
	err := r.db.WithContext(ctx).Preload("Plans").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *rentalProductRepository) List(ctx context.Context, page, pageSize int) ([]db_models.RentalProduct, error) {
	var products []db_models.RentalProduct
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Preload("Plans").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *rentalProductRepository) CreatePlan(ctx context.Context, plan *db_models.RentalPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *rentalProductRepository) GetPlanByID(ctx context.Context, id string) (*db_models.RentalPlan, error) {
	var plan db_models.RentalPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *rentalProductRepository) GetPlanByProductAndPeriod(ctx context.Context, productID string, period db_models.RentalPeriod) (*db_models.RentalPlan, error) {
	var plan db_models.RentalPlan
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND period = ?", productID, period).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *rentalProductRepository) ListPlansByProduct(ctx context.Context, productID string) ([]db_models.RentalPlan, error) {
	var plans []db_models.RentalPlan
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *rentalProductRepository) CreateCategory(ctx context.Context, category *db_models.RentalCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *rentalProductRepository) ListCategories(ctx context.Context) ([]db_models.RentalCategory, error) {
	var categories []db_models.RentalCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
