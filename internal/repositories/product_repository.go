package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
)

type ISaleProductRepository interface {
	Create(ctx context.Context, product *db_models.SaleProduct) error
	Update(ctx context.Context, product *db_models.SaleProduct) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*db_models.SaleProduct, error)
	List(ctx context.Context, page, pageSize int, onlyAvailable bool) ([]db_models.SaleProduct, error)

	// DecrementStock applies `stock_quantity = stock_quantity - qty` only when
	// enough stock remains, in a single conditional UPDATE. It reports whether
	// the decrement was applied.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
	GetStock(ctx context.Context, id string) (int, error)
}

type ISaleCategoryRepository interface {
	Create(ctx context.Context, category *db_models.SaleCategory) error
	GetByID(ctx context.Context, id string) (*db_models.SaleCategory, error)
	ListTopLevel(ctx context.Context) ([]db_models.SaleCategory, error)
}

func NewSaleProductRepository(db *gorm.DB) ISaleProductRepository {
	return &saleProductRepository{db: db}
}

type saleProductRepository struct {
	db *gorm.DB
}

func (r *saleProductRepository) Create(ctx context.Context, product *db_models.SaleProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *saleProductRepository) Update(ctx context.Context, product *db_models.SaleProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *saleProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.SaleProduct{}, "id = ?", id).Error
}

func (r *saleProductRepository) GetByID(ctx context.Context, id string) (*db_models.SaleProduct, error) {
	var product db_models.SaleProduct
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *saleProductRepository) List(ctx context.Context, page, pageSize int, onlyAvailable bool) ([]db_models.SaleProduct, error) {
	var products []db_models.SaleProduct

	query := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	})
	if onlyAvailable {
		query = query.Where("stock_quantity > 0")
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *saleProductRepository) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.SaleProduct{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *saleProductRepository) GetStock(ctx context.Context, id string) (int, error) {
	var stock int
	err := r.db.WithContext(ctx).
		Model(&db_models.SaleProduct{}).
		Where("id = ?", id).
		Pluck("stock_quantity", &stock).Error
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func NewSaleCategoryRepository(db *gorm.DB) ISaleCategoryRepository {
	return &saleCategoryRepository{db: db}
}

type saleCategoryRepository struct {
	db *gorm.DB
}

func (r *saleCategoryRepository) Create(ctx context.Context, category *db_models.SaleCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *saleCategoryRepository) GetByID(ctx context.Context, id string) (*db_models.SaleCategory, error) {
	var category db_models.SaleCategory
	err := r.db.WithContext(ctx).Preload("Subcategories").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *saleCategoryRepository) ListTopLevel(ctx context.Context) ([]db_models.SaleCategory, error) {
	var categories []db_models.SaleCategory
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Where("parent_id IS NULL").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
