package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
)

type IOrderRepository interface {
	// CreateFromCart persists the order with its items and clears the cart's
	// line items in one transaction. Either everything lands or nothing does.
	CreateFromCart(ctx context.Context, order *db_models.Order, cartID uuid.UUID) error
	GetByID(ctx context.Context, accountID uuid.UUID, orderID string) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) CreateFromCart(ctx context.Context, order *db_models.Order, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&db_models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, accountID uuid.UUID, orderID string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("account_id = ? AND id = ?", accountID, orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}
