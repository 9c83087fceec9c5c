package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pixsoft/internal/models/db_models"
)

type ICartRepository interface {
	GetOrCreateByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error)
	GetItems(ctx context.Context, cartID uuid.UUID) ([]db_models.CartItem, error)
	GetItem(ctx context.Context, cartID uuid.UUID, itemID string) (*db_models.CartItem, error)

	// UpsertItem creates the line or, when a line with the same
	// (cart, kind, product, plan) key exists, overwrites its quantity.
	// The lookup takes a row lock so two writers cannot race past each
	// other on the same line.
	UpsertItem(ctx context.Context, item *db_models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &cartRepository{db: db}
}

type cartRepository struct {
	db *gorm.DB
}

func (r *cartRepository) GetOrCreateByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).First(&cart, "account_id = ?", accountID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = db_models.Cart{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetItems(ctx context.Context, cartID uuid.UUID) ([]db_models.CartItem, error) {
	var items []db_models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, cartID uuid.UUID, itemID string) (*db_models.CartItem, error) {
	var item db_models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpsertItem(ctx context.Context, item *db_models.CartItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(
			"cart_id = ? AND product_kind = ? AND product_id = ?",
			item.CartID, item.ProductKind, item.ProductID,
		)
		if item.RentalPlanID != nil {
			query = query.Where("rental_plan_id = ?", *item.RentalPlanID)
		} else {
			query = query.Where("rental_plan_id IS NULL")
		}

		var existing db_models.CartItem
		err := query.First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(item).Error
			}
			return err
		}

		existing.Quantity = item.Quantity
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*item = existing
		return nil
	})
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.CartItem{}, "id = ?", itemID).Error
}
