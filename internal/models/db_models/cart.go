package db_models

import (
	"github.com/google/uuid"
)

// ProductKind tags which catalog a line item points into.
type ProductKind string

const (
	KindSale   ProductKind = "SALE"
	KindRental ProductKind = "RENTAL"
)

func (k ProductKind) Valid() bool {
	return k == KindSale || k == KindRental
}

type Cart struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"` // one cart per account

	Items []CartItem `gorm:"foreignKey:CartID"`
}

// CartItem references exactly one sale product or one rental product through
// the (ProductKind, ProductID) pair. RentalPlanID is set if and only if the
// item points at a rental product. The composite unique index keeps one row
// per (cart, kind, product, plan); the same rental product under two plans
// occupies two rows. Postgres treats NULLs as distinct in unique indexes,
// so sale lines (NULL plan) get their own partial unique index.
type CartItem struct {
	BaseModel
	CartID      uuid.UUID   `gorm:"index;uniqueIndex:idx_cart_line;uniqueIndex:idx_cart_sale_line,where:rental_plan_id IS NULL"`
	ProductKind ProductKind `gorm:"size:10;uniqueIndex:idx_cart_line;uniqueIndex:idx_cart_sale_line"`
	ProductID   uuid.UUID   `gorm:"uniqueIndex:idx_cart_line;uniqueIndex:idx_cart_sale_line"`
	Quantity    int         `gorm:"default:1"`

	RentalPlanID *uuid.UUID `gorm:"uniqueIndex:idx_cart_line"`

	RentalPlan *RentalPlan `gorm:"foreignKey:RentalPlanID"`
}
