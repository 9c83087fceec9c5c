package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

type Order struct {
	BaseModel
	AccountID  uuid.UUID       `gorm:"index"`
	Status     OrderStatus     `gorm:"size:10;default:'PENDING';index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is a cart line frozen at conversion time. PriceAtPurchase is the
// unit price evaluated when the order was created and never changes after
// that, regardless of later plan or product price edits.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID   `gorm:"index"`
	ProductKind ProductKind `gorm:"size:10"`
	ProductID   uuid.UUID
	Quantity    int

	RentalPlanID *uuid.UUID

	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(10,2)"`

	RentalPlan *RentalPlan `gorm:"foreignKey:RentalPlanID"`
}

func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
