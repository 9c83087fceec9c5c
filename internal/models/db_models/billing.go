package db_models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
)

// Invoice bills either an order or a rental contract, never both.
type Invoice struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`

	OrderID          *uuid.UUID `gorm:"uniqueIndex"`
	RentalContractID *uuid.UUID `gorm:"uniqueIndex"`

	InvoiceNumber string          `gorm:"uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status        InvoiceStatus   `gorm:"size:20;default:'PENDING';index"`

	DueAt  *int64
	PaidAt *int64

	Account        Account         `gorm:"foreignKey:AccountID"`
	Order          *Order          `gorm:"foreignKey:OrderID"`
	RentalContract *RentalContract `gorm:"foreignKey:RentalContractID"`

	Payments []Payment `gorm:"foreignKey:InvoiceID"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if err := i.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if i.InvoiceNumber == "" {
		// e.g. INV-1712345678-9f3a21
		i.InvoiceNumber = fmt.Sprintf("INV-%d-%s", time.Now().Unix(), i.AccountID.String()[:6])
	}
	return nil
}

type PaymentMethod string

const (
	PaymentMethodStripe   PaymentMethod = "STRIPE"
	PaymentMethodPaypal   PaymentMethod = "PAYPAL"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	BaseModel
	InvoiceID     uuid.UUID       `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method        PaymentMethod   `gorm:"size:20;default:'CARD'"`
	TransactionID string          `gorm:"index"`
	Status        PaymentStatus   `gorm:"size:20;default:'PENDING';index"`
}
