package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "PENDING"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCanceled  ContractStatus = "CANCELED"
)

type RentalContract struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"index"`
	ProductID  uuid.UUID `gorm:"index"`
	PlanID     uuid.UUID `gorm:"index"`

	StartDate string `gorm:"type:date"` // YYYY-MM-DD
	EndDate   string `gorm:"type:date"`

	TotalCost decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsSigned  bool            `gorm:"default:false"`

	// Rendered terms and conditions as quoted at creation time.
	ContractDocument string

	Status ContractStatus `gorm:"size:10;default:'PENDING';index"`

	Customer Account       `gorm:"foreignKey:CustomerID"`
	Product  RentalProduct `gorm:"foreignKey:ProductID"`
	Plan     RentalPlan    `gorm:"foreignKey:PlanID"`
}
