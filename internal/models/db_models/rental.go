package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RentalPeriod string

const (
	PeriodDaily   RentalPeriod = "DAILY"
	PeriodWeekly  RentalPeriod = "WEEKLY"
	PeriodMonthly RentalPeriod = "MONTHLY"
	PeriodAnnual  RentalPeriod = "ANNUAL"
)

func (p RentalPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual:
		return true
	}
	return false
}

type RentalCategory struct {
	BaseModel
	Name string `gorm:"uniqueIndex"`
}

type RentalProduct struct {
	BaseModel
	Name        string
	Description string
	CategoryID  uuid.UUID `gorm:"index"`
	Sku         string    `gorm:"uniqueIndex"`
	StockQty    int       `gorm:"column:stock_quantity;default:0"`

	// Technical details such as RAM, processor, print volume.
	Specifications datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Category RentalCategory `gorm:"foreignKey:CategoryID"`
	Plans    []RentalPlan   `gorm:"foreignKey:ProductID"`
}

func (p *RentalProduct) IsAvailable() bool {
	return p.StockQty > 0
}

// RentalPlan prices one billing period of a rental product. A product has at
// most one plan per period.
type RentalPlan struct {
	BaseModel
	ProductID        uuid.UUID       `gorm:"index;uniqueIndex:idx_rental_plan_product_period"`
	Period           RentalPeriod    `gorm:"size:10;uniqueIndex:idx_rental_plan_product_period"`
	BasePrice        decimal.Decimal `gorm:"type:numeric(10,2)"`
	MaintenancePrice decimal.Decimal `gorm:"type:numeric(10,2);default:0.00"`

	Product RentalProduct `gorm:"foreignKey:ProductID"`
}
