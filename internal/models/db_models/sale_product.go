package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SaleCategory struct {
	BaseModel
	Name     string     `gorm:"uniqueIndex"`
	ParentID *uuid.UUID `gorm:"index"` // nil for top level categories

	Parent        *SaleCategory  `gorm:"foreignKey:ParentID"`
	Subcategories []SaleCategory `gorm:"foreignKey:ParentID"`
}

type SaleProduct struct {
	BaseModel
	Name        string
	Brand       string
	Model       string
	Description string
	Sku         string          `gorm:"uniqueIndex"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	StockQty    int             `gorm:"column:stock_quantity;default:0"`
	CategoryID  uuid.UUID       `gorm:"index"`
	ImageURL    string

	// Free-form attributes like connector type, speed, compatibility.
	CustomAttributes datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Category SaleCategory `gorm:"foreignKey:CategoryID"`
}

func (p *SaleProduct) IsAvailable() bool {
	return p.StockQty > 0
}
