package response_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RentalPlanResponse struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	Period           string    `json:"period"`
	BasePrice        string    `json:"base_price"`
	MaintenancePrice string    `json:"maintenance_price"`
}

type RentalProductResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	CategoryID     uuid.UUID            `json:"category_id"`
	Sku            string               `json:"sku"`
	StockQuantity  int                  `json:"stock_quantity"`
	IsAvailable    bool                 `json:"is_available"`
	Specifications datatypes.JSON       `json:"specifications"`
	Plans          []RentalPlanResponse `json:"plans,omitempty"`
}

type QuoteResponse struct {
	ProductID               uuid.UUID `json:"product_id"`
	ProductName             string    `json:"product_name"`
	PlanID                  uuid.UUID `json:"plan_id"`
	PlanPeriod              string    `json:"plan_period"`
	StartDate               string    `json:"start_date"`
	EndDate                 string    `json:"end_date"`
	DurationDays            int64     `json:"duration_days"`
	DurationUnits           int64     `json:"duration_units"`
	BasePricePerUnit        string    `json:"base_price_per_unit"`
	MaintenancePricePerUnit string    `json:"maintenance_price_per_unit"`
	BaseCost                string    `json:"base_cost"`
	MaintenanceCost         string    `json:"maintenance_cost"`
	TotalCost               string    `json:"total_cost"`
	ContractDocument        string    `json:"contract_document"`
}

type RentalContractResponse struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name,omitempty"`
	PlanID           uuid.UUID `json:"plan_id"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	TotalCost        string    `json:"total_cost"`
	IsSigned         bool      `json:"is_signed"`
	Status           string    `json:"status"`
	ContractDocument string    `json:"contract_document,omitempty"`
}
