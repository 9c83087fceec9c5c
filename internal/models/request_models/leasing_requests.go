package request_models

import "encoding/json"

type CreateRentalCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateRentalProductRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Description    string          `json:"description" binding:"required"`
	CategoryID     string          `json:"category_id" binding:"required,uuid4"`
	Sku            string          `json:"sku" binding:"required,max=50"`
	StockQuantity  int             `json:"stock_quantity" binding:"gte=0"`
	Specifications json.RawMessage `json:"specifications"`
}

type CreateRentalPlanRequest struct {
	ProductID        string `json:"product_id" binding:"required,uuid4"`
	Period           string `json:"period" binding:"required,oneof=DAILY WEEKLY MONTHLY ANNUAL"`
	BasePrice        string `json:"base_price" binding:"required"`
	MaintenancePrice string `json:"maintenance_price"`
}

type QuoteRequest struct {
	ProductID          string `json:"product_id" binding:"required,uuid4"`
	Period             string `json:"period" binding:"required"`
	StartDate          string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate            string `json:"end_date" binding:"required"`
	IncludeMaintenance bool   `json:"include_maintenance"`
}

type CreateContractRequest struct {
	ProductID          string `json:"product_id" binding:"required,uuid4"`
	Period             string `json:"period" binding:"required"`
	StartDate          string `json:"start_date" binding:"required"`
	EndDate            string `json:"end_date" binding:"required"`
	IncludeMaintenance bool   `json:"include_maintenance"`
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACTIVE COMPLETED CANCELED"`
}
