package request_models

import "encoding/json"

type CreateSaleCategoryRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid4"`
}

type CreateSaleProductRequest struct {
	Name             string          `json:"name" binding:"required,max=255"`
	Brand            string          `json:"brand" binding:"max=100"`
	Model            string          `json:"model" binding:"max=100"`
	Description      string          `json:"description" binding:"required"`
	Sku              string          `json:"sku" binding:"required,max=50"`
	Price            string          `json:"price" binding:"required"`
	StockQuantity    int             `json:"stock_quantity" binding:"gte=0"`
	CategoryID       string          `json:"category_id" binding:"required,uuid4"`
	ImageURL         string          `json:"image_url"`
	CustomAttributes json.RawMessage `json:"custom_attributes"`
}

type UpdateSaleProductRequest struct {
	Name             *string         `json:"name" binding:"omitempty,max=255"`
	Brand            *string         `json:"brand"`
	Model            *string         `json:"model"`
	Description      *string         `json:"description"`
	Price            *string         `json:"price"`
	StockQuantity    *int            `json:"stock_quantity" binding:"omitempty,gte=0"`
	ImageURL         *string         `json:"image_url"`
	CustomAttributes json.RawMessage `json:"custom_attributes"`
}

type PurchaseRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
