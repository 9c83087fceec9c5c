package response_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SaleCategoryResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	ParentID      *uuid.UUID             `json:"parent_id,omitempty"`
	Subcategories []SaleCategoryResponse `json:"subcategories,omitempty"`
}

type SaleProductResponse struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Brand            string         `json:"brand"`
	Model            string         `json:"model"`
	Description      string         `json:"description"`
	Sku              string         `json:"sku"`
	Price            string         `json:"price"`
	StockQuantity    int            `json:"stock_quantity"`
	IsAvailable      bool           `json:"is_available"`
	CategoryID       uuid.UUID      `json:"category_id"`
	ImageURL         string         `json:"image_url,omitempty"`
	CustomAttributes datatypes.JSON `json:"custom_attributes"`
}

type PurchaseResponse struct {
	Message  string `json:"message"`
	NewStock int    `json:"new_stock"`
}
