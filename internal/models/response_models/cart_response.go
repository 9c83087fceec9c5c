package response_models

import "github.com/google/uuid"

type CartItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProductKind  string     `json:"product_kind"`
	ProductID    uuid.UUID  `json:"product_id"`
	ProductName  string     `json:"product_name"`
	Quantity     int        `json:"quantity"`
	RentalPlanID *uuid.UUID `json:"rental_plan_id,omitempty"`
	UnitPrice    string     `json:"unit_price"`
	LineTotal    string     `json:"line_total"`
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice string             `json:"total_cart_price"`
}
