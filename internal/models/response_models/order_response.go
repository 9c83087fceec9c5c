package response_models

import "github.com/google/uuid"

type OrderItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	ProductKind     string     `json:"product_kind"`
	ProductID       uuid.UUID  `json:"product_id"`
	Quantity        int        `json:"quantity"`
	RentalPlanID    *uuid.UUID `json:"rental_plan_id,omitempty"`
	PriceAtPurchase string     `json:"price_at_purchase"`
	LineTotal       string     `json:"line_total"`
}

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	Status     string              `json:"status"`
	TotalPrice string              `json:"total_price"`
	CreatedAt  int64               `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}
