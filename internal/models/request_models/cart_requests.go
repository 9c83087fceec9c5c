package request_models

// AddCartItemRequest adds or updates a polymorphic line item. RentalPlanID is
// required for RENTAL products and forbidden for SALE products.
type AddCartItemRequest struct {
	ProductKind  string  `json:"product_kind" binding:"required"`
	ProductID    string  `json:"product_id" binding:"required,uuid4"`
	Quantity     int     `json:"quantity" binding:"required"`
	RentalPlanID *string `json:"rental_plan_id" binding:"omitempty,uuid4"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
