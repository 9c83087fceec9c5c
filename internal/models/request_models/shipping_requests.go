package request_models

type CreateShippingMethodRequest struct {
	Name                  string `json:"name" binding:"required,max=100"`
	Type                  string `json:"type" binding:"required,oneof=NATIONAL INTERNATIONAL LOCAL"`
	BaseCost              string `json:"base_cost"`
	CostPerKg             string `json:"cost_per_kg"`
	EstimatedDeliveryDays int    `json:"estimated_delivery_days" binding:"gte=0"`
}

type CreateShipmentRequest struct {
	ShippingMethodID   string  `json:"shipping_method_id" binding:"required,uuid4"`
	OriginAddress      string  `json:"origin_address" binding:"required"`
	DestinationAddress string  `json:"destination_address" binding:"required"`
	ScheduledAt        *int64  `json:"scheduled_at"`
	RentalContractID   *string `json:"rental_contract_id" binding:"omitempty,uuid4"`
	CustomerName       string  `json:"customer_name" binding:"required,max=200"`
	CustomerEmail      string  `json:"customer_email" binding:"required,email"`
}

type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED IN_TRANSIT DELIVERED RETURNED SCHEDULED_PICKUP PICKED_UP"`
}
