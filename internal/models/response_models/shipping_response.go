package response_models

import "github.com/google/uuid"

type ShippingMethodResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	BaseCost              string    `json:"base_cost"`
	CostPerKg             string    `json:"cost_per_kg"`
	EstimatedDeliveryDays int       `json:"estimated_delivery_days"`
}

type ShipmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	TrackingNumber     string     `json:"tracking_number"`
	Status             string     `json:"status"`
	ShippingMethodID   uuid.UUID  `json:"shipping_method_id"`
	OriginAddress      string     `json:"origin_address"`
	DestinationAddress string     `json:"destination_address"`
	ScheduledAt        *int64     `json:"scheduled_at,omitempty"`
	RentalContractID   *uuid.UUID `json:"rental_contract_id,omitempty"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	CreatedAt          int64      `json:"created_at"`
}
