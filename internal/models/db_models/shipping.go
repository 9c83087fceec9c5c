package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShippingType string

const (
	ShippingNational      ShippingType = "NATIONAL"
	ShippingInternational ShippingType = "INTERNATIONAL"
	ShippingLocal         ShippingType = "LOCAL"
)

type ShippingMethod struct {
	BaseModel
	Name                  string
	Type                  ShippingType    `gorm:"size:20;default:'NATIONAL'"`
	BaseCost              decimal.Decimal `gorm:"type:numeric(10,2);default:0.00"`
	CostPerKg             decimal.Decimal `gorm:"type:numeric(10,2);default:0.00"`
	EstimatedDeliveryDays int             `gorm:"default:3"`
}

type ShipmentStatus string

const (
	ShipmentStatusPending         ShipmentStatus = "PENDING"
	ShipmentStatusProcessing      ShipmentStatus = "PROCESSING"
	ShipmentStatusShipped         ShipmentStatus = "SHIPPED"
	ShipmentStatusInTransit       ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered       ShipmentStatus = "DELIVERED"
	ShipmentStatusReturned        ShipmentStatus = "RETURNED"
	ShipmentStatusScheduledPickup ShipmentStatus = "SCHEDULED_PICKUP"
	ShipmentStatusPickedUp        ShipmentStatus = "PICKED_UP"
)

type Shipment struct {
	BaseModel
	TrackingNumber string         `gorm:"uniqueIndex"`
	Status         ShipmentStatus `gorm:"size:20;default:'PENDING';index"`

	ShippingMethodID uuid.UUID `gorm:"index"`

	OriginAddress      string
	DestinationAddress string

	// Rental logistics: scheduled delivery or pickup tied to a contract.
	ScheduledAt       *int64
	RentalContractID  *uuid.UUID `gorm:"index"`

	CustomerName  string
	CustomerEmail string

	ShippingMethod ShippingMethod  `gorm:"foreignKey:ShippingMethodID"`
	RentalContract *RentalContract `gorm:"foreignKey:RentalContractID"`
}
