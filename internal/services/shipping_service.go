package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type ShippingServiceInterface interface {
	CreateMethod(ctx context.Context, req request_models.CreateShippingMethodRequest) (*response_models.ShippingMethodResponse, error)
	ListMethods(ctx context.Context) ([]response_models.ShippingMethodResponse, error)
	UpdateMethod(ctx context.Context, id string, req request_models.CreateShippingMethodRequest) (*response_models.ShippingMethodResponse, error)
	DeleteMethod(ctx context.Context, id string) error

	CreateShipment(ctx context.Context, req request_models.CreateShipmentRequest) (*response_models.ShipmentResponse, error)
	TrackShipment(ctx context.Context, trackingNumber string) (*response_models.ShipmentResponse, error)
	ListShipmentsByContract(ctx context.Context, contractID string) ([]response_models.ShipmentResponse, error)
	UpdateShipmentStatus(ctx context.Context, trackingNumber string, status string) (*response_models.ShipmentResponse, error)
}

func NewShippingService(
	shippingRepo repositories.IShippingRepository,
	contractRepo repositories.IRentalContractRepository,
) ShippingServiceInterface {
	return &ShippingService{
		shippingRepo: shippingRepo,
		contractRepo: contractRepo,
	}
}

type ShippingService struct {
	shippingRepo repositories.IShippingRepository
	contractRepo repositories.IRentalContractRepository
}

func (s *ShippingService) CreateMethod(ctx context.Context, req request_models.CreateShippingMethodRequest) (*response_models.ShippingMethodResponse, error) {
	baseCost, err := parseCost(req.BaseCost)
	if err != nil {
		return nil, err
	}
	costPerKg, err := parseCost(req.CostPerKg)
	if err != nil {
		return nil, err
	}

	method := &db_models.ShippingMethod{
		Name:                  req.Name,
		Type:                  db_models.ShippingType(req.Type),
		BaseCost:              baseCost,
		CostPerKg:             costPerKg,
		EstimatedDeliveryDays: req.EstimatedDeliveryDays,
	}
	if err := s.shippingRepo.CreateMethod(ctx, method); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toShippingMethodResponse(method), nil
}

func (s *ShippingService) ListMethods(ctx context.Context) ([]response_models.ShippingMethodResponse, error) {
	methods, err := s.shippingRepo.ListMethods(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ShippingMethodResponse, 0, len(methods))
	for i := range methods {
		result = append(result, *toShippingMethodResponse(&methods[i]))
	}
	return result, nil
}

func (s *ShippingService) UpdateMethod(ctx context.Context, id string, req request_models.CreateShippingMethodRequest) (*response_models.ShippingMethodResponse, error) {
	method, err := s.shippingRepo.GetMethodByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil {
		return nil, utils.ErrShippingMethodNotFound
	}

	baseCost, err := parseCost(req.BaseCost)
	if err != nil {
		return nil, err
	}
	costPerKg, err := parseCost(req.CostPerKg)
	if err != nil {
		return nil, err
	}

	method.Name = req.Name
	method.Type = db_models.ShippingType(req.Type)
	method.BaseCost = baseCost
	method.CostPerKg = costPerKg
	method.EstimatedDeliveryDays = req.EstimatedDeliveryDays

	if err := s.shippingRepo.UpdateMethod(ctx, method); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toShippingMethodResponse(method), nil
}

func (s *ShippingService) DeleteMethod(ctx context.Context, id string) error {
	method, err := s.shippingRepo.GetMethodByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if method == nil {
		return utils.ErrShippingMethodNotFound
	}
	if err := s.shippingRepo.DeleteMethod(ctx, method.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ShippingService) CreateShipment(ctx context.Context, req request_models.CreateShipmentRequest) (*response_models.ShipmentResponse, error) {
	method, err := s.shippingRepo.GetMethodByID(ctx, req.ShippingMethodID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if method == nil {
		return nil, utils.ErrShippingMethodNotFound
	}

	trackingNumber, err := newTrackingNumber()
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	shipment := &db_models.Shipment{
		TrackingNumber:     trackingNumber,
		Status:             db_models.ShipmentStatusPending,
		ShippingMethodID:   method.ID,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		ScheduledAt:        req.ScheduledAt,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
	}

	if req.RentalContractID != nil {
		contract, err := s.contractRepo.GetByID(ctx, *req.RentalContractID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if contract == nil {
			return nil, utils.ErrContractNotFound
		}
		shipment.RentalContractID = &contract.ID
	}

	if err := s.shippingRepo.CreateShipment(ctx, shipment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toShipmentResponse(shipment), nil
}

func (s *ShippingService) TrackShipment(ctx context.Context, trackingNumber string) (*response_models.ShipmentResponse, error) {
	shipment, err := s.shippingRepo.GetShipmentByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if shipment == nil {
		return nil, utils.ErrShipmentNotFound
	}
	return toShipmentResponse(shipment), nil
}

func (s *ShippingService) ListShipmentsByContract(ctx context.Context, contractID string) ([]response_models.ShipmentResponse, error) {
	id, err := uuid.Parse(contractID)
	if err != nil {
		return nil, utils.ErrContractNotFound
	}

	shipments, err := s.shippingRepo.ListShipmentsByContract(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		result = append(result, *toShipmentResponse(&shipments[i]))
	}
	return result, nil
}

func (s *ShippingService) UpdateShipmentStatus(ctx context.Context, trackingNumber string, status string) (*response_models.ShipmentResponse, error) {
	shipment, err := s.shippingRepo.GetShipmentByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if shipment == nil {
		return nil, utils.ErrShipmentNotFound
	}

	next := db_models.ShipmentStatus(status)
	if err := s.shippingRepo.UpdateShipmentStatus(ctx, shipment.ID, next); err != nil {
		return nil, utils.ErrDatabaseError
	}
	shipment.Status = next
	return toShipmentResponse(shipment), nil
}

// newTrackingNumber yields carrier-style identifiers like PXS-4F2A9C0D1B3E.
func newTrackingNumber() (string, error) {
	token, err := utils.GenerateSecureToken(6)
	if err != nil {
		return "", err
	}
	return "PXS-" + strings.ToUpper(token), nil
}

func parseCost(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	cost, err := decimal.NewFromString(raw)
	if err != nil || cost.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", utils.ErrInvalidPrice, raw)
	}
	return cost, nil
}

func toShippingMethodResponse(method *db_models.ShippingMethod) *response_models.ShippingMethodResponse {
	return &response_models.ShippingMethodResponse{
		ID:                    method.ID,
		Name:                  method.Name,
		Type:                  string(method.Type),
		BaseCost:              method.BaseCost.StringFixed(2),
		CostPerKg:             method.CostPerKg.StringFixed(2),
		EstimatedDeliveryDays: method.EstimatedDeliveryDays,
	}
}

func toShipmentResponse(shipment *db_models.Shipment) *response_models.ShipmentResponse {
	return &response_models.ShipmentResponse{
		ID:                 shipment.ID,
		TrackingNumber:     shipment.TrackingNumber,
		Status:             string(shipment.Status),
		ShippingMethodID:   shipment.ShippingMethodID,
		OriginAddress:      shipment.OriginAddress,
		DestinationAddress: shipment.DestinationAddress,
		ScheduledAt:        shipment.ScheduledAt,
		RentalContractID:   shipment.RentalContractID,
		CustomerName:       shipment.CustomerName,
		CustomerEmail:      shipment.CustomerEmail,
		CreatedAt:          shipment.CreatedAt,
	}
}
