package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
)

type IShippingRepository interface {
	CreateMethod(ctx context.Context, method *db_models.ShippingMethod) error
	GetMethodByID(ctx context.Context, id string) (*db_models.ShippingMethod, error)
	ListMethods(ctx context.Context) ([]db_models.ShippingMethod, error)
	UpdateMethod(ctx context.Context, method *db_models.ShippingMethod) error
	DeleteMethod(ctx context.Context, id uuid.UUID) error

	CreateShipment(ctx context.Context, shipment *db_models.Shipment) error
	GetShipmentByTracking(ctx context.Context, trackingNumber string) (*db_models.Shipment, error)
	ListShipmentsByContract(ctx context.Context, contractID uuid.UUID) ([]db_models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status db_models.ShipmentStatus) error
}

func NewShippingRepository(db *gorm.DB) IShippingRepository {
	return &shippingRepository{db: db}
}

type shippingRepository struct {
	db *gorm.DB
}

func (r *shippingRepository) CreateMethod(ctx context.Context, method *db_models.ShippingMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *shippingRepository) GetMethodByID(ctx context.Context, id string) (*db_models.ShippingMethod, error) {
	var method db_models.ShippingMethod
	err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *shippingRepository) ListMethods(ctx context.Context) ([]db_models.ShippingMethod, error) {
	var methods []db_models.ShippingMethod
	if err := r.db.WithContext(ctx).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *shippingRepository) UpdateMethod(ctx context.Context, method *db_models.ShippingMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *shippingRepository) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ShippingMethod{}, "id = ?", id).Error
}

func (r *shippingRepository) CreateShipment(ctx context.Context, shipment *db_models.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *shippingRepository) GetShipmentByTracking(ctx context.Context, trackingNumber string) (*db_models.Shipment, error) {
	var shipment db_models.Shipment
	err := r.db.WithContext(ctx).
		Preload("ShippingMethod").
		Where("tracking_number = ?", trackingNumber).
		First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *shippingRepository) ListShipmentsByContract(ctx context.Context, contractID uuid.UUID) ([]db_models.Shipment, error) {
	var shipments []db_models.Shipment
	err := r.db.WithContext(ctx).
		Where("rental_contract_id = ?", contractID).
		Order("created_at DESC").
		Find(&shipments).Error
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *shippingRepository) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status db_models.ShipmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Shipment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
