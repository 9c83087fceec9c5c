package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
)

type IRentalContractRepository interface {
	Create(ctx context.Context, contract *db_models.RentalContract) error
	GetByID(ctx context.Context, id string) (*db_models.RentalContract, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.RentalContract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ContractStatus) error
	MarkSigned(ctx context.Context, id uuid.UUID) error
}

func NewRentalContractRepository(db *gorm.DB) IRentalContractRepository {
	return &rentalContractRepository{db: db}
}

type rentalContractRepository struct {
	db *gorm.DB
}

func (r *rentalContractRepository) Create(ctx context.Context, contract *db_models.RentalContract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *rentalContractRepository) GetByID(ctx context.Context, id string) (*db_models.RentalContract, error) {
	var contract db_models.RentalContract
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Plan").
		First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (r *rentalContractRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.RentalContract, error) {
	var contracts []db_models.RentalContract
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Plan").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *rentalContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ContractStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.RentalContract{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *rentalContractRepository) MarkSigned(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.RentalContract{}).
		Where("id = ?", id).
		Update("is_signed", true).Error
}
