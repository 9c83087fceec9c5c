package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
	"pixsoft/pkg/utils"
)

type IInvoiceRepository interface {
	Create(ctx context.Context, invoice *db_models.Invoice) error
	GetByID(ctx context.Context, id string) (*db_models.Invoice, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Invoice, error)

	// RecordPayment stores the payment and, when it completes the invoice,
	// flips the invoice to PAID in the same transaction.
	RecordPayment(ctx context.Context, payment *db_models.Payment, markPaid bool) error
}

func NewInvoiceRepository(db *gorm.DB) IInvoiceRepository {
	return &invoiceRepository{db: db}
}

type invoiceRepository struct {
	db *gorm.DB
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *db_models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*db_models.Invoice, error) {
	var invoice db_models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Payments").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Invoice, error) {
	var invoices []db_models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) RecordPayment(ctx context.Context, payment *db_models.Payment, markPaid bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if !markPaid {
			return nil
		}
		return tx.Model(&db_models.Invoice{}).
			Where("id = ?", payment.InvoiceID).
			Updates(map[string]interface{}{
				"status":  db_models.InvoiceStatusPaid,
				"paid_at": utils.NowUnixSeconds(),
			}).Error
	})
}
