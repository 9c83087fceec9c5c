package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type BillingServiceInterface interface {
	// IssueInvoice bills exactly one of an order or a rental contract for the
	// given account, taking the amount from the billed record.
	IssueInvoice(ctx context.Context, accountID uuid.UUID, req request_models.CreateInvoiceRequest) (*response_models.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*response_models.InvoiceResponse, error)
	ListInvoices(ctx context.Context, accountID uuid.UUID) ([]response_models.InvoiceResponse, error)

	// RecordPayment stores a completed payment; when it covers the invoice
	// amount the invoice flips to PAID. Paying an already paid invoice fails.
	RecordPayment(ctx context.Context, invoiceID string, req request_models.RecordPaymentRequest) (*response_models.InvoiceResponse, error)
}

func NewBillingService(
	invoiceRepo repositories.IInvoiceRepository,
	orderRepo repositories.IOrderRepository,
	contractRepo repositories.IRentalContractRepository,
) BillingServiceInterface {
	return &BillingService{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		contractRepo: contractRepo,
	}
}

type BillingService struct {
	invoiceRepo  repositories.IInvoiceRepository
	orderRepo    repositories.IOrderRepository
	contractRepo repositories.IRentalContractRepository
}

func (s *BillingService) IssueInvoice(ctx context.Context, accountID uuid.UUID, req request_models.CreateInvoiceRequest) (*response_models.InvoiceResponse, error) {
	if (req.OrderID == nil) == (req.RentalContractID == nil) {
		return nil, utils.ErrInvoiceTargetNeeded
	}

	invoice := &db_models.Invoice{
		AccountID: accountID,
		Status:    db_models.InvoiceStatusPending,
		DueAt:     req.DueAt,
	}

	if req.OrderID != nil {
		order, err := s.orderRepo.GetByID(ctx, accountID, *req.OrderID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if order == nil {
			return nil, utils.ErrOrderNotFound
		}
		invoice.OrderID = &order.ID
		invoice.Amount = order.TotalPrice
	} else {
		contract, err := s.contractRepo.GetByID(ctx, *req.RentalContractID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if contract == nil {
			return nil, utils.ErrContractNotFound
		}
		invoice.RentalContractID = &contract.ID
		invoice.Amount = contract.TotalCost
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toInvoiceResponse(invoice), nil
}

func (s *BillingService) GetInvoice(ctx context.Context, id string) (*response_models.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}
	return toInvoiceResponse(invoice), nil
}

func (s *BillingService) ListInvoices(ctx context.Context, accountID uuid.UUID) ([]response_models.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		result = append(result, *toInvoiceResponse(&invoices[i]))
	}
	return result, nil
}

func (s *BillingService) RecordPayment(ctx context.Context, invoiceID string, req request_models.RecordPaymentRequest) (*response_models.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}
	if invoice.Status == db_models.InvoiceStatusPaid {
		return nil, utils.ErrInvoiceAlreadyPaid
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, utils.ErrInvalidAmount
	}

	payment := &db_models.Payment{
		InvoiceID:     invoice.ID,
		Amount:        amount,
		Method:        db_models.PaymentMethod(req.Method),
		TransactionID: req.TransactionID,
		Status:        db_models.PaymentStatusCompleted,
	}

	markPaid := amount.GreaterThanOrEqual(invoice.Amount)
	if err := s.invoiceRepo.RecordPayment(ctx, payment, markPaid); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toInvoiceResponse(updated), nil
}

func toInvoiceResponse(invoice *db_models.Invoice) *response_models.InvoiceResponse {
	resp := &response_models.InvoiceResponse{
		ID:               invoice.ID,
		InvoiceNumber:    invoice.InvoiceNumber,
		Amount:           invoice.Amount.StringFixed(2),
		Status:           string(invoice.Status),
		OrderID:          invoice.OrderID,
		RentalContractID: invoice.RentalContractID,
		IssuedAt:         invoice.CreatedAt,
		DueAt:            invoice.DueAt,
		PaidAt:           invoice.PaidAt,
	}
	for i := range invoice.Payments {
		p := &invoice.Payments[i]
		resp.Payments = append(resp.Payments, response_models.PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount.StringFixed(2),
			Method:        string(p.Method),
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt,
		})
	}
	return resp
}
