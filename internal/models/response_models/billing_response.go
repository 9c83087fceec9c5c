package response_models

import "github.com/google/uuid"

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     int64     `json:"created_at"`
}

type InvoiceResponse struct {
	ID               uuid.UUID         `json:"id"`
	InvoiceNumber    string            `json:"invoice_number"`
	Amount           string            `json:"amount"`
	Status           string            `json:"status"`
	OrderID          *uuid.UUID        `json:"order_id,omitempty"`
	RentalContractID *uuid.UUID        `json:"rental_contract_id,omitempty"`
	IssuedAt         int64             `json:"issued_at"`
	DueAt            *int64            `json:"due_at,omitempty"`
	PaidAt           *int64            `json:"paid_at,omitempty"`
	Payments         []PaymentResponse `json:"payments,omitempty"`
}
