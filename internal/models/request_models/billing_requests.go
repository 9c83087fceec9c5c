package request_models

type CreateInvoiceRequest struct {
	OrderID          *string `json:"order_id" binding:"omitempty,uuid4"`
	RentalContractID *string `json:"rental_contract_id" binding:"omitempty,uuid4"`
	DueAt            *int64  `json:"due_at"`
}

type RecordPaymentRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Method        string `json:"method" binding:"required,oneof=STRIPE PAYPAL CARD TRANSFER"`
	TransactionID string `json:"transaction_id"`
}
