package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	// Accounts
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	// Catalog / leasing
	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrPlanNotFound        = errors.New("rental plan not found")
	ErrContractNotFound    = errors.New("rental contract not found")
	ErrSkuAlreadyExists    = errors.New("sku already exists")
	ErrPlanAlreadyExists   = errors.New("a plan with this period already exists for the product")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
	ErrInvalidDateRange    = errors.New("end date must be after start date")
	ErrInvalidPrice        = errors.New("price must be a non-negative decimal number")
	ErrInvalidAmount       = errors.New("amount must be a positive decimal number")
	ErrInvalidDiscount     = errors.New("discount must be a decimal between 0 and 100")

	// Cart / orders
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidProductKind  = errors.New("product kind must be SALE or RENTAL")
	ErrPlanNotAllowed      = errors.New("sale products cannot have a rental plan")
	ErrPlanRequired        = errors.New("a rental plan is required for rental products")
	ErrPlanProductMismatch = errors.New("the rental plan does not belong to this product")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOrderNotFound       = errors.New("order not found")

	// Billing / shipping / marketing
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid     = errors.New("invoice is already paid")
	ErrInvoiceTargetNeeded    = errors.New("an invoice needs an order or a rental contract")
	ErrShipmentNotFound       = errors.New("shipment not found")
	ErrShippingMethodNotFound = errors.New("shipping method not found")
	ErrCouponNotFound         = errors.New("coupon not found")
	ErrCouponNotValid         = errors.New("coupon is not valid")
	ErrCouponExhausted        = errors.New("coupon usage limit reached")
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignAlreadySent    = errors.New("campaign has already been sent")
)

// InsufficientStockError carries the quantity still available so the caller
// can adjust the request.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d unit(s) left", e.Available)
}
