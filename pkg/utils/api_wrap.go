package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

func respondErrorData(c *gin.Context, code int, message string, data interface{}) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

// HandleServiceError maps service layer sentinels onto HTTP responses.
// Anything unrecognized is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	var stockErr *InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		respondErrorData(c, http.StatusConflict, stockErr.Error(),
			gin.H{"available_stock": stockErr.Available})
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrContractNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrInvoiceNotFound),
		errors.Is(err, ErrShipmentNotFound),
		errors.Is(err, ErrShippingMethodNotFound),
		errors.Is(err, ErrCouponNotFound),
		errors.Is(err, ErrPromotionNotFound),
		errors.Is(err, ErrCampaignNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrSkuAlreadyExists),
		errors.Is(err, ErrPlanAlreadyExists),
		errors.Is(err, ErrInvoiceAlreadyPaid),
		errors.Is(err, ErrCampaignAlreadySent),
		errors.Is(err, ErrCouponExhausted):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrInvalidRentalPeriod),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidDiscount),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidProductKind),
		errors.Is(err, ErrPlanNotAllowed),
		errors.Is(err, ErrPlanRequired),
		errors.Is(err, ErrPlanProductMismatch),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInvoiceTargetNeeded),
		errors.Is(err, ErrCouponNotValid):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
