package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// IssueInvoice godoc
// @Summary Issue an invoice
// @Description Bills exactly one of an order or a rental contract
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateInvoiceRequest true "Invoice payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/invoices [post]
func (b *BillingController) IssueInvoice(c *gin.Context) {
	var req request_models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	invoice, err := b.billingService.IssueInvoice(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, invoice, "Invoice issued successfully")
}

// GetInvoice godoc
// @Summary Get an invoice with its payments
// @Tags Billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/invoices/{id} [get]
func (b *BillingController) GetInvoice(c *gin.Context) {
	invoice, err := b.billingService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice fetched successfully")
}

// ListInvoices godoc
// @Summary List the caller's invoices
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/invoices [get]
func (b *BillingController) ListInvoices(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	invoices, err := b.billingService.ListInvoices(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoices, "Invoices fetched successfully")
}

// RecordPayment godoc
// @Summary Record a payment against an invoice
// @Description A payment covering the invoice amount marks it PAID
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request_models.RecordPaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/invoices/{id}/payments [post]
func (b *BillingController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	invoice, err := b.billingService.RecordPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Payment recorded successfully")
}
