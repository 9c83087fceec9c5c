package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type LeasingController struct {
	leasingService services.LeasingServiceInterface
}

func NewLeasingController(leasingService services.LeasingServiceInterface) *LeasingController {
	return &LeasingController{
		leasingService: leasingService,
	}
}

// CreateCategory godoc
// @Summary Create a rental category
// @Tags Leasing
// @Accept json
// @Produce json
// @Param request body request_models.CreateRentalCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/categories [post]
func (l *LeasingController) CreateCategory(c *gin.Context) {
	var req request_models.CreateRentalCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := l.leasingService.CreateCategory(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category created successfully")
}

// ListCategories godoc
// @Summary List rental categories
// @Tags Leasing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /leasing/categories [get]
func (l *LeasingController) ListCategories(c *gin.Context) {
	categories, err := l.leasingService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// CreateProduct godoc
// @Summary Create a rental product
// @Tags Leasing
// @Accept json
// @Produce json
// @Param request body request_models.CreateRentalProductRequest true "Product payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/products [post]
func (l *LeasingController) CreateProduct(c *gin.Context) {
	var req request_models.CreateRentalProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := l.leasingService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, product, "Rental product created successfully")
}

// GetProduct godoc
// @Summary Get a rental product with its plans
// @Tags Leasing
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /leasing/products/{id} [get]
func (l *LeasingController) GetProduct(c *gin.Context) {
	product, err := l.leasingService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Rental product fetched successfully")
}

// ListProducts godoc
// @Summary List rental products
// @Tags Leasing
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /leasing/products [get]
func (l *LeasingController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, err := l.leasingService.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Rental products fetched successfully")
}

// CreatePlan godoc
// @Summary Create a rental plan
// @Description A product carries at most one plan per billing period
// @Tags Leasing
// @Accept json
// @Produce json
// @Param request body request_models.CreateRentalPlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/plans [post]
func (l *LeasingController) CreatePlan(c *gin.Context) {
	var req request_models.CreateRentalPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := l.leasingService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Rental plan created successfully")
}

// ListPlans godoc
// @Summary List plans of a rental product
// @Tags Leasing
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Router /leasing/products/{id}/plans [get]
func (l *LeasingController) ListPlans(c *gin.Context) {
	plans, err := l.leasingService.ListPlans(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Rental plans fetched successfully")
}

// Quote godoc
// @Summary Calculate a rental quote
// @Description Price a rental for a product, period and date range without creating anything
// @Tags Leasing
// @Accept json
// @Produce json
// @Param request body request_models.QuoteRequest true "Quote payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /leasing/quote [post]
func (l *LeasingController) Quote(c *gin.Context) {
	var req request_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	quote, err := l.leasingService.Quote(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quote, "Quote calculated successfully")
}

// CreateContract godoc
// @Summary Create a rental contract
// @Description Prices the rental like a quote and stores the contract with its document
// @Tags Leasing
// @Accept json
// @Produce json
// @Param request body request_models.CreateContractRequest true "Contract payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/contracts [post]
func (l *LeasingController) CreateContract(c *gin.Context) {
	var req request_models.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customerID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	contract, err := l.leasingService.CreateContract(c.Request.Context(), customerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, contract, "Rental contract created successfully")
}

// GetContract godoc
// @Summary Get a rental contract
// @Tags Leasing
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/contracts/{id} [get]
func (l *LeasingController) GetContract(c *gin.Context) {
	contract, err := l.leasingService.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contract, "Rental contract fetched successfully")
}

// ListContracts godoc
// @Summary List the caller's rental contracts
// @Tags Leasing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/contracts [get]
func (l *LeasingController) ListContracts(c *gin.Context) {
	customerID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	contracts, err := l.leasingService.ListContracts(c.Request.Context(), customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contracts, "Rental contracts fetched successfully")
}

// UpdateContractStatus godoc
// @Summary Update a contract status
// @Tags Leasing
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body request_models.UpdateContractStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/contracts/{id}/status [put]
func (l *LeasingController) UpdateContractStatus(c *gin.Context) {
	var req request_models.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := l.leasingService.UpdateContractStatus(c.Request.Context(), c.Param("id"), db_models.ContractStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contract status updated successfully")
}

// SignContract godoc
// @Summary Sign a rental contract
// @Tags Leasing
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leasing/contracts/{id}/sign [post]
func (l *LeasingController) SignContract(c *gin.Context) {
	if err := l.leasingService.SignContract(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contract signed successfully")
}
