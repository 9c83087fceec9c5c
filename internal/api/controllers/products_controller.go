package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type ProductsController struct {
	catalogService services.CatalogServiceInterface
}

func NewProductsController(catalogService services.CatalogServiceInterface) *ProductsController {
	return &ProductsController{
		catalogService: catalogService,
	}
}

// CreateCategory godoc
// @Summary Create a sale category
// @Description Create a category, optionally nested under a parent
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateSaleCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (p *ProductsController) CreateCategory(c *gin.Context) {
	var req request_models.CreateSaleCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := p.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

// ListCategories godoc
// @Summary List sale categories
// @Description Fetch the category tree, top level first
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (p *ProductsController) ListCategories(c *gin.Context) {
	categories, err := p.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// CreateProduct godoc
// @Summary Create a sale product
// @Description Add a product to the sale catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateSaleProductRequest true "Product payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products [post]
func (p *ProductsController) CreateProduct(c *gin.Context) {
	var req request_models.CreateSaleProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := p.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, product, "Product created successfully")
}

// UpdateProduct godoc
// @Summary Update a sale product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.UpdateSaleProductRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (p *ProductsController) UpdateProduct(c *gin.Context) {
	var req request_models.UpdateSaleProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := p.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product updated successfully")
}

// DeleteProduct godoc
// @Summary Delete a sale product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (p *ProductsController) DeleteProduct(c *gin.Context) {
	if err := p.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product deleted successfully")
}

// GetProduct godoc
// @Summary Get a sale product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (p *ProductsController) GetProduct(c *gin.Context) {
	product, err := p.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}

// ListProducts godoc
// @Summary List sale products
// @Description Paginated catalog listing, optionally only in-stock items
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param available query bool false "Only products with stock"
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (p *ProductsController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	onlyAvailable := c.Query("available") == "true"

	products, err := p.catalogService.ListProducts(c.Request.Context(), page, pageSize, onlyAvailable)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// Purchase godoc
// @Summary Purchase a sale product
// @Description Decrement stock for a direct purchase; fails with 409 when stock is short
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.PurchaseRequest true "Purchase payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id}/purchase [post]
func (p *ProductsController) Purchase(c *gin.Context) {
	var req request_models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.catalogService.Purchase(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Purchase completed successfully")
}
