package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type CartController struct {
	cartService services.CartServiceInterface
}

func NewCartController(cartService services.CartServiceInterface) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

func (ct *CartController) currentAccount(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return accountID, true
}

// GetCart godoc
// @Summary Get the caller's cart
// @Description Returns the cart with resolved line prices and the running total
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cart [get]
func (ct *CartController) GetCart(c *gin.Context) {
	accountID, ok := ct.currentAccount(c)
	if !ok {
		return
	}

	cart, err := ct.cartService.GetCart(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "Cart fetched successfully")
}

// AddItem godoc
// @Summary Add an item to the cart
// @Description Adds a sale or rental line; re-adding the same line overwrites its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body request_models.AddCartItemRequest true "Cart item payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cart/items [post]
func (ct *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := ct.currentAccount(c)
	if !ok {
		return
	}

	item, err := ct.cartService.AddItem(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item added to cart")
}

// UpdateItem godoc
// @Summary Change a cart item quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body request_models.UpdateCartItemRequest true "Quantity payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cart/items/{id} [put]
func (ct *CartController) UpdateItem(c *gin.Context) {
	var req request_models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := ct.currentAccount(c)
	if !ok {
		return
	}

	item, err := ct.cartService.UpdateItemQuantity(c.Request.Context(), accountID, c.Param("id"), req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Cart item updated")
}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cart/items/{id} [delete]
func (ct *CartController) RemoveItem(c *gin.Context) {
	accountID, ok := ct.currentAccount(c)
	if !ok {
		return
	}

	if err := ct.cartService.RemoveItem(c.Request.Context(), accountID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cart item removed")
}
