package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type OrdersController struct {
	orderService services.OrderServiceInterface
}

func NewOrdersController(orderService services.OrderServiceInterface) *OrdersController {
	return &OrdersController{
		orderService: orderService,
	}
}

// Checkout godoc
// @Summary Convert the cart into an order
// @Description Freezes current prices into the order and empties the cart in one transaction
// @Tags Orders
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [post]
func (o *OrdersController) Checkout(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	order, err := o.orderService.CreateOrderFromCart(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, order, "Order created successfully")
}

// GetOrder godoc
// @Summary Get one of the caller's orders
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (o *OrdersController) GetOrder(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	order, err := o.orderService.GetOrder(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order fetched successfully")
}

// ListOrders godoc
// @Summary List the caller's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /orders [get]
func (o *OrdersController) ListOrders(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	orders, err := o.orderService.ListOrders(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}
