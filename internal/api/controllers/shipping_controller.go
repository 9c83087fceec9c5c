package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type ShippingController struct {
	shippingService services.ShippingServiceInterface
}

func NewShippingController(shippingService services.ShippingServiceInterface) *ShippingController {
	return &ShippingController{
		shippingService: shippingService,
	}
}

// CreateMethod godoc
// @Summary Create a shipping method
// @Tags Shipping
// @Accept json
// @Produce json
// @Param request body request_models.CreateShippingMethodRequest true "Method payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/methods [post]
func (s *ShippingController) CreateMethod(c *gin.Context) {
	var req request_models.CreateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := s.shippingService.CreateMethod(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, method, "Shipping method created successfully")
}

// ListMethods godoc
// @Summary List shipping methods
// @Tags Shipping
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /shipping/methods [get]
func (s *ShippingController) ListMethods(c *gin.Context) {
	methods, err := s.shippingService.ListMethods(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, methods, "Shipping methods fetched successfully")
}

// UpdateMethod godoc
// @Summary Update a shipping method
// @Tags Shipping
// @Accept json
// @Produce json
// @Param id path string true "Method ID"
// @Param request body request_models.CreateShippingMethodRequest true "Method payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/methods/{id} [put]
func (s *ShippingController) UpdateMethod(c *gin.Context) {
	var req request_models.CreateShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := s.shippingService.UpdateMethod(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, method, "Shipping method updated successfully")
}

// DeleteMethod godoc
// @Summary Delete a shipping method
// @Tags Shipping
// @Produce json
// @Param id path string true "Method ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/methods/{id} [delete]
func (s *ShippingController) DeleteMethod(c *gin.Context) {
	if err := s.shippingService.DeleteMethod(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shipping method deleted successfully")
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Creates a shipment with a fresh tracking number, optionally tied to a rental contract
// @Tags Shipping
// @Accept json
// @Produce json
// @Param request body request_models.CreateShipmentRequest true "Shipment payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/shipments [post]
func (s *ShippingController) CreateShipment(c *gin.Context) {
	var req request_models.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	shipment, err := s.shippingService.CreateShipment(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, shipment, "Shipment created successfully")
}

// TrackShipment godoc
// @Summary Track a shipment by tracking number
// @Tags Shipping
// @Produce json
// @Param trackingNumber path string true "Tracking number"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /shipping/track/{trackingNumber} [get]
func (s *ShippingController) TrackShipment(c *gin.Context) {
	shipment, err := s.shippingService.TrackShipment(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shipment, "Shipment fetched successfully")
}

// ListByContract godoc
// @Summary List shipments of a rental contract
// @Tags Shipping
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/contracts/{id}/shipments [get]
func (s *ShippingController) ListByContract(c *gin.Context) {
	shipments, err := s.shippingService.ListShipmentsByContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shipments, "Shipments fetched successfully")
}

// UpdateStatus godoc
// @Summary Update a shipment status
// @Tags Shipping
// @Accept json
// @Produce json
// @Param trackingNumber path string true "Tracking number"
// @Param request body request_models.UpdateShipmentStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shipping/track/{trackingNumber}/status [put]
func (s *ShippingController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	shipment, err := s.shippingService.UpdateShipmentStatus(c.Request.Context(), c.Param("trackingNumber"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shipment, "Shipment status updated successfully")
}
