package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/services"
	"pixsoft/pkg/utils"
)

type MarketingController struct {
	marketingService services.MarketingServiceInterface
}

func NewMarketingController(marketingService services.MarketingServiceInterface) *MarketingController {
	return &MarketingController{
		marketingService: marketingService,
	}
}

// CreatePromotion godoc
// @Summary Create a promotion
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body request_models.CreatePromotionRequest true "Promotion payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/promotions [post]
func (m *MarketingController) CreatePromotion(c *gin.Context) {
	var req request_models.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	promotion, err := m.marketingService.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, promotion, "Promotion created successfully")
}

// ListPromotions godoc
// @Summary List promotions
// @Tags Marketing
// @Produce json
// @Param active query bool false "Only currently running promotions"
// @Success 200 {object} utils.APIResponse
// @Router /marketing/promotions [get]
func (m *MarketingController) ListPromotions(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	promotions, err := m.marketingService.ListPromotions(c.Request.Context(), activeOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotions, "Promotions fetched successfully")
}

// CreateCoupon godoc
// @Summary Create a coupon
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCouponRequest true "Coupon payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/coupons [post]
func (m *MarketingController) CreateCoupon(c *gin.Context) {
	var req request_models.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	coupon, err := m.marketingService.CreateCoupon(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, coupon, "Coupon created successfully")
}

// ValidateCoupon godoc
// @Summary Validate a coupon code
// @Description Reports validity and the discount it grants, without consuming a use
// @Tags Marketing
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /marketing/coupons/{code}/validate [get]
func (m *MarketingController) ValidateCoupon(c *gin.Context) {
	coupon, err := m.marketingService.ValidateCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coupon, "Coupon validated")
}

// RedeemCoupon godoc
// @Summary Redeem a coupon code
// @Description Consumes one use; concurrent redemptions cannot exceed the usage limit
// @Tags Marketing
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/coupons/{code}/redeem [post]
func (m *MarketingController) RedeemCoupon(c *gin.Context) {
	coupon, err := m.marketingService.RedeemCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coupon, "Coupon redeemed successfully")
}

// CreateCampaign godoc
// @Summary Create an email campaign
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCampaignRequest true "Campaign payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/campaigns [post]
func (m *MarketingController) CreateCampaign(c *gin.Context) {
	var req request_models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	campaign, err := m.marketingService.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, campaign, "Campaign created successfully")
}

// SendCampaign godoc
// @Summary Send an email campaign
// @Description Mails the campaign to all accounts or to newsletter subscribers, once
// @Tags Marketing
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/campaigns/{id}/send [post]
func (m *MarketingController) SendCampaign(c *gin.Context) {
	campaign, err := m.marketingService.SendCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, campaign, "Campaign sent successfully")
}

// CreateBanner godoc
// @Summary Create a banner
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body request_models.CreateBannerRequest true "Banner payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /marketing/banners [post]
func (m *MarketingController) CreateBanner(c *gin.Context) {
	var req request_models.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	banner, err := m.marketingService.CreateBanner(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, banner, "Banner created successfully")
}

// ListActiveBanners godoc
// @Summary List active banners
// @Tags Marketing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /marketing/banners [get]
func (m *MarketingController) ListActiveBanners(c *gin.Context) {
	banners, err := m.marketingService.ListActiveBanners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, banners, "Banners fetched successfully")
}
