package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	"pixsoft/pkg/utils"
)

type MarketingServiceInterface interface {
	CreatePromotion(ctx context.Context, req request_models.CreatePromotionRequest) (*response_models.PromotionResponse, error)
	ListPromotions(ctx context.Context, activeOnly bool) ([]response_models.PromotionResponse, error)

	CreateCoupon(ctx context.Context, req request_models.CreateCouponRequest) (*response_models.CouponValidationResponse, error)
	ValidateCoupon(ctx context.Context, code string) (*response_models.CouponValidationResponse, error)

	// RedeemCoupon consumes one use. The usage counter is bumped with a
	// conditional UPDATE so two concurrent redemptions of the last use
	// cannot both succeed.
	RedeemCoupon(ctx context.Context, code string) (*response_models.CouponValidationResponse, error)

	CreateCampaign(ctx context.Context, req request_models.CreateCampaignRequest) (*response_models.CampaignResponse, error)
	SendCampaign(ctx context.Context, campaignID string) (*response_models.CampaignResponse, error)

	CreateBanner(ctx context.Context, req request_models.CreateBannerRequest) (*response_models.BannerResponse, error)
	ListActiveBanners(ctx context.Context) ([]response_models.BannerResponse, error)
}

func NewMarketingService(
	marketingRepo repositories.IMarketingRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) MarketingServiceInterface {
	return &MarketingService{
		marketingRepo: marketingRepo,
		accountRepo:   accountRepo,
		mailService:   mailService,
	}
}

type MarketingService struct {
	marketingRepo repositories.IMarketingRepository
	accountRepo   repositories.AccountRepository
	mailService   IMailService
}

func (s *MarketingService) CreatePromotion(ctx context.Context, req request_models.CreatePromotionRequest) (*response_models.PromotionResponse, error) {
	discount, err := decimal.NewFromString(req.DiscountPercentage)
	if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, utils.ErrInvalidDiscount
	}
	if req.EndsAt <= req.StartsAt {
		return nil, utils.ErrInvalidDateRange
	}

	promotion := &db_models.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		DiscountPercentage: discount,
		StartsAt:           req.StartsAt,
		EndsAt:             req.EndsAt,
		IsActive:           true,
	}
	if ids, err := json.Marshal(req.ProductIDs); err == nil && req.ProductIDs != nil {
		promotion.ProductIDs = ids
	}
	if ids, err := json.Marshal(req.CategoryIDs); err == nil && req.CategoryIDs != nil {
		promotion.CategoryIDs = ids
	}

	if err := s.marketingRepo.CreatePromotion(ctx, promotion); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPromotionResponse(promotion), nil
}

func (s *MarketingService) ListPromotions(ctx context.Context, activeOnly bool) ([]response_models.PromotionResponse, error) {
	promotions, err := s.marketingRepo.ListPromotions(ctx, activeOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		result = append(result, *toPromotionResponse(&promotions[i]))
	}
	return result, nil
}

func (s *MarketingService) CreateCoupon(ctx context.Context, req request_models.CreateCouponRequest) (*response_models.CouponValidationResponse, error) {
	if req.ValidTo <= req.ValidFrom {
		return nil, utils.ErrInvalidDateRange
	}

	coupon := &db_models.Coupon{
		Code:       req.Code,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		UsageLimit: req.UsageLimit,
		Active:     true,
	}
	if req.DiscountAmount != nil {
		amount, err := decimal.NewFromString(*req.DiscountAmount)
		if err != nil || amount.IsNegative() {
			return nil, utils.ErrInvalidAmount
		}
		coupon.DiscountAmount = &amount
	}
	if req.DiscountPercentage != nil {
		pct, err := decimal.NewFromString(*req.DiscountPercentage)
		if err != nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, utils.ErrInvalidDiscount
		}
		coupon.DiscountPercentage = &pct
	}

	if err := s.marketingRepo.CreateCoupon(ctx, coupon); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCouponResponse(coupon), nil
}

func (s *MarketingService) ValidateCoupon(ctx context.Context, code string) (*response_models.CouponValidationResponse, error) {
	coupon, err := s.marketingRepo.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if coupon == nil {
		return nil, utils.ErrCouponNotFound
	}
	return toCouponResponse(coupon), nil
}

func (s *MarketingService) RedeemCoupon(ctx context.Context, code string) (*response_models.CouponValidationResponse, error) {
	coupon, err := s.marketingRepo.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if coupon == nil {
		return nil, utils.ErrCouponNotFound
	}
	if !coupon.IsValid() {
		if coupon.UsedCount >= coupon.UsageLimit {
			return nil, utils.ErrCouponExhausted
		}
		return nil, utils.ErrCouponNotValid
	}

	redeemed, err := s.marketingRepo.RedeemCoupon(ctx, coupon.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !redeemed {
		return nil, utils.ErrCouponExhausted
	}
	coupon.UsedCount++
	return toCouponResponse(coupon), nil
}

func (s *MarketingService) CreateCampaign(ctx context.Context, req request_models.CreateCampaignRequest) (*response_models.CampaignResponse, error) {
	campaign := &db_models.Campaign{
		Subject:    req.Subject,
		Content:    req.Content,
		Recipients: db_models.CampaignRecipients(req.Recipients),
	}
	if err := s.marketingRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCampaignResponse(campaign, 0), nil
}

func (s *MarketingService) SendCampaign(ctx context.Context, campaignID string) (*response_models.CampaignResponse, error) {
	campaign, err := s.marketingRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if campaign == nil {
		return nil, utils.ErrCampaignNotFound
	}
	if campaign.SentAt != nil {
		return nil, utils.ErrCampaignAlreadySent
	}

	emails, err := s.accountRepo.ListEmails(ctx, campaign.Recipients == db_models.RecipientsSubscribers)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sent := 0
	for _, email := range emails {
		if err := s.mailService.SendCampaignMail(email, campaign.Subject, campaign.Content); err != nil {
			log.Printf("campaign %s: failed to send to %s: %v", campaign.ID, email, err)
			continue
		}
		sent++
	}

	if err := s.marketingRepo.MarkCampaignSent(ctx, campaign.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	now := utils.NowUnixSeconds()
	campaign.SentAt = &now

	return toCampaignResponse(campaign, sent), nil
}

func (s *MarketingService) CreateBanner(ctx context.Context, req request_models.CreateBannerRequest) (*response_models.BannerResponse, error) {
	banner := &db_models.Banner{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		IsActive: true,
	}
	if req.Position != "" {
		banner.Position = req.Position
	}
	if err := s.marketingRepo.CreateBanner(ctx, banner); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBannerResponse(banner), nil
}

func (s *MarketingService) ListActiveBanners(ctx context.Context) ([]response_models.BannerResponse, error) {
	banners, err := s.marketingRepo.ListActiveBanners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.BannerResponse, 0, len(banners))
	for i := range banners {
		result = append(result, *toBannerResponse(&banners[i]))
	}
	return result, nil
}

func toPromotionResponse(promotion *db_models.Promotion) *response_models.PromotionResponse {
	return &response_models.PromotionResponse{
		ID:                 promotion.ID,
		Name:               promotion.Name,
		Description:        promotion.Description,
		DiscountPercentage: promotion.DiscountPercentage.StringFixed(2),
		StartsAt:           promotion.StartsAt,
		EndsAt:             promotion.EndsAt,
		IsActive:           promotion.IsActive,
		IsValid:            promotion.IsValid(),
	}
}

func toCouponResponse(coupon *db_models.Coupon) *response_models.CouponValidationResponse {
	resp := &response_models.CouponValidationResponse{
		Code:  coupon.Code,
		Valid: coupon.IsValid(),
	}
	if coupon.DiscountAmount != nil {
		amount := coupon.DiscountAmount.StringFixed(2)
		resp.DiscountAmount = &amount
	}
	if coupon.DiscountPercentage != nil {
		pct := coupon.DiscountPercentage.StringFixed(2)
		resp.DiscountPercentage = &pct
	}
	return resp
}

func toCampaignResponse(campaign *db_models.Campaign, sentCount int) *response_models.CampaignResponse {
	return &response_models.CampaignResponse{
		ID:         campaign.ID,
		Subject:    campaign.Subject,
		Recipients: string(campaign.Recipients),
		SentAt:     campaign.SentAt,
		SentCount:  sentCount,
	}
}

func toBannerResponse(banner *db_models.Banner) *response_models.BannerResponse {
	return &response_models.BannerResponse{
		ID:       banner.ID,
		Title:    banner.Title,
		ImageURL: banner.ImageURL,
		LinkURL:  banner.LinkURL,
		Position: banner.Position,
	}
}
