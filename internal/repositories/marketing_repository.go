package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
	"pixsoft/pkg/utils"
)

type IMarketingRepository interface {
	CreatePromotion(ctx context.Context, promotion *db_models.Promotion) error
	ListPromotions(ctx context.Context, activeOnly bool) ([]db_models.Promotion, error)

	CreateCoupon(ctx context.Context, coupon *db_models.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*db_models.Coupon, error)

	// RedeemCoupon bumps used_count only while it is below the usage limit,
	// in a single conditional UPDATE. Reports whether the redemption counted.
	RedeemCoupon(ctx context.Context, id uuid.UUID) (bool, error)

	CreateCampaign(ctx context.Context, campaign *db_models.Campaign) error
	GetCampaignByID(ctx context.Context, id string) (*db_models.Campaign, error)
	MarkCampaignSent(ctx context.Context, id uuid.UUID) error

	CreateBanner(ctx context.Context, banner *db_models.Banner) error
	ListActiveBanners(ctx context.Context) ([]db_models.Banner, error)
}

func NewMarketingRepository(db *gorm.DB) IMarketingRepository {
	return &marketingRepository{db: db}
}

type marketingRepository struct {
	db *gorm.DB
}

func (r *marketingRepository) CreatePromotion(ctx context.Context, promotion *db_models.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *marketingRepository) ListPromotions(ctx context.Context, activeOnly bool) ([]db_models.Promotion, error) {
	var promotions []db_models.Promotion
	query := r.db.WithContext(ctx)
	if activeOnly {
		now := utils.NowUnixSeconds()
		query = query.Where("is_active = TRUE AND starts_at <= ? AND ends_at >= ?", now, now)
	}
	if err := query.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *marketingRepository) CreateCoupon(ctx context.Context, coupon *db_models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *marketingRepository) GetCouponByCode(ctx context.Context, code string) (*db_models.Coupon, error) {
	var coupon db_models.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *marketingRepository) RedeemCoupon(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Coupon{}).
		Where("id = ? AND used_count < usage_limit", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *marketingRepository) CreateCampaign(ctx context.Context, campaign *db_models.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *marketingRepository) GetCampaignByID(ctx context.Context, id string) (*db_models.Campaign, error) {
	var campaign db_models.Campaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *marketingRepository) MarkCampaignSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Campaign{}).
		Where("id = ?", id).
		Update("sent_at", utils.NowUnixSeconds()).Error
}

func (r *marketingRepository) CreateBanner(ctx context.Context, banner *db_models.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *marketingRepository) ListActiveBanners(ctx context.Context) ([]db_models.Banner, error) {
	var banners []db_models.Banner
	err := r.db.WithContext(ctx).Where("is_active = TRUE").Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}
