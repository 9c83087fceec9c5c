package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/pkg/utils"
)

type fakeMarketingRepo struct {
	promotions map[uuid.UUID]*db_models.Promotion
	coupons    map[uuid.UUID]*db_models.Coupon
	campaigns  map[uuid.UUID]*db_models.Campaign
	banners    map[uuid.UUID]*db_models.Banner
}

func newFakeMarketingRepo() *fakeMarketingRepo {
	return &fakeMarketingRepo{
		promotions: make(map[uuid.UUID]*db_models.Promotion),
		coupons:    make(map[uuid.UUID]*db_models.Coupon),
		campaigns:  make(map[uuid.UUID]*db_models.Campaign),
		banners:    make(map[uuid.UUID]*db_models.Banner),
	}
}

func (f *fakeMarketingRepo) CreatePromotion(_ context.Context, promotion *db_models.Promotion) error {
	promotion.ID = uuid.New()
	f.promotions[promotion.ID] = promotion
	return nil
}

func (f *fakeMarketingRepo) ListPromotions(_ context.Context, activeOnly bool) ([]db_models.Promotion, error) {
	var out []db_models.Promotion
	for _, p := range f.promotions {
		if activeOnly && !p.IsValid() {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeMarketingRepo) CreateCoupon(_ context.Context, coupon *db_models.Coupon) error {
	coupon.ID = uuid.New()
	f.coupons[coupon.ID] = coupon
	return nil
}

func (f *fakeMarketingRepo) GetCouponByCode(_ context.Context, code string) (*db_models.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeMarketingRepo) RedeemCoupon(_ context.Context, id uuid.UUID) (bool, error) {
	c := f.coupons[id]
	if c == nil || c.UsedCount >= c.UsageLimit {
		return false, nil
	}
	c.UsedCount++
	return true, nil
}

func (f *fakeMarketingRepo) CreateCampaign(_ context.Context, campaign *db_models.Campaign) error {
	campaign.ID = uuid.New()
	f.campaigns[campaign.ID] = campaign
	return nil
}

func (f *fakeMarketingRepo) GetCampaignByID(_ context.Context, id string) (*db_models.Campaign, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.campaigns[parsed], nil
}

func (f *fakeMarketingRepo) MarkCampaignSent(_ context.Context, id uuid.UUID) error {
	if c, ok := f.campaigns[id]; ok {
		now := utils.NowUnixSeconds()
		c.SentAt = &now
	}
	return nil
}

func (f *fakeMarketingRepo) CreateBanner(_ context.Context, banner *db_models.Banner) error {
	banner.ID = uuid.New()
	f.banners[banner.ID] = banner
	return nil
}

func (f *fakeMarketingRepo) ListActiveBanners(_ context.Context) ([]db_models.Banner, error) {
	var out []db_models.Banner
	for _, b := range f.banners {
		if b.IsActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	allEmails        []string
	subscriberEmails []string
}

func (f *fakeAccountRepo) InsertTx(_ *db_models.Account, _ context.Context) error { return nil }
func (f *fakeAccountRepo) FindById(_ context.Context, _ string) (*db_models.Account, error) {
	return nil, nil
}
func (f *fakeAccountRepo) FindByEmail(_ context.Context, _ string) (*db_models.Account, error) {
	return nil, nil
}
func (f *fakeAccountRepo) UpdatePasswordByEmail(_ context.Context, _, _ string) error { return nil }
func (f *fakeAccountRepo) ListEmails(_ context.Context, subscribersOnly bool) ([]string, error) {
	if subscribersOnly {
		return f.subscriberEmails, nil
	}
	return f.allEmails, nil
}
func (f *fakeAccountRepo) GetProfile(_ context.Context, _ uuid.UUID) (*db_models.Profile, error) {
	return nil, nil
}
func (f *fakeAccountRepo) UpsertProfile(_ context.Context, _ *db_models.Profile) error { return nil }

type fakeMailService struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeMailService) SendMailToNotifyUser(_, _, _, _, _ string) error { return nil }
func (f *fakeMailService) SendMailToResetPassword(_, _ string) error       { return nil }
func (f *fakeMailService) SendCampaignMail(to, _, _ string) error {
	if f.failFor[to] {
		return errors.New("smtp failure")
	}
	f.sent = append(f.sent, to)
	return nil
}

type marketingTestEnv struct {
	service       MarketingServiceInterface
	marketingRepo *fakeMarketingRepo
	accountRepo   *fakeAccountRepo
	mail          *fakeMailService
}

func newMarketingTestEnv() *marketingTestEnv {
	marketingRepo := newFakeMarketingRepo()
	accountRepo := &fakeAccountRepo{
		allEmails:        []string{"a@example.com", "b@example.com", "c@example.com"},
		subscriberEmails: []string{"a@example.com"},
	}
	mail := &fakeMailService{failFor: make(map[string]bool)}
	return &marketingTestEnv{
		service:       NewMarketingService(marketingRepo, accountRepo, mail),
		marketingRepo: marketingRepo,
		accountRepo:   accountRepo,
		mail:          mail,
	}
}

func (e *marketingTestEnv) coupon(code string, usageLimit, usedCount int) *db_models.Coupon {
	now := time.Now().Unix()
	coupon := &db_models.Coupon{
		Code:       code,
		ValidFrom:  now - 3600,
		ValidTo:    now + 3600,
		UsageLimit: usageLimit,
		UsedCount:  usedCount,
		Active:     true,
	}
	coupon.ID = uuid.New()
	e.marketingRepo.coupons[coupon.ID] = coupon
	return coupon
}

func TestValidateCoupon(t *testing.T) {
	env := newMarketingTestEnv()
	env.coupon("SAVE10", 5, 0)

	resp, err := env.service.ValidateCoupon(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	_, err = env.service.ValidateCoupon(context.Background(), "NOPE")
	assert.ErrorIs(t, err, utils.ErrCouponNotFound)
}

func TestRedeemCouponConsumesOneUse(t *testing.T) {
	env := newMarketingTestEnv()
	coupon := env.coupon("SAVE10", 2, 0)

	_, err := env.service.RedeemCoupon(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsedCount)

	_, err = env.service.RedeemCoupon(context.Background(), "SAVE10")
	require.NoError(t, err)

	_, err = env.service.RedeemCoupon(context.Background(), "SAVE10")
	assert.ErrorIs(t, err, utils.ErrCouponExhausted)
	assert.Equal(t, 2, coupon.UsedCount)
}

func TestRedeemExpiredCoupon(t *testing.T) {
	env := newMarketingTestEnv()
	coupon := env.coupon("OLD", 5, 0)
	coupon.ValidTo = time.Now().Unix() - 60

	_, err := env.service.RedeemCoupon(context.Background(), "OLD")
	assert.ErrorIs(t, err, utils.ErrCouponNotValid)
}

func TestSendCampaignToSubscribers(t *testing.T) {
	env := newMarketingTestEnv()

	campaign, err := env.service.CreateCampaign(context.Background(), request_models.CreateCampaignRequest{
		Subject:    "Spring rentals",
		Content:    "<p>New copiers in stock</p>",
		Recipients: "SUBSCRIBERS",
	})
	require.NoError(t, err)

	sent, err := env.service.SendCampaign(context.Background(), campaign.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, sent.SentCount)
	assert.Equal(t, []string{"a@example.com"}, env.mail.sent)
	assert.NotNil(t, sent.SentAt)
}

func TestSendCampaignSkipsFailedRecipients(t *testing.T) {
	env := newMarketingTestEnv()
	env.mail.failFor["b@example.com"] = true

	campaign, err := env.service.CreateCampaign(context.Background(), request_models.CreateCampaignRequest{
		Subject:    "Clearance",
		Content:    "<p>Everything must go</p>",
		Recipients: "ALL",
	})
	require.NoError(t, err)

	sent, err := env.service.SendCampaign(context.Background(), campaign.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 2, sent.SentCount)
	assert.NotContains(t, env.mail.sent, "b@example.com")
}

func TestSendCampaignOnlyOnce(t *testing.T) {
	env := newMarketingTestEnv()

	campaign, err := env.service.CreateCampaign(context.Background(), request_models.CreateCampaignRequest{
		Subject:    "One shot",
		Content:    "<p>Only once</p>",
		Recipients: "ALL",
	})
	require.NoError(t, err)

	_, err = env.service.SendCampaign(context.Background(), campaign.ID.String())
	require.NoError(t, err)

	_, err = env.service.SendCampaign(context.Background(), campaign.ID.String())
	assert.ErrorIs(t, err, utils.ErrCampaignAlreadySent)
}

func TestCreatePromotionRejectsMalformedDiscount(t *testing.T) {
	env := newMarketingTestEnv()
	now := time.Now().Unix()

	for _, discount := range []string{"ten", "-1", "150"} {
		_, err := env.service.CreatePromotion(context.Background(), request_models.CreatePromotionRequest{
			Name:               "Bad discount",
			DiscountPercentage: discount,
			StartsAt:           now - 3600,
			EndsAt:             now + 3600,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidDiscount, "discount %q", discount)
	}
}

func TestCreateCouponRejectsMalformedDiscount(t *testing.T) {
	env := newMarketingTestEnv()
	now := time.Now().Unix()

	badAmount := "-5.00"
	_, err := env.service.CreateCoupon(context.Background(), request_models.CreateCouponRequest{
		Code:           "BAD",
		DiscountAmount: &badAmount,
		ValidFrom:      now - 3600,
		ValidTo:        now + 3600,
		UsageLimit:     5,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)

	badPct := "101"
	_, err = env.service.CreateCoupon(context.Background(), request_models.CreateCouponRequest{
		Code:               "BAD",
		DiscountPercentage: &badPct,
		ValidFrom:          now - 3600,
		ValidTo:            now + 3600,
		UsageLimit:         5,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDiscount)
}

func TestPromotionWindowValidation(t *testing.T) {
	env := newMarketingTestEnv()
	now := time.Now().Unix()

	_, err := env.service.CreatePromotion(context.Background(), request_models.CreatePromotionRequest{
		Name:               "Backwards",
		DiscountPercentage: "10.00",
		StartsAt:           now + 3600,
		EndsAt:             now,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	promo, err := env.service.CreatePromotion(context.Background(), request_models.CreatePromotionRequest{
		Name:               "Spring sale",
		DiscountPercentage: "15.00",
		StartsAt:           now - 3600,
		EndsAt:             now + 3600,
	})
	require.NoError(t, err)
	assert.True(t, promo.IsValid)

	active, err := env.service.ListPromotions(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
