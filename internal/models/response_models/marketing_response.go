package response_models

import "github.com/google/uuid"

type PromotionResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	DiscountPercentage string    `json:"discount_percentage"`
	StartsAt           int64     `json:"starts_at"`
	EndsAt             int64     `json:"ends_at"`
	IsActive           bool      `json:"is_active"`
	IsValid            bool      `json:"is_valid"`
}

type CouponValidationResponse struct {
	Code               string  `json:"code"`
	Valid              bool    `json:"valid"`
	DiscountAmount     *string `json:"discount_amount,omitempty"`
	DiscountPercentage *string `json:"discount_percentage,omitempty"`
}

type CampaignResponse struct {
	ID         uuid.UUID `json:"id"`
	Subject    string    `json:"subject"`
	Recipients string    `json:"recipients"`
	SentAt     *int64    `json:"sent_at,omitempty"`
	SentCount  int       `json:"sent_count,omitempty"`
}

type BannerResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	LinkURL  string    `json:"link_url,omitempty"`
	Position string    `json:"position"`
}
