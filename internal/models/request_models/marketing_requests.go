package request_models

type CreatePromotionRequest struct {
	Name               string   `json:"name" binding:"required,max=255"`
	Description        string   `json:"description"`
	DiscountPercentage string   `json:"discount_percentage" binding:"required"`
	StartsAt           int64    `json:"starts_at" binding:"required"`
	EndsAt             int64    `json:"ends_at" binding:"required"`
	ProductIDs         []string `json:"product_ids" binding:"omitempty,dive,uuid4"`
	CategoryIDs        []string `json:"category_ids" binding:"omitempty,dive,uuid4"`
}

type CreateCouponRequest struct {
	Code               string  `json:"code" binding:"required,max=50"`
	DiscountAmount     *string `json:"discount_amount"`
	DiscountPercentage *string `json:"discount_percentage"`
	ValidFrom          int64   `json:"valid_from" binding:"required"`
	ValidTo            int64   `json:"valid_to" binding:"required"`
	UsageLimit         int     `json:"usage_limit" binding:"gt=0"`
}

type CreateCampaignRequest struct {
	Subject    string `json:"subject" binding:"required,max=255"`
	Content    string `json:"content" binding:"required"`
	Recipients string `json:"recipients" binding:"required,oneof=ALL SUBSCRIBERS"`
}

type CreateBannerRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	ImageURL string `json:"image_url" binding:"required"`
	LinkURL  string `json:"link_url"`
	Position string `json:"position"`
}
