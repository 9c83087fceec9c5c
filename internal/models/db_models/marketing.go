package db_models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Promotion struct {
	BaseModel
	Name               string
	Description        string
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2)"` // 10.00 means 10%
	StartsAt           int64           `gorm:"not null"`
	EndsAt             int64           `gorm:"not null"`
	IsActive           bool            `gorm:"default:true"`

	// Targeted sale product / category ids.
	ProductIDs  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	CategoryIDs datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}

func (p *Promotion) IsValid() bool {
	now := time.Now().Unix()
	return p.IsActive && p.StartsAt <= now && now <= p.EndsAt
}

// Coupon discounts either a fixed amount or a percentage.
type Coupon struct {
	BaseModel
	Code               string           `gorm:"uniqueIndex"`
	DiscountAmount     *decimal.Decimal `gorm:"type:numeric(10,2)"`
	DiscountPercentage *decimal.Decimal `gorm:"type:numeric(5,2)"`
	ValidFrom          int64            `gorm:"not null"`
	ValidTo            int64            `gorm:"not null"`
	UsageLimit         int              `gorm:"default:100"`
	UsedCount          int              `gorm:"default:0"`
	Active             bool             `gorm:"default:true"`
}

func (c *Coupon) IsValid() bool {
	now := time.Now().Unix()
	return c.Active &&
		c.ValidFrom <= now && now <= c.ValidTo &&
		c.UsedCount < c.UsageLimit
}

type CampaignRecipients string

const (
	RecipientsAll         CampaignRecipients = "ALL"
	RecipientsSubscribers CampaignRecipients = "SUBSCRIBERS"
)

type Campaign struct {
	BaseModel
	Subject    string
	Content    string // HTML body
	Recipients CampaignRecipients `gorm:"size:20;default:'ALL'"`
	SentAt     *int64
}

type Banner struct {
	BaseModel
	Title    string
	ImageURL string
	LinkURL  string
	Position string `gorm:"size:50;default:'HOME_TOP'"`
	IsActive bool   `gorm:"default:true"`
}
