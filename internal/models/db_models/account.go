package db_models

import "github.com/google/uuid"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"size:20;default:'user'"`

	// Marketing campaigns with SUBSCRIBERS recipients only reach opted-in accounts.
	NewsletterOptIn bool `gorm:"default:false"`

	Profile *Profile `gorm:"foreignKey:AccountID"`
}

type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`

	FatherLastName  string
	MotherLastName  string
	ShippingAddress string
	BillingAddress  string
	PhoneNumber     string
}
