package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ProfileResponse struct {
	FatherLastName  string `json:"ap_p"`
	MotherLastName  string `json:"ap_m"`
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
	PhoneNumber     string `json:"phone_number"`
}

type AccountResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	NewsletterOptIn bool             `json:"newsletter_opt_in"`
	Profile         *ProfileResponse `json:"profile,omitempty"`
}
