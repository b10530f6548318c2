package domain

import "time"

// SiteSettings is a singleton row (pk=1) of site-wide tunables. Reads
// go through the cache layer; updates invalidate the cached copy.
type SiteSettings struct {
	ID              int64  `json:"id"`
	SiteName        string `json:"site_name"`
	SiteTagline     string `json:"site_tagline"`
	SiteDescription string `json:"site_description"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
	SupportEmail string `json:"support_email"`

	DefaultCurrency      string  `json:"default_currency"`
	DefaultTaxRate       float64 `json:"default_tax_rate"`
	ServiceFeePercentage float64 `json:"service_fee_percentage"`

	EnableReviews            bool `json:"enable_reviews"`
	EnableCoupons            bool `json:"enable_coupons"`
	EnableWishlists          bool `json:"enable_wishlists"`
	RequireEmailVerification bool `json:"require_email_verification"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	MaintenanceMode    bool   `json:"maintenance_mode"`
	MaintenanceMessage string `json:"maintenance_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSiteSettings seeds the singleton on first read.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:                       1,
		SiteName:                 "BookingMVP",
		SiteTagline:              "Your Perfect Stay Awaits",
		SiteDescription:          "Book amazing hotels worldwide",
		ContactEmail:             "contact@bookingmvp.com",
		SupportEmail:             "support@bookingmvp.com",
		DefaultCurrency:          "USD",
		DefaultTaxRate:           0.10,
		ServiceFeePercentage:     0.05,
		EnableReviews:            true,
		EnableCoupons:            true,
		EnableWishlists:          true,
		RequireEmailVerification: true,
	}
}

type EmailTemplateType string

const (
	TemplateBookingConfirmation EmailTemplateType = "booking_confirmation"
	TemplateBookingCancellation EmailTemplateType = "booking_cancellation"
	TemplatePaymentConfirmation EmailTemplateType = "payment_confirmation"
	TemplateWelcomeEmail        EmailTemplateType = "welcome_email"
	TemplatePasswordReset       EmailTemplateType = "password_reset"
	TemplateReviewRequest       EmailTemplateType = "review_request"
)

// EmailTemplate bodies use {{variable}} placeholders substituted at
// send time.
type EmailTemplate struct {
	ID        int64             `json:"id"`
	Name      EmailTemplateType `json:"name"`
	Subject   string            `json:"subject"`
	Content   string            `json:"content"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
