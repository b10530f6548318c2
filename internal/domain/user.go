package domain

import "time"

type UserType string

const (
	TypeCustomer   UserType = "customer"
	TypeHotelOwner UserType = "hotel_owner"
	TypeAdmin      UserType = "admin"
)

// PhonePattern is the accepted guest phone format: optional +, 9-15 digits.
const PhonePattern = `^\+?1?\d{9,15}$`

type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email" validate:"required,email"`
	PasswordHash       string    `json:"-"`
	UserType           UserType  `json:"user_type"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	AddressLine1       string    `json:"address_line_1,omitempty"`
	AddressLine2       string    `json:"address_line_2,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	PostalCode         string    `json:"postal_code,omitempty"`
	Country            string    `json:"country,omitempty"`
	PreferredCurrency  string    `json:"preferred_currency"`
	NewsletterOptIn    bool      `json:"newsletter_subscription"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Profile *UserProfile `json:"profile,omitempty"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsStaff() bool { return u.UserType == TypeAdmin }

type TravelStyle string

const (
	TravelBudget    TravelStyle = "budget"
	TravelLuxury    TravelStyle = "luxury"
	TravelBusiness  TravelStyle = "business"
	TravelFamily    TravelStyle = "family"
	TravelAdventure TravelStyle = "adventure"
)

// UserProfile holds optional profile data, one row per user.
type UserProfile struct {
	ID               int64       `json:"id"`
	UserID           int64       `json:"user_id"`
	Bio              string      `json:"bio,omitempty"`
	Website          string      `json:"website,omitempty"`
	TravelStyle      TravelStyle `json:"travel_style,omitempty"`
	EmailVerified    bool        `json:"email_verified"`
	PhoneVerified    bool        `json:"phone_verified"`
	IdentityVerified bool        `json:"identity_verified"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
