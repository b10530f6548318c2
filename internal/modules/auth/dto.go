package auth

import "hotelbooking/internal/domain"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  string `json:"user_type"`
	Phone     string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	AddressLine1    *string `json:"address_line_1"`
	AddressLine2    *string `json:"address_line_2"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	PostalCode      *string `json:"postal_code"`
	Country         *string `json:"country"`
	Currency        *string `json:"preferred_currency"`
	NewsletterOptIn *bool   `json:"newsletter_subscription"`
	Bio             *string `json:"bio"`
	Website         *string `json:"website"`
	TravelStyle     *string `json:"travel_style"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	SessionToken string       `json:"session_token"`
	User         *domain.User `json:"user"`
}
