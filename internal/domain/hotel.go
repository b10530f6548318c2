package domain

import "time"

type City struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Country     string    `json:"country" validate:"required"`
	State       string    `json:"state_province,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Timezone    string    `json:"timezone"`
	IsPopular   bool      `json:"is_popular"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HotelChain struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	LogoURL     string `json:"logo_url,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	StarRating  *int   `json:"star_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

type AmenityCategory string

const (
	AmenityGeneral       AmenityCategory = "general"
	AmenityRoom          AmenityCategory = "room"
	AmenityBathroom      AmenityCategory = "bathroom"
	AmenityEntertainment AmenityCategory = "entertainment"
	AmenityConnectivity  AmenityCategory = "connectivity"
	AmenityFoodDrink     AmenityCategory = "food_drink"
	AmenityWellness      AmenityCategory = "wellness"
	AmenityBusiness      AmenityCategory = "business"
	AmenityFamily        AmenityCategory = "family"
	AmenityAccessibility AmenityCategory = "accessibility"
)

type Amenity struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Category    AmenityCategory `json:"category" validate:"required"`
	Icon        string          `json:"icon,omitempty"`
	Description string          `json:"description,omitempty"`
	IsPremium   bool            `json:"is_premium"`
}

type HotelType string

const (
	HotelStandard   HotelType = "hotel"
	HotelResort     HotelType = "resort"
	HotelMotel      HotelType = "motel"
	HotelHostel     HotelType = "hostel"
	HotelApartment  HotelType = "apartment"
	HotelVilla      HotelType = "villa"
	HotelGuesthouse HotelType = "guesthouse"
	HotelBnB        HotelType = "bnb"
	HotelBoutique   HotelType = "boutique"
)

type SmokingPolicy string

const (
	SmokingForbidden  SmokingPolicy = "no_smoking"
	SmokingRooms      SmokingPolicy = "smoking_rooms"
	SmokingDesignated SmokingPolicy = "designated_areas"
)

type Hotel struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name" validate:"required"`
	Slug             string    `json:"slug"`
	HotelType        HotelType `json:"hotel_type"`
	ChainID          *int64    `json:"chain_id,omitempty"`
	CityID           int64     `json:"city_id" validate:"required"`
	Address          string    `json:"address" validate:"required"`
	PostalCode       string    `json:"postal_code,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty" validate:"omitempty,email"`
	Website          string    `json:"website,omitempty"`
	Description      string    `json:"description" validate:"required"`
	ShortDescription string    `json:"short_description,omitempty"`

	StarRating   int     `json:"star_rating" validate:"required,gte=1,lte=5"`
	GuestRating  float64 `json:"guest_rating"`
	TotalReviews int     `json:"total_reviews"`

	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Currency  string  `json:"currency"`

	MainImageURL string `json:"main_image_url,omitempty"`

	OwnerID       int64  `json:"owner_id"`
	LicenseNumber string `json:"license_number,omitempty"`
	TaxID         string `json:"tax_id,omitempty"`

	CheckInTime        string        `json:"check_in_time"`
	CheckOutTime       string        `json:"check_out_time"`
	CancellationPolicy string        `json:"cancellation_policy,omitempty"`
	PetPolicy          string        `json:"pet_policy,omitempty"`
	SmokingPolicy      SmokingPolicy `json:"smoking_policy"`

	IsActive         bool       `json:"is_active"`
	IsVerified       bool       `json:"is_verified"`
	IsFeatured       bool       `json:"is_featured"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	City      *City        `json:"city,omitempty"`
	Chain     *HotelChain  `json:"chain,omitempty"`
	Amenities []Amenity    `json:"amenities,omitempty"`
	Images    []HotelImage `json:"images,omitempty"`
	Rooms     []Room       `json:"rooms,omitempty"`
}

// RatingPercentage converts the guest rating to a 0-100 scale.
func (h *Hotel) RatingPercentage() float64 {
	return h.GuestRating / 5 * 100
}

type HotelImage struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
