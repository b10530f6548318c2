package domain

import "time"

type RoomCategory string

const (
	RoomSingle       RoomCategory = "single"
	RoomDouble       RoomCategory = "double"
	RoomTwin         RoomCategory = "twin"
	RoomTriple       RoomCategory = "triple"
	RoomQuad         RoomCategory = "quad"
	RoomSuite        RoomCategory = "suite"
	RoomJuniorSuite  RoomCategory = "junior_suite"
	RoomPresidential RoomCategory = "presidential_suite"
	RoomDeluxe       RoomCategory = "deluxe"
	RoomStandard     RoomCategory = "standard"
	RoomSuperior     RoomCategory = "superior"
	RoomFamily       RoomCategory = "family"
	RoomStudio       RoomCategory = "studio"
	RoomApartment    RoomCategory = "apartment"
	RoomVilla        RoomCategory = "villa"
	RoomPenthouse    RoomCategory = "penthouse"
)

type BedType string

const (
	BedSingle BedType = "single"
	BedDouble BedType = "double"
	BedQueen  BedType = "queen"
	BedKing   BedType = "king"
	BedTwin   BedType = "twin"
	BedSofa   BedType = "sofa_bed"
	BedBunk   BedType = "bunk_bed"
)

type RoomType struct {
	ID           int64        `json:"id"`
	Name         RoomCategory `json:"name" validate:"required"`
	DisplayName  string       `json:"display_name,omitempty"`
	Description  string       `json:"description,omitempty"`
	MaxOccupancy int          `json:"max_occupancy"`
	MaxAdults    int          `json:"max_adults"`
	MaxChildren  int          `json:"max_children"`
	BedType      BedType      `json:"bed_type"`
	BedCount     int          `json:"bed_count"`
	RoomSize     *int         `json:"room_size,omitempty"`
	HasBalcony   bool         `json:"has_balcony"`
	HasSeaView   bool         `json:"has_sea_view"`
	HasCityView  bool         `json:"has_city_view"`
	HasGardenView bool        `json:"has_garden_view"`
}

type Room struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotel_id" validate:"required"`
	RoomTypeID int64  `json:"room_type_id" validate:"required"`
	RoomNumber string `json:"room_number" validate:"required"`
	Floor      *int   `json:"floor,omitempty"`

	BasePrice       float64  `json:"base_price" validate:"gte=0"`
	WeekendPrice    *float64 `json:"weekend_price,omitempty" validate:"omitempty,gte=0"`
	PeakSeasonPrice *float64 `json:"peak_season_price,omitempty" validate:"omitempty,gte=0"`

	SpecialFeatures  string `json:"special_features,omitempty"`
	IsAvailable      bool   `json:"is_available"`
	IsAccessible     bool   `json:"is_accessible"`
	IsSmokingAllowed bool   `json:"is_smoking_allowed"`
	MainImageURL     string `json:"main_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomType  *RoomType   `json:"room_type,omitempty"`
	Amenities []Amenity   `json:"amenities,omitempty"`
	Images    []RoomImage `json:"images,omitempty"`
}

// PriceForDate returns the nightly rate for one date. Weekend pricing
// (Friday, Saturday) wins over peak-season pricing (Jun-Aug, Dec),
// which wins over the base price. Each night is priced independently.
func (r *Room) PriceForDate(date time.Time) float64 {
	wd := date.Weekday()
	if (wd == time.Friday || wd == time.Saturday) && r.WeekendPrice != nil {
		return *r.WeekendPrice
	}

	switch date.Month() {
	case time.June, time.July, time.August, time.December:
		if r.PeakSeasonPrice != nil {
			return *r.PeakSeasonPrice
		}
	}

	return r.BasePrice
}

type RoomImage struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
