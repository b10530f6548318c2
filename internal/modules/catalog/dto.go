package catalog

type CreateHotelRequest struct {
	Name             string   `json:"name" binding:"required"`
	HotelType        string   `json:"hotel_type"`
	ChainID          *int64   `json:"chain_id"`
	CityID           int64    `json:"city_id" binding:"required"`
	Address          string   `json:"address" binding:"required"`
	PostalCode       string   `json:"postal_code"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Website          string   `json:"website"`
	Description      string   `json:"description" binding:"required"`
	ShortDescription string   `json:"short_description"`
	StarRating       int      `json:"star_rating" binding:"required,gte=1,lte=5"`
	BasePrice        float64  `json:"base_price" binding:"gte=0"`
	Currency         string   `json:"currency"`
	MainImageURL     string   `json:"main_image_url"`
	CheckInTime      string   `json:"check_in_time"`
	CheckOutTime     string   `json:"check_out_time"`
	SmokingPolicy    string   `json:"smoking_policy"`
	AmenityIDs       []int64  `json:"amenity_ids"`
}

type UpdateHotelRequest struct {
	Name             *string  `json:"name"`
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Website          *string  `json:"website"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description"`
	StarRating       *int     `json:"star_rating"`
	BasePrice        *float64 `json:"base_price"`
	MainImageURL     *string  `json:"main_image_url"`
	CheckInTime      *string  `json:"check_in_time"`
	CheckOutTime     *string  `json:"check_out_time"`
	SmokingPolicy    *string  `json:"smoking_policy"`
	IsActive         *bool    `json:"is_active"`
	AmenityIDs       []int64  `json:"amenity_ids"`
}

type CreateRoomRequest struct {
	RoomTypeID       int64    `json:"room_type_id" binding:"required"`
	RoomNumber       string   `json:"room_number" binding:"required"`
	Floor            *int     `json:"floor"`
	BasePrice        float64  `json:"base_price" binding:"gte=0"`
	WeekendPrice     *float64 `json:"weekend_price"`
	PeakSeasonPrice  *float64 `json:"peak_season_price"`
	SpecialFeatures  string   `json:"special_features"`
	IsAccessible     bool     `json:"is_accessible"`
	IsSmokingAllowed bool     `json:"is_smoking_allowed"`
	MainImageURL     string   `json:"main_image_url"`
}

type ListHotelsQuery struct {
	Location     string  `form:"location"`
	CityID       int64   `form:"city_id"`
	MinPrice     float64 `form:"min_price"`
	MaxPrice     float64 `form:"max_price"`
	Stars        int     `form:"stars"`
	MinRating    float64 `form:"min_rating"`
	AmenityIDs   []int64 `form:"amenities"`
	FeaturedOnly bool    `form:"featured"`
	Sort         string  `form:"sort"`
	Page         int     `form:"page"`
	PageSize     int     `form:"page_size"`
}
