package review

type CreateReviewRequest struct {
	HotelID   int64  `json:"hotel_id" binding:"required"`
	BookingID *int64 `json:"booking_id"`

	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`

	CleanlinessRating *int `json:"cleanliness_rating" binding:"omitempty,gte=1,lte=5"`
	ServiceRating     *int `json:"service_rating" binding:"omitempty,gte=1,lte=5"`
	LocationRating    *int `json:"location_rating" binding:"omitempty,gte=1,lte=5"`
	ValueRating       *int `json:"value_rating" binding:"omitempty,gte=1,lte=5"`
	AmenitiesRating   *int `json:"amenities_rating" binding:"omitempty,gte=1,lte=5"`

	IsAnonymous bool     `json:"is_anonymous"`
	StayDate    string   `json:"stay_date"`
	ImageURLs   []string `json:"image_urls" binding:"omitempty,max=10,dive,url"`
}

type VoteRequest struct {
	IsHelpful *bool `json:"is_helpful" binding:"required"`
}

type RespondRequest struct {
	Content string `json:"content" binding:"required"`
}
