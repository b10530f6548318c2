package domain

import "time"

type ReviewType string

const (
	ReviewStay     ReviewType = "stay"
	ReviewService  ReviewType = "service"
	ReviewFacility ReviewType = "facility"
)

type Review struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	HotelID   int64  `json:"hotel_id"`
	BookingID *int64 `json:"booking_id,omitempty"`

	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`

	CleanlinessRating *int `json:"cleanliness_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	ServiceRating     *int `json:"service_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	LocationRating    *int `json:"location_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	ValueRating       *int `json:"value_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	AmenitiesRating   *int `json:"amenities_rating,omitempty" validate:"omitempty,gte=1,lte=5"`

	ReviewType  ReviewType `json:"review_type"`
	IsVerified  bool       `json:"is_verified"`
	IsAnonymous bool       `json:"is_anonymous"`

	IsApproved      bool   `json:"is_approved"`
	IsFeatured      bool   `json:"is_featured"`
	ModeratedBy     *int64 `json:"moderated_by,omitempty"`
	ModerationNotes string `json:"-"`

	HelpfulCount    int `json:"helpful_count"`
	NotHelpfulCount int `json:"not_helpful_count"`

	StayDate  *time.Time `json:"stay_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Images   []ReviewImage   `json:"images,omitempty"`
	Response *ReviewResponse `json:"response,omitempty"`
}

// AverageDetailedRating averages the sub-ratings that were provided,
// falling back to the overall rating when none were.
func (r *Review) AverageDetailedRating() float64 {
	var sum, n int
	for _, v := range []*int{r.CleanlinessRating, r.ServiceRating, r.LocationRating, r.ValueRating, r.AmenitiesRating} {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return float64(r.Rating)
	}
	return float64(sum) / float64(n)
}

func (r *Review) HelpfulnessRatio() float64 {
	total := r.HelpfulCount + r.NotHelpfulCount
	if total == 0 {
		return 0
	}
	return float64(r.HelpfulCount) / float64(total) * 100
}

// ReviewHelpfulness is one user's vote on one review; at most one row
// per (review, user).
type ReviewHelpfulness struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	UserID    int64     `json:"user_id"`
	IsHelpful bool      `json:"is_helpful"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewImage struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewResponse is the hotel owner's reply, one per review.
type ReviewResponse struct {
	ID          int64     `json:"id"`
	ReviewID    int64     `json:"review_id"`
	ResponderID int64     `json:"responder_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
