package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	UserID    int64  `gorm:"column:user_id;uniqueIndex:idx_review_user_booking"`
	HotelID   int64  `gorm:"column:hotel_id;index"`
	BookingID *int64 `gorm:"column:booking_id;uniqueIndex:idx_review_user_booking"`

	Title   string `gorm:"column:title"`
	Content string `gorm:"column:content"`
	Rating  int    `gorm:"column:rating"`

	CleanlinessRating *int `gorm:"column:cleanliness_rating"`
	ServiceRating     *int `gorm:"column:service_rating"`
	LocationRating    *int `gorm:"column:location_rating"`
	ValueRating       *int `gorm:"column:value_rating"`
	AmenitiesRating   *int `gorm:"column:amenities_rating"`

	ReviewType  string `gorm:"column:review_type"`
	IsVerified  bool   `gorm:"column:is_verified"`
	IsAnonymous bool   `gorm:"column:is_anonymous"`

	IsApproved      bool    `gorm:"column:is_approved;index"`
	IsFeatured      bool    `gorm:"column:is_featured"`
	ModeratedBy     *int64  `gorm:"column:moderated_by"`
	ModerationNotes *string `gorm:"column:moderation_notes"`

	HelpfulCount    int `gorm:"column:helpful_count"`
	NotHelpfulCount int `gorm:"column:not_helpful_count"`

	StayDate  *time.Time `gorm:"column:stay_date"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

type reviewVoteModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ReviewID  int64     `gorm:"column:review_id;uniqueIndex:idx_vote_review_user"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_vote_review_user"`
	IsHelpful bool      `gorm:"column:is_helpful"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewVoteModel) TableName() string { return "review_helpfulness" }

type reviewImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ReviewID  int64     `gorm:"column:review_id;index"`
	ImageURL  string    `gorm:"column:image_url"`
	Caption   *string   `gorm:"column:caption"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewImageModel) TableName() string { return "review_images" }

type reviewResponseModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ReviewID    int64     `gorm:"column:review_id;uniqueIndex"`
	ResponderID int64     `gorm:"column:responder_id"`
	Content     string    `gorm:"column:content"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (reviewResponseModel) TableName() string { return "review_responses" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:                m.ID,
		UserID:            m.UserID,
		HotelID:           m.HotelID,
		BookingID:         m.BookingID,
		Title:             m.Title,
		Content:           m.Content,
		Rating:            m.Rating,
		CleanlinessRating: m.CleanlinessRating,
		ServiceRating:     m.ServiceRating,
		LocationRating:    m.LocationRating,
		ValueRating:       m.ValueRating,
		AmenitiesRating:   m.AmenitiesRating,
		ReviewType:        domain.ReviewType(m.ReviewType),
		IsVerified:        m.IsVerified,
		IsAnonymous:       m.IsAnonymous,
		IsApproved:        m.IsApproved,
		IsFeatured:        m.IsFeatured,
		ModeratedBy:       m.ModeratedBy,
		ModerationNotes:   strOrEmpty(m.ModerationNotes),
		HelpfulCount:      m.HelpfulCount,
		NotHelpfulCount:   m.NotHelpfulCount,
		StayDate:          m.StayDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	m := reviewModel{
		UserID:            rev.UserID,
		HotelID:           rev.HotelID,
		BookingID:         rev.BookingID,
		Title:             rev.Title,
		Content:           rev.Content,
		Rating:            rev.Rating,
		CleanlinessRating: rev.CleanlinessRating,
		ServiceRating:     rev.ServiceRating,
		LocationRating:    rev.LocationRating,
		ValueRating:       rev.ValueRating,
		AmenitiesRating:   rev.AmenitiesRating,
		ReviewType:        string(rev.ReviewType),
		IsVerified:        rev.IsVerified,
		IsAnonymous:       rev.IsAnonymous,
		IsApproved:        rev.IsApproved,
		StayDate:          rev.StayDate,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rev = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

// ExistsForBooking reports whether the user already reviewed the booking.
func (r *ReviewRepository) ExistsForBooking(ctx context.Context, userID, bookingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

type ReviewFilters struct {
	MinRating int
	Sort      string // recent, helpful, rating_high, rating_low
	Limit     int
	Offset    int
}

// ListByHotel returns approved reviews only.
func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID int64, f ReviewFilters) ([]domain.Review, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("hotel_id = ? AND is_approved = ?", hotelID, true)
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "helpful":
		q = q.Order("helpful_count DESC")
	case "rating_high":
		q = q.Order("rating DESC")
	case "rating_low":
		q = q.Order("rating")
	default:
		q = q.Order("created_at DESC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var ms []reviewModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out, total, nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var ms []reviewModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

// UpsertVote records or replaces the user's helpfulness vote.
// Re-voting the same way is a no-op thanks to the update clause.
func (r *ReviewRepository) UpsertVote(ctx context.Context, vote *domain.ReviewHelpfulness) error {
	m := reviewVoteModel{
		ReviewID:  vote.ReviewID,
		UserID:    vote.UserID,
		IsHelpful: vote.IsHelpful,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_helpful"}),
		}).
		Create(&m).Error
}

// RecountHelpfulness recomputes both counters from the vote rows so the
// cached columns can never drift after a changed vote.
func (r *ReviewRepository) RecountHelpfulness(ctx context.Context, reviewID int64) (helpful, notHelpful int, err error) {
	var h, n int64
	if err = r.db.WithContext(ctx).
		Model(&reviewVoteModel{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, true).
		Count(&h).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).
		Model(&reviewVoteModel{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, false).
		Count(&n).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", reviewID).
		Updates(map[string]any{
			"helpful_count":     h,
			"not_helpful_count": n,
		}).Error
	return int(h), int(n), err
}

// HotelRatingStats returns the average rating and count over approved
// reviews; (0, 0) when the hotel has none.
func (r *ReviewRepository) HotelRatingStats(ctx context.Context, hotelID int64) (avg float64, count int64, err error) {
	row := struct {
		Avg   float64
		Count int64
	}{}
	err = r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("hotel_id = ? AND is_approved = ?", hotelID, true).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func (r *ReviewRepository) SetApproved(ctx context.Context, reviewID int64, approved bool, moderatorID int64, notes string) error {
	return r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", reviewID).
		Updates(map[string]any{
			"is_approved":      approved,
			"moderated_by":     moderatorID,
			"moderation_notes": notes,
		}).Error
}

func (r *ReviewRepository) CreateResponse(ctx context.Context, resp *domain.ReviewResponse) error {
	m := reviewResponseModel{
		ReviewID:    resp.ReviewID,
		ResponderID: resp.ResponderID,
		Content:     resp.Content,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	resp.ID = m.ID
	resp.CreatedAt = m.CreatedAt
	resp.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ReviewRepository) GetResponse(ctx context.Context, reviewID int64) (*domain.ReviewResponse, error) {
	var m reviewResponseModel
	tx := r.db.WithContext(ctx).Where("review_id = ?", reviewID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.ReviewResponse{
		ID:          m.ID,
		ReviewID:    m.ReviewID,
		ResponderID: m.ResponderID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func (r *ReviewRepository) AddImage(ctx context.Context, img *domain.ReviewImage) error {
	m := reviewImageModel{
		ReviewID:  img.ReviewID,
		ImageURL:  img.ImageURL,
		Caption:   strOrNil(img.Caption),
		SortOrder: img.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	img.ID = m.ID
	img.CreatedAt = m.CreatedAt
	return nil
}

func (r *ReviewRepository) GetImages(ctx context.Context, reviewID int64) ([]domain.ReviewImage, error) {
	var ms []reviewImageModel
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("sort_order").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReviewImage, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.ReviewImage{
			ID:        m.ID,
			ReviewID:  m.ReviewID,
			ImageURL:  m.ImageURL,
			Caption:   strOrEmpty(m.Caption),
			SortOrder: m.SortOrder,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
