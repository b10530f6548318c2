package review

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ExistsForBooking(ctx context.Context, userID, bookingID int64) (bool, error)
	ListByHotel(ctx context.Context, hotelID int64, f repository.ReviewFilters) ([]domain.Review, int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	UpsertVote(ctx context.Context, vote *domain.ReviewHelpfulness) error
	RecountHelpfulness(ctx context.Context, reviewID int64) (helpful, notHelpful int, err error)
	HotelRatingStats(ctx context.Context, hotelID int64) (avg float64, count int64, err error)
	SetApproved(ctx context.Context, reviewID int64, approved bool, moderatorID int64, notes string) error
	CreateResponse(ctx context.Context, resp *domain.ReviewResponse) error
	GetResponse(ctx context.Context, reviewID int64) (*domain.ReviewResponse, error)
	AddImage(ctx context.Context, img *domain.ReviewImage) error
	GetImages(ctx context.Context, reviewID int64) ([]domain.ReviewImage, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	HasCompletedStay(ctx context.Context, userID, hotelID int64) (bool, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	UpdateRating(ctx context.Context, hotelID int64, rating float64, totalReviews int) error
}

type NotificationSender interface {
	NotifyReviewResponse(ctx context.Context, userID int64, reviewID int64)
}
