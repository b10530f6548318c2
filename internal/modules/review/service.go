package review

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
	hotels   HotelRepository
	notifs   NotificationSender
}

func NewService(reviews ReviewRepository, bookings BookingRepository, hotels HotelRepository, notifs NotificationSender) *Service {
	return &Service{reviews: reviews, bookings: bookings, hotels: hotels, notifs: notifs}
}

// CreateReview requires a completed stay at the hotel. With a booking
// reference the review is marked verified, and one review per user per
// booking is enforced.
func (s *Service) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stayed, err := s.bookings.HasCompletedStay(ctx, userID, hotel.ID)
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, ErrNoStay
	}

	verified := false
	if req.BookingID != nil {
		b, err := s.bookings.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
		if b.UserID != userID || b.HotelID != hotel.ID {
			return nil, ErrValidation
		}
		exists, err := s.reviews.ExistsForBooking(ctx, userID, *req.BookingID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAlreadyExists
		}
		verified = true
	}

	rev := &domain.Review{
		UserID:            userID,
		HotelID:           hotel.ID,
		BookingID:         req.BookingID,
		Title:             req.Title,
		Content:           req.Content,
		Rating:            req.Rating,
		CleanlinessRating: req.CleanlinessRating,
		ServiceRating:     req.ServiceRating,
		LocationRating:    req.LocationRating,
		ValueRating:       req.ValueRating,
		AmenitiesRating:   req.AmenitiesRating,
		ReviewType:        domain.ReviewStay,
		IsVerified:        verified,
		IsAnonymous:       req.IsAnonymous,
		IsApproved:        true,
	}
	if req.StayDate != "" {
		if d, err := time.Parse("2006-01-02", req.StayDate); err == nil {
			rev.StayDate = &d
		}
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	for i, url := range req.ImageURLs {
		img := domain.ReviewImage{ReviewID: rev.ID, ImageURL: url, SortOrder: i}
		if err := s.reviews.AddImage(ctx, &img); err != nil {
			return nil, err
		}
		rev.Images = append(rev.Images, img)
	}

	if err := s.recalculateHotelRating(ctx, hotel.ID); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *Service) recalculateHotelRating(ctx context.Context, hotelID int64) error {
	avg, count, err := s.reviews.HotelRatingStats(ctx, hotelID)
	if err != nil {
		return err
	}
	return s.hotels.UpdateRating(ctx, hotelID, domain.RoundMoney(avg), int(count))
}

func (s *Service) HotelReviews(ctx context.Context, hotelID int64, f repository.ReviewFilters) ([]domain.Review, int64, error) {
	return s.reviews.ListByHotel(ctx, hotelID, f)
}

func (s *Service) MyReviews(ctx context.Context, userID int64) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if imgs, err := s.reviews.GetImages(ctx, reviews[i].ID); err == nil {
			reviews[i].Images = imgs
		}
	}
	return reviews, nil
}

// Vote records a helpfulness vote. Voting again replaces the previous
// vote; both counters are recomputed from the vote rows.
func (s *Service) Vote(ctx context.Context, userID, reviewID int64, isHelpful bool) (helpful, notHelpful int, err error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, err
	}
	if rev.UserID == userID {
		return 0, 0, ErrForbidden
	}

	if err := s.reviews.UpsertVote(ctx, &domain.ReviewHelpfulness{
		ReviewID:  reviewID,
		UserID:    userID,
		IsHelpful: isHelpful,
	}); err != nil {
		return 0, 0, err
	}

	return s.reviews.RecountHelpfulness(ctx, reviewID)
}

// Respond lets the hotel owner answer a review, once.
func (s *Service) Respond(ctx context.Context, responderID, reviewID int64, isAdmin bool, content string) (*domain.ReviewResponse, error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, rev.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel.OwnerID != responderID && !isAdmin {
		return nil, ErrForbidden
	}

	if _, err := s.reviews.GetResponse(ctx, reviewID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	resp := &domain.ReviewResponse{
		ReviewID:    reviewID,
		ResponderID: responderID,
		Content:     content,
	}
	if err := s.reviews.CreateResponse(ctx, resp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyReviewResponse(ctx, rev.UserID, reviewID)
	}
	return resp, nil
}

// Moderate approves or rejects a review and refreshes the hotel rating,
// since only approved reviews count toward it.
func (s *Service) Moderate(ctx context.Context, moderatorID, reviewID int64, approved bool, notes string) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.reviews.SetApproved(ctx, reviewID, approved, moderatorID, notes); err != nil {
		return err
	}
	return s.recalculateHotelRating(ctx, rev.HotelID)
}
