package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	args := m.Called(ctx, rev)
	if rev != nil {
		rev.ID = 51
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, userID, bookingID int64) (bool, error) {
	args := m.Called(ctx, userID, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByHotel(ctx context.Context, hotelID int64, f repository.ReviewFilters) ([]domain.Review, int64, error) {
	args := m.Called(ctx, hotelID, f)
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) UpsertVote(ctx context.Context, vote *domain.ReviewHelpfulness) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockReviewRepository) RecountHelpfulness(ctx context.Context, reviewID int64) (int, int, error) {
	args := m.Called(ctx, reviewID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockReviewRepository) HotelRatingStats(ctx context.Context, hotelID int64) (float64, int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) SetApproved(ctx context.Context, reviewID int64, approved bool, moderatorID int64, notes string) error {
	args := m.Called(ctx, reviewID, approved, moderatorID, notes)
	return args.Error(0)
}

func (m *MockReviewRepository) CreateResponse(ctx context.Context, resp *domain.ReviewResponse) error {
	args := m.Called(ctx, resp)
	if resp != nil {
		resp.ID = 61
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetResponse(ctx context.Context, reviewID int64) (*domain.ReviewResponse, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewResponse), args.Error(1)
}

func (m *MockReviewRepository) AddImage(ctx context.Context, img *domain.ReviewImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockReviewRepository) GetImages(ctx context.Context, reviewID int64) ([]domain.ReviewImage, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReviewImage), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasCompletedStay(ctx context.Context, userID, hotelID int64) (bool, error) {
	args := m.Called(ctx, userID, hotelID)
	return args.Bool(0), args.Error(1)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) UpdateRating(ctx context.Context, hotelID int64, rating float64, totalReviews int) error {
	args := m.Called(ctx, hotelID, rating, totalReviews)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyReviewResponse(ctx context.Context, userID int64, reviewID int64) {
	m.Called(ctx, userID, reviewID)
}

func newTestService() (*Service, *MockReviewRepository, *MockBookingRepository, *MockHotelRepository, *MockNotificationSender) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingRepository)
	hotels := new(MockHotelRepository)
	notifs := new(MockNotificationSender)
	return NewService(reviews, bookings, hotels, notifs), reviews, bookings, hotels, notifs
}

func bid(v int64) *int64 { return &v }

func TestService_CreateReview_VerifiedWithBooking(t *testing.T) {
	svc, reviews, bookings, hotels, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	bookings.On("HasCompletedStay", mock.Anything, int64(7), int64(1)).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, HotelID: 1}, nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(7), int64(5)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
		return r.IsVerified && r.IsApproved && r.Rating == 4
	})).Return(nil)
	reviews.On("HotelRatingStats", mock.Anything, int64(1)).Return(4.0, int64(1), nil)
	hotels.On("UpdateRating", mock.Anything, int64(1), 4.0, 1).Return(nil)

	rev, err := svc.CreateReview(context.Background(), 7, CreateReviewRequest{
		HotelID:   1,
		BookingID: bid(5),
		Title:     "Great stay",
		Content:   "Would come again",
		Rating:    4,
	})

	assert.NoError(t, err)
	assert.True(t, rev.IsVerified)
	hotels.AssertExpectations(t)
}

func TestService_CreateReview_StoresImages(t *testing.T) {
	svc, reviews, bookings, hotels, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	bookings.On("HasCompletedStay", mock.Anything, int64(7), int64(1)).Return(true, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("AddImage", mock.Anything, mock.MatchedBy(func(img *domain.ReviewImage) bool {
		return img.ImageURL == "https://img.example.com/room.jpg" && img.SortOrder == 0
	})).Return(nil)
	reviews.On("AddImage", mock.Anything, mock.MatchedBy(func(img *domain.ReviewImage) bool {
		return img.ImageURL == "https://img.example.com/view.jpg" && img.SortOrder == 1
	})).Return(nil)
	reviews.On("HotelRatingStats", mock.Anything, int64(1)).Return(5.0, int64(1), nil)
	hotels.On("UpdateRating", mock.Anything, int64(1), 5.0, 1).Return(nil)

	rev, err := svc.CreateReview(context.Background(), 7, CreateReviewRequest{
		HotelID: 1,
		Title:   "Great view",
		Content: "Pictures attached",
		Rating:  5,
		ImageURLs: []string{
			"https://img.example.com/room.jpg",
			"https://img.example.com/view.jpg",
		},
	})

	assert.NoError(t, err)
	assert.Len(t, rev.Images, 2)
	reviews.AssertExpectations(t)
}

func TestService_CreateReview_DuplicateBookingRejected(t *testing.T) {
	svc, reviews, bookings, hotels, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	bookings.On("HasCompletedStay", mock.Anything, int64(7), int64(1)).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, HotelID: 1}, nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(7), int64(5)).Return(true, nil)

	_, err := svc.CreateReview(context.Background(), 7, CreateReviewRequest{
		HotelID:   1,
		BookingID: bid(5),
		Title:     "Again",
		Content:   "Again",
		Rating:    5,
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_CreateReview_RequiresCompletedStay(t *testing.T) {
	svc, _, bookings, hotels, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	bookings.On("HasCompletedStay", mock.Anything, int64(7), int64(1)).Return(false, nil)

	_, err := svc.CreateReview(context.Background(), 7, CreateReviewRequest{
		HotelID: 1,
		Title:   "Never stayed",
		Content: "...",
		Rating:  1,
	})

	assert.ErrorIs(t, err, ErrNoStay)
}

func TestService_CreateReview_OtherUsersBookingRejected(t *testing.T) {
	svc, _, bookings, hotels, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	bookings.On("HasCompletedStay", mock.Anything, int64(7), int64(1)).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 8, HotelID: 1}, nil)

	_, err := svc.CreateReview(context.Background(), 7, CreateReviewRequest{
		HotelID:   1,
		BookingID: bid(5),
		Title:     "t",
		Content:   "c",
		Rating:    3,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Vote_ChangedVoteRecounts(t *testing.T) {
	svc, reviews, _, _, _ := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, UserID: 8}, nil)
	reviews.On("UpsertVote", mock.Anything, mock.MatchedBy(func(v *domain.ReviewHelpfulness) bool {
		return v.ReviewID == 51 && v.UserID == 7 && !v.IsHelpful
	})).Return(nil)
	// The user flipped helpful -> not helpful: counts come out 0 and 1.
	reviews.On("RecountHelpfulness", mock.Anything, int64(51)).Return(0, 1, nil)

	helpful, notHelpful, err := svc.Vote(context.Background(), 7, 51, false)

	assert.NoError(t, err)
	assert.Equal(t, 0, helpful)
	assert.Equal(t, 1, notHelpful)
}

func TestService_Vote_OwnReviewForbidden(t *testing.T) {
	svc, reviews, _, _, _ := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, UserID: 7}, nil)

	_, _, err := svc.Vote(context.Background(), 7, 51, true)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Respond_OwnerOnly(t *testing.T) {
	svc, reviews, _, hotels, _ := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, UserID: 7, HotelID: 1}, nil)
	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1, OwnerID: 9}, nil)

	_, err := svc.Respond(context.Background(), 8, 51, false, "thanks")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Respond_SecondResponseRejected(t *testing.T) {
	svc, reviews, _, hotels, _ := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, UserID: 7, HotelID: 1}, nil)
	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1, OwnerID: 9}, nil)
	reviews.On("GetResponse", mock.Anything, int64(51)).Return(&domain.ReviewResponse{ID: 61}, nil)

	_, err := svc.Respond(context.Background(), 9, 51, false, "thanks again")

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Respond_Success(t *testing.T) {
	svc, reviews, _, hotels, notifs := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, UserID: 7, HotelID: 1}, nil)
	hotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{ID: 1, OwnerID: 9}, nil)
	reviews.On("GetResponse", mock.Anything, int64(51)).Return(nil, gorm.ErrRecordNotFound)
	reviews.On("CreateResponse", mock.Anything, mock.AnythingOfType("*domain.ReviewResponse")).Return(nil)
	notifs.On("NotifyReviewResponse", mock.Anything, int64(7), int64(51)).Return()

	resp, err := svc.Respond(context.Background(), 9, 51, false, "thank you")

	assert.NoError(t, err)
	assert.Equal(t, int64(61), resp.ID)
	notifs.AssertExpectations(t)
}

func TestService_Moderate_RefreshesRating(t *testing.T) {
	svc, reviews, _, hotels, _ := newTestService()

	reviews.On("GetByID", mock.Anything, int64(51)).Return(&domain.Review{ID: 51, HotelID: 1, Rating: 1}, nil)
	reviews.On("SetApproved", mock.Anything, int64(51), false, int64(2), "spam").Return(nil)
	reviews.On("HotelRatingStats", mock.Anything, int64(1)).Return(4.5, int64(2), nil)
	hotels.On("UpdateRating", mock.Anything, int64(1), 4.5, 2).Return(nil)

	err := svc.Moderate(context.Background(), 2, 51, false, "spam")

	assert.NoError(t, err)
	hotels.AssertExpectations(t)
}
