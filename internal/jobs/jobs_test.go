package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) MarkNoShows(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) CheckedOutBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRequester struct {
	mock.Mock
}

func (m *mockRequester) NotifyReviewRequest(ctx context.Context, userID int64, b *domain.Booking) {
	m.Called(ctx, userID, b)
}

func TestRunner_MarkNoShowsTruncatesToDate(t *testing.T) {
	bookings := new(mockBookingRepo)
	now := time.Date(2027, 3, 10, 14, 37, 22, 0, time.UTC)
	midnight := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	bookings.On("MarkNoShows", mock.Anything, midnight).Return(int64(3), nil)

	r := NewRunner(bookings, nil, nil, zerolog.Nop())
	n, err := r.MarkNoShows(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	bookings.AssertExpectations(t)
}

func TestRunner_SendReviewRequestsCoversYesterday(t *testing.T) {
	bookings := new(mockBookingRepo)
	requester := new(mockRequester)

	now := time.Date(2027, 3, 10, 10, 0, 0, 0, time.UTC)
	from := time.Date(2027, 3, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)

	checkedOut := []domain.Booking{
		{ID: 1, UserID: 11, BookingReference: "BKAAAA1111"},
		{ID: 2, UserID: 22, BookingReference: "BKBBBB2222"},
	}
	bookings.On("CheckedOutBetween", mock.Anything, from, to).Return(checkedOut, nil)
	requester.On("NotifyReviewRequest", mock.Anything, int64(11), mock.Anything).Return()
	requester.On("NotifyReviewRequest", mock.Anything, int64(22), mock.Anything).Return()

	r := NewRunner(bookings, nil, requester, zerolog.Nop())
	n, err := r.SendReviewRequests(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	requester.AssertNumberOfCalls(t, "NotifyReviewRequest", 2)
}

func TestRunner_SendReviewRequestsPropagatesError(t *testing.T) {
	bookings := new(mockBookingRepo)
	bookings.On("CheckedOutBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	r := NewRunner(bookings, nil, new(mockRequester), zerolog.Nop())
	_, err := r.SendReviewRequests(context.Background(), time.Now())

	assert.Error(t, err)
}
