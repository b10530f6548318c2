package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 31
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumCompleted(ctx context.Context, bookingID int64) (float64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPaymentRepository) MarkRefundedByBooking(ctx context.Context, bookingID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, bookingID, at)
	return args.Get(0).(int64), args.Error(1)
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

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyPaymentRecorded(ctx context.Context, userID int64, p *domain.Payment) {
	m.Called(ctx, userID, p)
}

func newTestService() (*Service, *MockPaymentRepository, *MockBookingRepository, *MockNotificationSender) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	return NewService(payments, bookings, notifs), payments, bookings, notifs
}

func TestService_RecordPayment_ConfirmsPendingBooking(t *testing.T) {
	svc, payments, bookings, notifs := newTestService()

	b := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingPending, Currency: "USD", TotalAmount: 345}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.BookingID == 5 &&
			p.Status == domain.PaymentCompleted &&
			p.Currency == "USD" &&
			strings.HasPrefix(p.PaymentID, "PAY") &&
			p.ProcessedAt != nil
	})).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingConfirmed).Return(nil)
	notifs.On("NotifyPaymentRecorded", mock.Anything, int64(7), mock.Anything).Return()

	p, err := svc.RecordPayment(context.Background(), 7, false, RecordPaymentRequest{
		BookingID: 5,
		Amount:    345,
		Method:    "credit_card",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	bookings.AssertExpectations(t)
}

func TestService_RecordPayment_FailedDoesNotConfirm(t *testing.T) {
	svc, payments, bookings, notifs := newTestService()

	b := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingPending}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	notifs.On("NotifyPaymentRecorded", mock.Anything, int64(7), mock.Anything).Return()

	p, err := svc.RecordPayment(context.Background(), 7, false, RecordPaymentRequest{
		BookingID:     5,
		Amount:        345,
		Method:        "credit_card",
		Status:        "failed",
		FailureReason: "card declined",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, p.Status)
	assert.Nil(t, p.ProcessedAt)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RecordPayment_UnknownMethod(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.RecordPayment(context.Background(), 7, false, RecordPaymentRequest{
		BookingID: 5,
		Amount:    100,
		Method:    "barter",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_RecordPayment_ForbiddenForOtherUser(t *testing.T) {
	svc, _, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, Status: domain.BookingPending}, nil)

	_, err := svc.RecordPayment(context.Background(), 8, false, RecordPaymentRequest{
		BookingID: 5,
		Amount:    100,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_RecordPayment_RejectedOnCancelledBooking(t *testing.T) {
	svc, _, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, Status: domain.BookingCancelled}, nil)

	_, err := svc.RecordPayment(context.Background(), 7, false, RecordPaymentRequest{
		BookingID: 5,
		Amount:    100,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestService_BookingPayments_ReportsReconciliation(t *testing.T) {
	svc, payments, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, TotalAmount: 345}, nil)
	payments.On("ListByBooking", mock.Anything, int64(5)).Return([]domain.Payment{
		{ID: 1, Amount: 200, Status: domain.PaymentCompleted},
		{ID: 2, Amount: 100, Status: domain.PaymentCompleted},
	}, nil)
	payments.On("SumCompleted", mock.Anything, int64(5)).Return(300.0, nil)

	summary, err := svc.BookingPayments(context.Background(), 7, 5, false)

	assert.NoError(t, err)
	assert.Equal(t, 300.0, summary.PaidTotal)
	assert.Equal(t, 345.0, summary.BookingTotal)
	assert.False(t, summary.FullyPaid)
}

func TestService_RefundBooking_Success(t *testing.T) {
	svc, payments, bookings, _ := newTestService()

	b := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingCancelled}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	payments.On("MarkRefundedByBooking", mock.Anything, int64(5), mock.Anything).Return(int64(1), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingRefunded).Return(nil)

	_, err := svc.RefundBooking(context.Background(), 5)

	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestService_RefundBooking_InvalidFromPending(t *testing.T) {
	svc, _, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, Status: domain.BookingPending}, nil)

	_, err := svc.RefundBooking(context.Background(), 5)

	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestService_RefundBooking_NothingToRefund(t *testing.T) {
	svc, payments, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, Status: domain.BookingCancelled}, nil)
	payments.On("MarkRefundedByBooking", mock.Anything, int64(5), mock.Anything).Return(int64(0), nil)

	_, err := svc.RefundBooking(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNothingToRefund)
}

func TestService_RecordPayment_NotFound(t *testing.T) {
	svc, _, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordPayment(context.Background(), 7, false, RecordPaymentRequest{
		BookingID: 404,
		Amount:    100,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
