package payment

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	SumCompleted(ctx context.Context, bookingID int64) (float64, error)
	MarkRefundedByBooking(ctx context.Context, bookingID int64, at time.Time) (int64, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

type NotificationSender interface {
	NotifyPaymentRecorded(ctx context.Context, userID int64, p *domain.Payment)
}
