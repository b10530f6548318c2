package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/token"
)

type Service struct {
	payments PaymentRepository
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(payments PaymentRepository, bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{payments: payments, bookings: bookings, notifs: notifs}
}

var validMethods = map[domain.PaymentMethod]bool{
	domain.MethodCreditCard:   true,
	domain.MethodDebitCard:    true,
	domain.MethodPayPal:       true,
	domain.MethodStripe:       true,
	domain.MethodBankTransfer: true,
	domain.MethodCash:         true,
	domain.MethodWallet:       true,
}

// RecordPayment stores a payment against the booking. A completed
// payment on a pending booking confirms it.
func (s *Service) RecordPayment(ctx context.Context, userID int64, isStaff bool, req RecordPaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.Method)
	if !validMethods[method] {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID && !isStaff {
		return nil, ErrForbidden
	}
	if !b.IsActive() {
		return nil, ErrBadStatus
	}

	status := domain.PaymentStatus(req.Status)
	if status == "" {
		status = domain.PaymentCompleted
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		PaymentID:     token.NewPaymentID(),
		BookingID:     b.ID,
		Amount:        domain.RoundMoney(req.Amount),
		Currency:      b.Currency,
		Method:        method,
		Status:        status,
		TransactionID: req.TransactionID,
		GatewayName:   req.GatewayName,
		FailureReason: req.FailureReason,
	}
	if status == domain.PaymentCompleted {
		p.ProcessedAt = &now
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if status == domain.PaymentCompleted && b.Status == domain.BookingPending {
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed); err != nil {
			return nil, err
		}
	}

	if s.notifs != nil {
		s.notifs.NotifyPaymentRecorded(ctx, b.UserID, p)
	}
	return p, nil
}

// BookingPayments returns the payment trail plus the paid-vs-total
// reconciliation for one booking.
func (s *Service) BookingPayments(ctx context.Context, userID, bookingID int64, isStaff bool) (*PaymentSummary, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID && !isStaff {
		return nil, ErrForbidden
	}

	payments, err := s.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	paid, err := s.payments.SumCompleted(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &PaymentSummary{
		Payments:     payments,
		PaidTotal:    paid,
		BookingTotal: b.TotalAmount,
		FullyPaid:    paid >= b.TotalAmount,
	}, nil
}

// RefundBooking flips the booking to refunded and marks its completed
// payments accordingly. Staff only.
func (s *Service) RefundBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !b.Status.CanTransitionTo(domain.BookingRefunded) {
		return nil, ErrBadStatus
	}

	refunded, err := s.payments.MarkRefundedByBooking(ctx, bookingID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if refunded == 0 {
		return nil, ErrNothingToRefund
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingRefunded); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}
