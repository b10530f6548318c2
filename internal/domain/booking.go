package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
	BookingRefunded   BookingStatus = "refunded"
)

// ActiveBookingStatuses are the statuses that block a room for other guests.
var ActiveBookingStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn}

// allowedTransitions is the full lifecycle graph. Cancellation has an
// additional date-window rule checked by Booking.CanCancel.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled, BookingNoShow},
	BookingConfirmed:  {BookingCheckedIn, BookingCancelled, BookingNoShow, BookingRefunded},
	BookingCheckedIn:  {BookingCheckedOut, BookingCancelled, BookingRefunded},
	BookingCheckedOut: {BookingRefunded},
	BookingCancelled:  {BookingRefunded},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type BookingSource string

const (
	SourceWebsite    BookingSource = "website"
	SourceMobileApp  BookingSource = "mobile_app"
	SourcePhone      BookingSource = "phone"
	SourceEmail      BookingSource = "email"
	SourceWalkIn     BookingSource = "walk_in"
	SourceThirdParty BookingSource = "third_party"
)

type Booking struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`
	ConfirmationCode string `json:"confirmation_code"`

	UserID     int64  `json:"user_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`

	HotelID  int64     `json:"hotel_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	RoomTotal      float64 `json:"room_total"`
	TaxAmount      float64 `json:"tax_amount"`
	ServiceFee     float64 `json:"service_fee"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
	Currency       string  `json:"currency"`

	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	InternalNotes   string        `json:"-"`

	ActualCheckIn   *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time `json:"actual_check_out,omitempty"`
	EarlyCheckInFee float64    `json:"early_check_in_fee"`
	LateCheckOutFee float64    `json:"late_check_out_fee"`

	CancellationDate   *time.Time `json:"cancellation_date,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancellationFee    float64    `json:"cancellation_fee"`

	Source    BookingSource `json:"booking_source"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Hotel *Hotel        `json:"hotel,omitempty"`
	Rooms []BookingRoom `json:"rooms,omitempty"`
}

func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

func (b *Booking) TotalGuests() int {
	return b.Adults + b.Children + b.Infants
}

func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingPending, BookingConfirmed, BookingCheckedIn:
		return true
	}
	return false
}

// CancellationWindow is the minimum number of full days before check-in
// required for a guest cancellation.
const CancellationWindow = 1

// CanCancel reports whether the booking may still be cancelled as of
// the given date.
func (b *Booking) CanCancel(today time.Time) bool {
	switch b.Status {
	case BookingCancelled, BookingCheckedOut, BookingNoShow:
		return false
	}
	daysUntilCheckIn := int(b.CheckIn.Sub(startOfDay(today)).Hours() / 24)
	return daysUntilCheckIn >= CancellationWindow
}

func (b *Booking) CanModify(today time.Time) bool {
	return (b.Status == BookingPending || b.Status == BookingConfirmed) && b.CanCancel(today)
}

// CalculateTotal applies the itemized formula and stores the result on
// the booking. Amounts are rounded to cents.
func (b *Booking) CalculateTotal() float64 {
	total := b.RoomTotal +
		b.TaxAmount +
		b.ServiceFee +
		b.EarlyCheckInFee +
		b.LateCheckOutFee -
		b.DiscountAmount
	b.TotalAmount = RoundMoney(total)
	return b.TotalAmount
}

// RoundMoney rounds to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateRangesOverlap implements half-open interval overlap: ranges touch
// but do not overlap when one checkout day equals the other check-in day.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type BookingRoom struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id"`
	RoomID    int64   `json:"room_id"`
	RoomRate  float64 `json:"room_rate"`
	Nights    int     `json:"nights"`
	Subtotal  float64 `json:"subtotal"`

	Room *Room `json:"room,omitempty"`
}

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentProcessing        PaymentStatus = "processing"
	PaymentCompleted         PaymentStatus = "completed"
	PaymentFailed            PaymentStatus = "failed"
	PaymentCancelled         PaymentStatus = "cancelled"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodStripe       PaymentMethod = "stripe"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
	MethodWallet       PaymentMethod = "wallet"
)

type Payment struct {
	ID            int64         `json:"id"`
	PaymentID     string        `json:"payment_id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	BookingID     int64         `json:"booking_id"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	Currency      string        `json:"currency"`
	Method        PaymentMethod `json:"payment_method" validate:"required"`
	Status        PaymentStatus `json:"status"`
	GatewayName   string        `json:"gateway_name,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
