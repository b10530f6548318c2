package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type BookingRepository interface {
	CreateWithRooms(ctx context.Context, b *domain.Booking, lines []domain.BookingRoom) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetActiveBookingsForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, f repository.BookingFilters) ([]domain.Booking, int64, error)
	Upcoming(ctx context.Context, userID int64, today time.Time) ([]domain.Booking, error)
	History(ctx context.Context, userID int64, today time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, bookingID int64, reason string, fee float64, at time.Time) error
	SetActualCheckIn(ctx context.Context, bookingID int64, at time.Time) error
	SetActualCheckOut(ctx context.Context, bookingID int64, at time.Time) error
}

type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// SettingsProvider supplies tax and fee rates; backed by the cached
// settings store in production.
type SettingsProvider interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
}

// NotificationSender delivers best-effort notifications. Errors are
// ignored by callers.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, userID int64, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string)
	NotifyBookingStatusChanged(ctx context.Context, userID int64, b *domain.Booking, status domain.BookingStatus)
}
