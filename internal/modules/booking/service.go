package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/token"
	"hotelbooking/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	hotels   HotelRepository
	settings SettingsProvider
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	hotels HotelRepository,
	settings SettingsProvider,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		hotels:   hotels,
		settings: settings,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, ErrValidation
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rooms, err := s.rooms.GetByIDs(ctx, req.RoomIDs)
	if err != nil {
		return nil, err
	}
	if len(rooms) != len(req.RoomIDs) {
		return nil, ErrValidation
	}
	for _, r := range rooms {
		if r.HotelID != hotel.ID {
			return nil, ErrValidation
		}
		if !r.IsAvailable {
			return nil, ErrNotAvailable
		}
	}

	// Optimistic overlap check; the repository repeats it under a row
	// lock, so this only gives an early exit and cleaner errors.
	for _, r := range rooms {
		active, err := s.bookings.GetActiveBookingsForRoom(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		for _, existing := range active {
			if domain.DateRangesOverlap(existing.CheckIn, existing.CheckOut, checkIn, checkOut) {
				return nil, ErrNotAvailable
			}
		}
	}

	lines, roomTotal := priceRooms(rooms, checkIn, checkOut)

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BookingReference: token.NewBookingReference(),
		ConfirmationCode: token.NewConfirmationCode(),
		UserID:           userID,
		GuestName:        strings.TrimSpace(req.GuestName),
		GuestEmail:       strings.ToLower(strings.TrimSpace(req.GuestEmail)),
		GuestPhone:       req.GuestPhone,
		HotelID:          hotel.ID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           req.Adults,
		Children:         req.Children,
		Infants:          req.Infants,
		RoomTotal:        roomTotal,
		TaxAmount:        domain.RoundMoney(roomTotal * cfg.DefaultTaxRate),
		ServiceFee:       domain.RoundMoney(roomTotal * cfg.ServiceFeePercentage),
		DiscountAmount:   req.DiscountAmount,
		Currency:         hotel.Currency,
		Status:           domain.BookingPending,
		SpecialRequests:  req.SpecialRequests,
		Source:           domain.BookingSource(req.Source),
	}
	b.CalculateTotal()

	if err := s.bookings.CreateWithRooms(ctx, b, lines); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCreated(ctx, b.UserID, b)
		if hotel.OwnerID != 0 && hotel.OwnerID != b.UserID {
			s.notifs.NotifyBookingCreated(ctx, hotel.OwnerID, b)
		}
	}

	return b, nil
}

// priceRooms prices each night independently per room. The line's
// room_rate is the effective average so rate*nights always equals the
// line subtotal.
func priceRooms(rooms []domain.Room, checkIn, checkOut time.Time) ([]domain.BookingRoom, float64) {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	lines := make([]domain.BookingRoom, 0, len(rooms))
	var roomTotal float64
	for i := range rooms {
		var subtotal float64
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			subtotal += rooms[i].PriceForDate(d)
		}
		subtotal = domain.RoundMoney(subtotal)
		lines = append(lines, domain.BookingRoom{
			RoomID:   rooms[i].ID,
			RoomRate: domain.RoundMoney(subtotal / float64(nights)),
			Nights:   nights,
			Subtotal: subtotal,
		})
		roomTotal += subtotal
	}
	return lines, domain.RoundMoney(roomTotal)
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64, isStaff bool) (*domain.Booking, error) {
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
	return b, nil
}

func (s *Service) GetByReference(ctx context.Context, userID int64, reference string, isStaff bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID && !isStaff {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64, f repository.BookingFilters) ([]domain.Booking, int64, error) {
	return s.bookings.ListByUser(ctx, userID, f)
}

func (s *Service) Upcoming(ctx context.Context, userID int64) ([]domain.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.bookings.Upcoming(ctx, userID, today)
}

func (s *Service) History(ctx context.Context, userID int64) ([]domain.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.bookings.History(ctx, userID, today)
}

// Cancel applies the guest cancellation rules: the booking must not be
// in a terminal state and check-in must be at least one full day away.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64, isStaff bool, reason string) (*domain.Booking, error) {
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

	now := time.Now().UTC()
	if !b.CanCancel(now) {
		return nil, ErrCannotCancel
	}

	if err := s.bookings.Cancel(ctx, bookingID, reason, 0, now); err != nil {
		return nil, err
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCancelled(ctx, b.UserID, b, reason)
		if hotel, err := s.hotels.GetByID(ctx, b.HotelID); err == nil {
			if hotel.OwnerID != 0 && hotel.OwnerID != b.UserID {
				s.notifs.NotifyBookingCancelled(ctx, hotel.OwnerID, b, reason)
			}
		}
	}
	return b, nil
}

// UpdateStatus moves a booking along the lifecycle graph. Only hotel
// staff call this; guests cancel through Cancel.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !b.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	switch next {
	case domain.BookingCheckedIn:
		err = s.bookings.SetActualCheckIn(ctx, bookingID, now)
	case domain.BookingCheckedOut:
		err = s.bookings.SetActualCheckOut(ctx, bookingID, now)
	case domain.BookingCancelled:
		err = s.bookings.Cancel(ctx, bookingID, "cancelled by hotel", 0, now)
	default:
		err = s.bookings.UpdateStatus(ctx, bookingID, next)
	}
	if err != nil {
		return nil, err
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingStatusChanged(ctx, b.UserID, b, next)
	}
	return b, nil
}
