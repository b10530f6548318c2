package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

// ErrRoomUnavailable is returned when the locked re-check inside
// CreateWithRooms finds a conflicting active booking or a disabled room.
var ErrRoomUnavailable = errors.New("room unavailable for requested dates")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64  `gorm:"column:id;primaryKey"`
	BookingReference string `gorm:"column:booking_reference;uniqueIndex"`
	ConfirmationCode string `gorm:"column:confirmation_code;uniqueIndex"`

	UserID     int64   `gorm:"column:user_id;index:idx_bookings_user_status"`
	GuestName  string  `gorm:"column:guest_name"`
	GuestEmail string  `gorm:"column:guest_email"`
	GuestPhone *string `gorm:"column:guest_phone"`

	HotelID  int64     `gorm:"column:hotel_id;index:idx_bookings_hotel_checkin"`
	CheckIn  time.Time `gorm:"column:check_in;index:idx_bookings_hotel_checkin;index:idx_bookings_status_checkin"`
	CheckOut time.Time `gorm:"column:check_out;index"`

	Adults   int `gorm:"column:adults"`
	Children int `gorm:"column:children"`
	Infants  int `gorm:"column:infants"`

	RoomTotal      float64 `gorm:"column:room_total"`
	TaxAmount      float64 `gorm:"column:tax_amount"`
	ServiceFee     float64 `gorm:"column:service_fee"`
	DiscountAmount float64 `gorm:"column:discount_amount"`
	TotalAmount    float64 `gorm:"column:total_amount"`
	Currency       string  `gorm:"column:currency"`

	Status          string  `gorm:"column:status;index:idx_bookings_user_status;index:idx_bookings_status_checkin"`
	SpecialRequests *string `gorm:"column:special_requests"`
	InternalNotes   *string `gorm:"column:internal_notes"`

	ActualCheckIn   *time.Time `gorm:"column:actual_check_in"`
	ActualCheckOut  *time.Time `gorm:"column:actual_check_out"`
	EarlyCheckInFee float64    `gorm:"column:early_check_in_fee"`
	LateCheckOutFee float64    `gorm:"column:late_check_out_fee"`

	CancellationDate   *time.Time `gorm:"column:cancellation_date"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CancellationFee    float64    `gorm:"column:cancellation_fee"`

	Source    string    `gorm:"column:booking_source"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingRoomModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	BookingID int64   `gorm:"column:booking_id;uniqueIndex:idx_booking_room"`
	RoomID    int64   `gorm:"column:room_id;uniqueIndex:idx_booking_room;index"`
	RoomRate  float64 `gorm:"column:room_rate"`
	Nights    int     `gorm:"column:nights"`
	Subtotal  float64 `gorm:"column:subtotal"`
}

func (bookingRoomModel) TableName() string { return "booking_rooms" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:                 m.ID,
		BookingReference:   m.BookingReference,
		ConfirmationCode:   m.ConfirmationCode,
		UserID:             m.UserID,
		GuestName:          m.GuestName,
		GuestEmail:         m.GuestEmail,
		GuestPhone:         strOrEmpty(m.GuestPhone),
		HotelID:            m.HotelID,
		CheckIn:            m.CheckIn,
		CheckOut:           m.CheckOut,
		Adults:             m.Adults,
		Children:           m.Children,
		Infants:            m.Infants,
		RoomTotal:          m.RoomTotal,
		TaxAmount:          m.TaxAmount,
		ServiceFee:         m.ServiceFee,
		DiscountAmount:     m.DiscountAmount,
		TotalAmount:        m.TotalAmount,
		Currency:           m.Currency,
		Status:             domain.BookingStatus(m.Status),
		SpecialRequests:    strOrEmpty(m.SpecialRequests),
		InternalNotes:      strOrEmpty(m.InternalNotes),
		ActualCheckIn:      m.ActualCheckIn,
		ActualCheckOut:     m.ActualCheckOut,
		EarlyCheckInFee:    m.EarlyCheckInFee,
		LateCheckOutFee:    m.LateCheckOutFee,
		CancellationDate:   m.CancellationDate,
		CancellationReason: strOrEmpty(m.CancellationReason),
		CancellationFee:    m.CancellationFee,
		Source:             domain.BookingSource(m.Source),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	source := string(b.Source)
	if source == "" {
		source = string(domain.SourceWebsite)
	}
	return bookingModel{
		ID:                 b.ID,
		BookingReference:   b.BookingReference,
		ConfirmationCode:   b.ConfirmationCode,
		UserID:             b.UserID,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         strOrNil(b.GuestPhone),
		HotelID:            b.HotelID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Adults:             b.Adults,
		Children:           b.Children,
		Infants:            b.Infants,
		RoomTotal:          b.RoomTotal,
		TaxAmount:          b.TaxAmount,
		ServiceFee:         b.ServiceFee,
		DiscountAmount:     b.DiscountAmount,
		TotalAmount:        b.TotalAmount,
		Currency:           b.Currency,
		Status:             string(b.Status),
		SpecialRequests:    strOrNil(b.SpecialRequests),
		InternalNotes:      strOrNil(b.InternalNotes),
		ActualCheckIn:      b.ActualCheckIn,
		ActualCheckOut:     b.ActualCheckOut,
		EarlyCheckInFee:    b.EarlyCheckInFee,
		LateCheckOutFee:    b.LateCheckOutFee,
		CancellationDate:   b.CancellationDate,
		CancellationReason: strOrNil(b.CancellationReason),
		CancellationFee:    b.CancellationFee,
		Source:             source,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// CreateWithRooms persists the booking and its room lines in one
// transaction. The room rows are locked FOR UPDATE and availability is
// re-checked under the lock, so two concurrent attempts for an
// overlapping range cannot both commit.
func (r *BookingRepository) CreateWithRooms(ctx context.Context, b *domain.Booking, lines []domain.BookingRoom) error {
	roomIDs := make([]int64, 0, len(lines))
	for _, l := range lines {
		roomIDs = append(roomIDs, l.RoomID)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rooms []roomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", roomIDs).
			Find(&rooms).Error; err != nil {
			return err
		}
		if len(rooms) != len(roomIDs) {
			return gorm.ErrRecordNotFound
		}
		for _, rm := range rooms {
			if !rm.IsAvailable {
				return ErrRoomUnavailable
			}
		}

		for _, id := range roomIDs {
			var cnt int64
			err := tx.Raw(`
SELECT COUNT(1)
FROM bookings b
JOIN booking_rooms br ON br.booking_id = b.id
WHERE br.room_id = ?
  AND b.status IN ('confirmed', 'checked_in')
  AND b.check_in < ?
  AND b.check_out > ?
`, id, b.CheckOut, b.CheckIn).Scan(&cnt).Error
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrRoomUnavailable
			}
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)

		for i := range lines {
			lm := bookingRoomModel{
				BookingID: m.ID,
				RoomID:    lines[i].RoomID,
				RoomRate:  lines[i].RoomRate,
				Nights:    lines[i].Nights,
				Subtotal:  lines[i].Subtotal,
			}
			if err := tx.Create(&lm).Error; err != nil {
				return err
			}
			lines[i].ID = lm.ID
			lines[i].BookingID = m.ID
		}
		b.Rooms = lines
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(m)
	if err := r.loadRooms(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_reference = ?", reference).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(m)
	if err := r.loadRooms(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) loadRooms(ctx context.Context, b *domain.Booking) error {
	var ms []bookingRoomModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", b.ID).Find(&ms).Error; err != nil {
		return err
	}
	for _, m := range ms {
		b.Rooms = append(b.Rooms, domain.BookingRoom{
			ID:        m.ID,
			BookingID: m.BookingID,
			RoomID:    m.RoomID,
			RoomRate:  m.RoomRate,
			Nights:    m.Nights,
			Subtotal:  m.Subtotal,
		})
	}
	return nil
}

// GetActiveBookingsForRoom returns bookings that block the room, i.e.
// those in confirmed or checked_in status.
func (r *BookingRepository) GetActiveBookingsForRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	err := r.db.WithContext(ctx).
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ? AND bookings.status IN ?", roomID,
			[]string{string(domain.BookingConfirmed), string(domain.BookingCheckedIn)}).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

type BookingFilters struct {
	Status       string
	CheckInFrom  *time.Time
	CheckInTo    *time.Time
	Limit        int
	Offset       int
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, f BookingFilters) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Where("user_id = ?", userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CheckInFrom != nil {
		q = q.Where("check_in >= ?", *f.CheckInFrom)
	}
	if f.CheckInTo != nil {
		q = q.Where("check_in <= ?", *f.CheckInTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var ms []bookingModel
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// Upcoming returns the user's pending or confirmed bookings with a
// check-in on or after today.
func (r *BookingRepository) Upcoming(ctx context.Context, userID int64, today time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND check_in >= ? AND status IN ?", userID, today,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Order("check_in").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// History returns the user's bookings whose stay already ended.
func (r *BookingRepository) History(ctx context.Context, userID int64, today time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND check_out < ?", userID, today).
		Order("check_out DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", string(status)).Error
}

// Cancel flips the booking to cancelled and records when and why.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, reason string, fee float64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_date":   at,
			"cancellation_reason": reason,
			"cancellation_fee":    fee,
		}).Error
}

func (r *BookingRepository) SetActualCheckIn(ctx context.Context, bookingID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":          string(domain.BookingCheckedIn),
			"actual_check_in": at,
		}).Error
}

func (r *BookingRepository) SetActualCheckOut(ctx context.Context, bookingID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":           string(domain.BookingCheckedOut),
			"actual_check_out": at,
		}).Error
}

// MarkNoShows flips stale pending/confirmed bookings whose check-in
// has passed; used by the nightly job. Returns the number of rows hit.
func (r *BookingRepository) MarkNoShows(ctx context.Context, today time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status IN ? AND check_in < ?",
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}, today).
		Update("status", string(domain.BookingNoShow))
	return tx.RowsAffected, tx.Error
}

// CheckedOutBetween lists bookings whose stay ended in [from, to);
// used by the review-request job.
func (r *BookingRepository) CheckedOutBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND check_out >= ? AND check_out < ?",
			string(domain.BookingCheckedOut), from, to).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// HasCompletedStay reports whether the user has at least one
// checked-out booking at the hotel; gates review creation.
func (r *BookingRepository) HasCompletedStay(ctx context.Context, userID, hotelID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("user_id = ? AND hotel_id = ? AND status = ?", userID, hotelID, string(domain.BookingCheckedOut)).
		Count(&cnt)
	return cnt > 0, tx.Error
}
