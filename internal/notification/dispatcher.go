package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"hotelbooking/internal/domain"
)

type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type UserSource interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TemplateSource interface {
	GetTemplate(ctx context.Context, name domain.EmailTemplateType) (*domain.EmailTemplate, error)
}

type message struct {
	userID   int64
	notif    domain.NotificationType
	template domain.EmailTemplateType
	title    string
	body     string
	vars     map[string]string
	payload  map[string]any
}

// Dispatcher delivers notifications off the request path. Enqueue never
// blocks: when the buffer is full the message is dropped and logged.
// Every message is persisted; email failure is recorded on the row and
// never retried.
type Dispatcher struct {
	store     NotificationStore
	users     UserSource
	templates TemplateSource
	mailer    Mailer
	log       zerolog.Logger

	ch   chan message
	wg   sync.WaitGroup
	once sync.Once
}

func NewDispatcher(store NotificationStore, users UserSource, templates TemplateSource, mailer Mailer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:     store,
		users:     users,
		templates: templates,
		mailer:    mailer,
		log:       log,
		ch:        make(chan message, 256),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.ch {
		d.deliver(msg)
	}
}

// Stop drains the queue and waits for the worker to finish.
func (d *Dispatcher) Stop() {
	d.once.Do(func() { close(d.ch) })
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(msg message) {
	select {
	case d.ch <- msg:
	default:
		d.log.Warn().
			Int64("user_id", msg.userID).
			Str("type", string(msg.notif)).
			Msg("notification queue full, dropping message")
	}
}

func (d *Dispatcher) deliver(msg message) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	subject := msg.title
	body := msg.body
	if d.templates != nil && msg.template != "" {
		if tpl, err := d.templates.GetTemplate(ctx, msg.template); err == nil {
			subject = RenderTemplate(tpl.Subject, msg.vars)
			body = RenderTemplate(tpl.Content, msg.vars)
		}
	}

	n := &domain.Notification{
		UserID:  msg.userID,
		Type:    msg.notif,
		Title:   subject,
		Message: body,
	}
	if msg.payload != nil {
		if raw, err := json.Marshal(msg.payload); err == nil {
			n.Payload = datatypes.JSON(raw)
		}
	}

	sendErr := d.sendEmail(ctx, msg.userID, subject, body)
	if sendErr != nil {
		n.SendError = sendErr.Error()
		d.log.Warn().Err(sendErr).
			Int64("user_id", msg.userID).
			Str("type", string(msg.notif)).
			Msg("notification email failed")
	} else {
		now := time.Now().UTC()
		n.SentAt = &now
	}

	if err := d.store.Create(ctx, n); err != nil {
		d.log.Error().Err(err).
			Int64("user_id", msg.userID).
			Str("type", string(msg.notif)).
			Msg("failed to persist notification")
	}
}

func (d *Dispatcher) sendEmail(ctx context.Context, userID int64, subject, body string) error {
	if d.mailer == nil {
		return nil
	}
	u, err := d.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve recipient: %w", err)
	}
	return d.mailer.Send(ctx, u.Email, u.FullName(), subject, body)
}

func (d *Dispatcher) NotifyBookingCreated(ctx context.Context, userID int64, b *domain.Booking) {
	d.enqueue(message{
		userID:   userID,
		notif:    domain.NotifBookingCreated,
		template: domain.TemplateBookingConfirmation,
		title:    "Booking received",
		body:     fmt.Sprintf("Your booking %s is pending confirmation.", b.BookingReference),
		vars: map[string]string{
			"booking_reference": b.BookingReference,
			"confirmation_code": b.ConfirmationCode,
			"check_in":          b.CheckIn.Format("2006-01-02"),
			"check_out":         b.CheckOut.Format("2006-01-02"),
			"total_amount":      fmt.Sprintf("%.2f", b.TotalAmount),
			"guest_name":        b.GuestName,
		},
		payload: map[string]any{"booking_id": b.ID, "booking_reference": b.BookingReference},
	})
}

func (d *Dispatcher) NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) {
	d.enqueue(message{
		userID:   userID,
		notif:    domain.NotifBookingCancelled,
		template: domain.TemplateBookingCancellation,
		title:    "Booking cancelled",
		body:     fmt.Sprintf("Booking %s was cancelled: %s", b.BookingReference, reason),
		vars: map[string]string{
			"booking_reference": b.BookingReference,
			"reason":            reason,
			"guest_name":        b.GuestName,
		},
		payload: map[string]any{"booking_id": b.ID, "reason": reason},
	})
}

func (d *Dispatcher) NotifyBookingStatusChanged(ctx context.Context, userID int64, b *domain.Booking, status domain.BookingStatus) {
	var notif domain.NotificationType
	switch status {
	case domain.BookingConfirmed:
		notif = domain.NotifBookingConfirmed
	case domain.BookingCancelled:
		notif = domain.NotifBookingCancelled
	default:
		notif = domain.NotifBookingCreated
	}
	d.enqueue(message{
		userID: userID,
		notif:  notif,
		title:  "Booking update",
		body:   fmt.Sprintf("Booking %s is now %s.", b.BookingReference, status),
		payload: map[string]any{
			"booking_id": b.ID,
			"status":     string(status),
		},
	})
}

func (d *Dispatcher) NotifyPaymentRecorded(ctx context.Context, userID int64, p *domain.Payment) {
	d.enqueue(message{
		userID:   userID,
		notif:    domain.NotifPaymentRecorded,
		template: domain.TemplatePaymentConfirmation,
		title:    "Payment received",
		body:     fmt.Sprintf("Payment %s of %.2f %s recorded.", p.PaymentID, p.Amount, p.Currency),
		vars: map[string]string{
			"payment_id": p.PaymentID,
			"amount":     fmt.Sprintf("%.2f", p.Amount),
			"currency":   p.Currency,
		},
		payload: map[string]any{"payment_id": p.PaymentID, "booking_id": p.BookingID},
	})
}

func (d *Dispatcher) NotifyReviewResponse(ctx context.Context, userID int64, reviewID int64) {
	d.enqueue(message{
		userID:  userID,
		notif:   domain.NotifReviewResponse,
		title:   "The hotel responded to your review",
		body:    "The hotel has posted a response to your review.",
		payload: map[string]any{"review_id": reviewID},
	})
}

func (d *Dispatcher) NotifyReviewRequest(ctx context.Context, userID int64, b *domain.Booking) {
	d.enqueue(message{
		userID:   userID,
		notif:    domain.NotifReviewRequest,
		template: domain.TemplateReviewRequest,
		title:    "How was your stay?",
		body:     fmt.Sprintf("Tell us about your stay (booking %s).", b.BookingReference),
		vars: map[string]string{
			"booking_reference": b.BookingReference,
			"guest_name":        b.GuestName,
		},
		payload: map[string]any{"booking_id": b.ID, "hotel_id": b.HotelID},
	})
}
