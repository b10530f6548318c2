package domain

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifPaymentRecorded  NotificationType = "payment_recorded"
	NotifReviewRequest    NotificationType = "review_request"
	NotifReviewResponse   NotificationType = "review_response"
)

// Notification is the persisted trail of a best-effort send. Delivery
// failure is recorded, never retried.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Payload   datatypes.JSON   `json:"payload,omitempty"`
	IsRead    bool             `json:"is_read"`
	SentAt    *time.Time       `json:"sent_at,omitempty"`
	SendError string           `json:"-"`
	CreatedAt time.Time        `json:"created_at"`
}
