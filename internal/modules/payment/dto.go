package payment

import "hotelbooking/internal/domain"

type RecordPaymentRequest struct {
	BookingID     int64   `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"payment_method" binding:"required"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	GatewayName   string  `json:"gateway_name"`
	FailureReason string  `json:"failure_reason"`
}

// PaymentSummary reports paid_total against the booking total. A
// mismatch is surfaced to the caller, never enforced.
type PaymentSummary struct {
	Payments     []domain.Payment `json:"payments"`
	PaidTotal    float64          `json:"paid_total"`
	BookingTotal float64          `json:"booking_total"`
	FullyPaid    bool             `json:"fully_paid"`
}
