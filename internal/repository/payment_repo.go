package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	PaymentID     string     `gorm:"column:payment_id;uniqueIndex"`
	BookingID     int64      `gorm:"column:booking_id;index"`
	Amount        float64    `gorm:"column:amount"`
	Currency      string     `gorm:"column:currency"`
	Status        string     `gorm:"column:status;index"`
	Method        string     `gorm:"column:payment_method"`
	TransactionID *string    `gorm:"column:transaction_id"`
	GatewayName   *string    `gorm:"column:gateway_name"`
	FailureReason *string    `gorm:"column:failure_reason"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		PaymentID:     m.PaymentID,
		BookingID:     m.BookingID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        domain.PaymentStatus(m.Status),
		Method:        domain.PaymentMethod(m.Method),
		TransactionID: strOrEmpty(m.TransactionID),
		GatewayName:   strOrEmpty(m.GatewayName),
		FailureReason: strOrEmpty(m.FailureReason),
		ProcessedAt:   m.ProcessedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		PaymentID:     p.PaymentID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		Method:        string(p.Method),
		TransactionID: strOrNil(p.TransactionID),
		GatewayName:   strOrNil(p.GatewayName),
		FailureReason: strOrNil(p.FailureReason),
		ProcessedAt:   p.ProcessedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var ms []paymentModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

// SumCompleted returns the total of completed payments for the booking,
// reported against the booking's total_amount; never enforced as equal.
func (r *PaymentRepository) SumCompleted(ctx context.Context, bookingID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("booking_id = ? AND status = ?", bookingID, string(domain.PaymentCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// MarkRefundedByBooking flips every completed payment of the booking to
// refunded; used when the booking itself is refunded.
func (r *PaymentRepository) MarkRefundedByBooking(ctx context.Context, bookingID int64, at time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("booking_id = ? AND status = ?", bookingID, string(domain.PaymentCompleted)).
		Updates(map[string]any{
			"status":       string(domain.PaymentRefunded),
			"processed_at": at,
		})
	return tx.RowsAffected, tx.Error
}
