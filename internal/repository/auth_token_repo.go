package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AuthTokenRepository stores hashed opaque session tokens. Logout
// revokes the row; expired or revoked tokens are rejected on lookup.
type AuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

type authTokenModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;index"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	UserAgent *string    `gorm:"column:user_agent"`
	IP        *string    `gorm:"column:ip"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (authTokenModel) TableName() string { return "auth_tokens" }

func (r *AuthTokenRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time, userAgent, ip string) error {
	m := authTokenModel{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		UserAgent: strOrNil(userAgent),
		IP:        strOrNil(ip),
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// Revoke marks the token unusable. Unknown tokens are a no-op so that
// logout is idempotent.
func (r *AuthTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&authTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error
}

// IsActive reports whether the hash maps to a live session.
func (r *AuthTokenRepository) IsActive(ctx context.Context, tokenHash string) (int64, bool, error) {
	var m authTokenModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}
	if m.RevokedAt != nil || !m.ExpiresAt.After(time.Now()) {
		return 0, false, nil
	}
	return m.UserID, true, nil
}

// DeleteExpired removes rows past their expiry; run from the jobs scheduler.
func (r *AuthTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&authTokenModel{})
	return tx.RowsAffected, tx.Error
}
