package auth

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// UserRepository is the persistence surface the service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, p *domain.UserProfile) error
}

// SessionRepository stores hashed opaque session tokens so logout can
// revoke them server-side.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time, userAgent, ip string) error
	Revoke(ctx context.Context, tokenHash string) error
	IsActive(ctx context.Context, tokenHash string) (int64, bool, error)
}
