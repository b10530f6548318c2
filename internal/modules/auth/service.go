package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/token"
)

const sessionTTL = 30 * 24 * time.Hour

var phoneRe = regexp.MustCompile(domain.PhonePattern)

type Service struct {
	users    UserRepository
	sessions SessionRepository
	jwt      *jwt.Service
}

func NewService(users UserRepository, sessions SessionRepository, jwtSvc *jwt.Service) *Service {
	return &Service{users: users, sessions: sessions, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, ErrValidation
	}

	userType := domain.UserType(req.UserType)
	switch userType {
	case "":
		userType = domain.TypeCustomer
	case domain.TypeCustomer, domain.TypeHotelOwner:
	default:
		// Admin accounts are provisioned out of band.
		return nil, ErrValidation
	}

	if req.Phone != "" && !phoneRe.MatchString(req.Phone) {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:             email,
		PasswordHash:      string(hash),
		UserType:          userType,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		PhoneNumber:       req.Phone,
		PreferredCurrency: "USD",
	}

	if err := s.users.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueTokens(ctx, u, "", "")
}

func (s *Service) Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u, userAgent, ip)
}

func (s *Service) issueTokens(ctx context.Context, u *domain.User, userAgent, ip string) (*AuthResponse, error) {
	access, err := s.jwt.GenerateToken(u.ID, string(u.UserType))
	if err != nil {
		return nil, err
	}

	session := token.NewSessionToken()
	if err := s.sessions.Create(ctx, u.ID, hashToken(session), time.Now().Add(sessionTTL), userAgent, ip); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  access,
		SessionToken: session,
		User:         u,
	}, nil
}

// Logout revokes the session token; revoking an unknown or already
// revoked token is a no-op.
func (s *Service) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return ErrValidation
	}
	return s.sessions.Revoke(ctx, hashToken(sessionToken))
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p, err := s.users.GetProfile(ctx, userID); err == nil {
		u.Profile = p
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != "" && !phoneRe.MatchString(*req.PhoneNumber) {
		return nil, ErrValidation
	}

	applyStr := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyStr(&u.FirstName, req.FirstName)
	applyStr(&u.LastName, req.LastName)
	applyStr(&u.PhoneNumber, req.PhoneNumber)
	applyStr(&u.AddressLine1, req.AddressLine1)
	applyStr(&u.AddressLine2, req.AddressLine2)
	applyStr(&u.City, req.City)
	applyStr(&u.State, req.State)
	applyStr(&u.PostalCode, req.PostalCode)
	applyStr(&u.Country, req.Country)
	applyStr(&u.PreferredCurrency, req.Currency)
	if req.NewsletterOptIn != nil {
		u.NewsletterOptIn = *req.NewsletterOptIn
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if req.Bio != nil || req.Website != nil || req.TravelStyle != nil {
		p, err := s.users.GetProfile(ctx, userID)
		if err != nil {
			p = &domain.UserProfile{UserID: userID}
		}
		if req.Bio != nil {
			p.Bio = *req.Bio
		}
		if req.Website != nil {
			p.Website = *req.Website
		}
		if req.TravelStyle != nil {
			p.TravelStyle = domain.TravelStyle(*req.TravelStyle)
		}
		if err := s.users.UpsertProfile(ctx, p); err != nil {
			return nil, err
		}
		u.Profile = p
	}

	return u, nil
}

func hashToken(t string) string {
	h := sha256.Sum256([]byte(t))
	return hex.EncodeToString(h[:])
}
