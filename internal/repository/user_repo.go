package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

type userModel struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	Email             string     `gorm:"column:email;uniqueIndex"`
	PasswordHash      string     `gorm:"column:password_hash"`
	UserType          string     `gorm:"column:user_type"`
	FirstName         string     `gorm:"column:first_name"`
	LastName          string     `gorm:"column:last_name"`
	PhoneNumber       *string    `gorm:"column:phone_number"`
	DateOfBirth       *time.Time `gorm:"column:date_of_birth"`
	AddressLine1      *string    `gorm:"column:address_line_1"`
	AddressLine2      *string    `gorm:"column:address_line_2"`
	City              *string    `gorm:"column:city"`
	State             *string    `gorm:"column:state"`
	PostalCode        *string    `gorm:"column:postal_code"`
	Country           *string    `gorm:"column:country"`
	PreferredCurrency string     `gorm:"column:preferred_currency"`
	NewsletterOptIn   bool       `gorm:"column:newsletter_subscription"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type userProfileModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id;uniqueIndex"`
	Bio              *string   `gorm:"column:bio"`
	Website          *string   `gorm:"column:website"`
	TravelStyle      *string   `gorm:"column:travel_style"`
	EmailVerified    bool      `gorm:"column:email_verified"`
	PhoneVerified    bool      `gorm:"column:phone_verified"`
	IdentityVerified bool      `gorm:"column:identity_verified"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (userProfileModel) TableName() string { return "user_profiles" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                m.ID,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		UserType:          domain.UserType(m.UserType),
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		PhoneNumber:       strOrEmpty(m.PhoneNumber),
		DateOfBirth:       m.DateOfBirth,
		AddressLine1:      strOrEmpty(m.AddressLine1),
		AddressLine2:      strOrEmpty(m.AddressLine2),
		City:              strOrEmpty(m.City),
		State:             strOrEmpty(m.State),
		PostalCode:        strOrEmpty(m.PostalCode),
		Country:           strOrEmpty(m.Country),
		PreferredCurrency: m.PreferredCurrency,
		NewsletterOptIn:   m.NewsletterOptIn,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                u.ID,
		Email:             strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash:      u.PasswordHash,
		UserType:          string(u.UserType),
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		PhoneNumber:       strOrNil(u.PhoneNumber),
		DateOfBirth:       u.DateOfBirth,
		AddressLine1:      strOrNil(u.AddressLine1),
		AddressLine2:      strOrNil(u.AddressLine2),
		City:              strOrNil(u.City),
		State:             strOrNil(u.State),
		PostalCode:        strOrNil(u.PostalCode),
		Country:           strOrNil(u.Country),
		PreferredCurrency: u.PreferredCurrency,
		NewsletterOptIn:   u.NewsletterOptIn,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var m userProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.UserProfile{
		ID:               m.ID,
		UserID:           m.UserID,
		Bio:              strOrEmpty(m.Bio),
		Website:          strOrEmpty(m.Website),
		TravelStyle:      domain.TravelStyle(strOrEmpty(m.TravelStyle)),
		EmailVerified:    m.EmailVerified,
		PhoneVerified:    m.PhoneVerified,
		IdentityVerified: m.IdentityVerified,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// UpsertProfile creates the 1:1 profile row on first write.
func (r *UserRepository) UpsertProfile(ctx context.Context, p *domain.UserProfile) error {
	var existing userProfileModel
	err := r.db.WithContext(ctx).Where("user_id = ?", p.UserID).First(&existing).Error
	m := userProfileModel{
		ID:               existing.ID,
		UserID:           p.UserID,
		Bio:              strOrNil(p.Bio),
		Website:          strOrNil(p.Website),
		TravelStyle:      strOrNil(string(p.TravelStyle)),
		EmailVerified:    p.EmailVerified,
		PhoneVerified:    p.PhoneVerified,
		IdentityVerified: p.IdentityVerified,
		CreatedAt:        existing.CreatedAt,
	}
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return r.db.WithContext(ctx).Create(&m).Error
	}
	return r.db.WithContext(ctx).Save(&m).Error
}
