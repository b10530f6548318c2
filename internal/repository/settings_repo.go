package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type siteSettingsModel struct {
	ID              int64  `gorm:"column:id;primaryKey"`
	SiteName        string `gorm:"column:site_name"`
	SiteTagline     string `gorm:"column:site_tagline"`
	SiteDescription string `gorm:"column:site_description"`

	ContactEmail string  `gorm:"column:contact_email"`
	ContactPhone *string `gorm:"column:contact_phone"`
	SupportEmail string  `gorm:"column:support_email"`

	DefaultCurrency      string  `gorm:"column:default_currency"`
	DefaultTaxRate       float64 `gorm:"column:default_tax_rate"`
	ServiceFeePercentage float64 `gorm:"column:service_fee_percentage"`

	EnableReviews            bool `gorm:"column:enable_reviews"`
	EnableCoupons            bool `gorm:"column:enable_coupons"`
	EnableWishlists          bool `gorm:"column:enable_wishlists"`
	RequireEmailVerification bool `gorm:"column:require_email_verification"`

	MetaTitle       *string `gorm:"column:meta_title"`
	MetaDescription *string `gorm:"column:meta_description"`

	MaintenanceMode    bool    `gorm:"column:maintenance_mode"`
	MaintenanceMessage *string `gorm:"column:maintenance_message"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (siteSettingsModel) TableName() string { return "site_settings" }

type emailTemplateModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Subject   string    `gorm:"column:subject"`
	Content   string    `gorm:"column:content"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (emailTemplateModel) TableName() string { return "email_templates" }

func toDomainSettings(m siteSettingsModel) *domain.SiteSettings {
	return &domain.SiteSettings{
		ID:                       m.ID,
		SiteName:                 m.SiteName,
		SiteTagline:              m.SiteTagline,
		SiteDescription:          m.SiteDescription,
		ContactEmail:             m.ContactEmail,
		ContactPhone:             strOrEmpty(m.ContactPhone),
		SupportEmail:             m.SupportEmail,
		DefaultCurrency:          m.DefaultCurrency,
		DefaultTaxRate:           m.DefaultTaxRate,
		ServiceFeePercentage:     m.ServiceFeePercentage,
		EnableReviews:            m.EnableReviews,
		EnableCoupons:            m.EnableCoupons,
		EnableWishlists:          m.EnableWishlists,
		RequireEmailVerification: m.RequireEmailVerification,
		MetaTitle:                strOrEmpty(m.MetaTitle),
		MetaDescription:          strOrEmpty(m.MetaDescription),
		MaintenanceMode:          m.MaintenanceMode,
		MaintenanceMessage:       strOrEmpty(m.MaintenanceMessage),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func toSettingsModel(s *domain.SiteSettings) siteSettingsModel {
	return siteSettingsModel{
		ID:                       1,
		SiteName:                 s.SiteName,
		SiteTagline:              s.SiteTagline,
		SiteDescription:          s.SiteDescription,
		ContactEmail:             s.ContactEmail,
		ContactPhone:             strOrNil(s.ContactPhone),
		SupportEmail:             s.SupportEmail,
		DefaultCurrency:          s.DefaultCurrency,
		DefaultTaxRate:           s.DefaultTaxRate,
		ServiceFeePercentage:     s.ServiceFeePercentage,
		EnableReviews:            s.EnableReviews,
		EnableCoupons:            s.EnableCoupons,
		EnableWishlists:          s.EnableWishlists,
		RequireEmailVerification: s.RequireEmailVerification,
		MetaTitle:                strOrNil(s.MetaTitle),
		MetaDescription:          strOrNil(s.MetaDescription),
		MaintenanceMode:          s.MaintenanceMode,
		MaintenanceMessage:       strOrNil(s.MaintenanceMessage),
	}
}

// GetOrCreate returns the singleton row, seeding it with defaults on
// first access.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*domain.SiteSettings, error) {
	var m siteSettingsModel
	err := r.db.WithContext(ctx).First(&m, 1).Error
	if err == nil {
		return toDomainSettings(m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = toSettingsModel(domain.DefaultSiteSettings())
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error; err != nil {
		return nil, err
	}
	// Re-read in case a concurrent seed won the insert.
	if err := r.db.WithContext(ctx).First(&m, 1).Error; err != nil {
		return nil, err
	}
	return toDomainSettings(m), nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.SiteSettings) error {
	m := toSettingsModel(s)
	if err := r.db.WithContext(ctx).
		Model(&siteSettingsModel{}).
		Where("id = ?", 1).
		Select("*").
		Omit("id", "created_at").
		Updates(&m).Error; err != nil {
		return err
	}
	var fresh siteSettingsModel
	if err := r.db.WithContext(ctx).First(&fresh, 1).Error; err != nil {
		return err
	}
	*s = *toDomainSettings(fresh)
	return nil
}

func (r *SettingsRepository) GetTemplate(ctx context.Context, name domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	var m emailTemplateModel
	tx := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", string(name), true).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.EmailTemplate{
		ID:        m.ID,
		Name:      domain.EmailTemplateType(m.Name),
		Subject:   m.Subject,
		Content:   m.Content,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) UpsertTemplate(ctx context.Context, t *domain.EmailTemplate) error {
	m := emailTemplateModel{
		Name:     string(t.Name),
		Subject:  t.Subject,
		Content:  t.Content,
		IsActive: t.IsActive,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject", "content", "is_active"}),
		}).
		Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}
