package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

type amenityModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex"`
	Category    string  `gorm:"column:category;index"`
	Icon        *string `gorm:"column:icon"`
	Description *string `gorm:"column:description"`
	IsPremium   bool    `gorm:"column:is_premium"`
}

func (amenityModel) TableName() string { return "amenities" }

func toDomainAmenity(m amenityModel) domain.Amenity {
	return domain.Amenity{
		ID:          m.ID,
		Name:        m.Name,
		Category:    domain.AmenityCategory(m.Category),
		Icon:        strOrEmpty(m.Icon),
		Description: strOrEmpty(m.Description),
		IsPremium:   m.IsPremium,
	}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	m := amenityModel{
		Name:        a.Name,
		Category:    string(a.Category),
		Icon:        strOrNil(a.Icon),
		Description: strOrNil(a.Description),
		IsPremium:   a.IsPremium,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = toDomainAmenity(m)
	return nil
}

func (r *AmenityRepository) GetAll(ctx context.Context, category string) ([]domain.Amenity, error) {
	q := r.db.WithContext(ctx).Model(&amenityModel{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var ms []amenityModel
	if err := q.Order("category, name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainAmenity(m))
	}
	return out, nil
}

func (r *AmenityRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Amenity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ms []amenityModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainAmenity(m))
	}
	return out, nil
}
