package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

type cityModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex:idx_city_name_country"`
	Country     string    `gorm:"column:country;uniqueIndex:idx_city_name_country"`
	State       *string   `gorm:"column:state_province"`
	Latitude    *float64  `gorm:"column:latitude"`
	Longitude   *float64  `gorm:"column:longitude"`
	Timezone    string    `gorm:"column:timezone"`
	IsPopular   bool      `gorm:"column:is_popular"`
	ImageURL    *string   `gorm:"column:image_url"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (cityModel) TableName() string { return "cities" }

func toDomainCity(m cityModel) domain.City {
	return domain.City{
		ID:          m.ID,
		Name:        m.Name,
		Country:     m.Country,
		State:       strOrEmpty(m.State),
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Timezone:    m.Timezone,
		IsPopular:   m.IsPopular,
		ImageURL:    strOrEmpty(m.ImageURL),
		Description: strOrEmpty(m.Description),
		CreatedAt:   m.CreatedAt,
	}
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	tz := c.Timezone
	if tz == "" {
		tz = "UTC"
	}
	m := cityModel{
		Name:        c.Name,
		Country:     c.Country,
		State:       strOrNil(c.State),
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Timezone:    tz,
		IsPopular:   c.IsPopular,
		ImageURL:    strOrNil(c.ImageURL),
		Description: strOrNil(c.Description),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = toDomainCity(m)
	return nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var m cityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainCity(m)
	return &c, nil
}

type CityFilters struct {
	Country     string
	PopularOnly bool
	Search      string
}

func (r *CityRepository) GetAll(ctx context.Context, f CityFilters) ([]domain.City, error) {
	q := r.db.WithContext(ctx).Model(&cityModel{})
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.PopularOnly {
		q = q.Where("is_popular = ?", true)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR country LIKE ?", like, like)
	}

	var ms []cityModel
	if err := q.Order("country, name").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.City, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainCity(m))
	}
	return out, nil
}
