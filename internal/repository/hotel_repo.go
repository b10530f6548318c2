package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelChainModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex"`
	LogoURL     *string `gorm:"column:logo_url"`
	Website     *string `gorm:"column:website"`
	Description *string `gorm:"column:description"`
	StarRating  *int    `gorm:"column:star_rating"`
}

func (hotelChainModel) TableName() string { return "hotel_chains" }

type hotelModel struct {
	ID               int64   `gorm:"column:id;primaryKey"`
	Name             string  `gorm:"column:name;index"`
	Slug             string  `gorm:"column:slug;uniqueIndex"`
	HotelType        string  `gorm:"column:hotel_type"`
	ChainID          *int64  `gorm:"column:chain_id"`
	CityID           int64   `gorm:"column:city_id;index:idx_hotels_city_active"`
	Address          string  `gorm:"column:address"`
	PostalCode       *string `gorm:"column:postal_code"`
	Latitude         *float64 `gorm:"column:latitude"`
	Longitude        *float64 `gorm:"column:longitude"`
	Phone            *string `gorm:"column:phone"`
	Email            *string `gorm:"column:email"`
	Website          *string `gorm:"column:website"`
	Description      string  `gorm:"column:description"`
	ShortDescription *string `gorm:"column:short_description"`

	StarRating   int     `gorm:"column:star_rating"`
	GuestRating  float64 `gorm:"column:guest_rating;index"`
	TotalReviews int     `gorm:"column:total_reviews"`

	BasePrice float64 `gorm:"column:base_price"`
	Currency  string  `gorm:"column:currency"`

	MainImageURL *string `gorm:"column:main_image_url"`

	OwnerID       int64   `gorm:"column:owner_id;index"`
	LicenseNumber *string `gorm:"column:license_number"`
	TaxID         *string `gorm:"column:tax_id"`

	CheckInTime        string  `gorm:"column:check_in_time"`
	CheckOutTime       string  `gorm:"column:check_out_time"`
	CancellationPolicy *string `gorm:"column:cancellation_policy"`
	PetPolicy          *string `gorm:"column:pet_policy"`
	SmokingPolicy      string  `gorm:"column:smoking_policy"`

	IsActive         bool       `gorm:"column:is_active;index:idx_hotels_city_active"`
	IsVerified       bool       `gorm:"column:is_verified"`
	IsFeatured       bool       `gorm:"column:is_featured"`
	VerificationDate *time.Time `gorm:"column:verification_date"`

	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

type hotelAmenityModel struct {
	HotelID   int64 `gorm:"column:hotel_id;uniqueIndex:idx_hotel_amenity"`
	AmenityID int64 `gorm:"column:amenity_id;uniqueIndex:idx_hotel_amenity"`
}

func (hotelAmenityModel) TableName() string { return "hotel_amenities" }

type hotelImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	HotelID   int64     `gorm:"column:hotel_id;index"`
	ImageURL  string    `gorm:"column:image_url"`
	Caption   *string   `gorm:"column:caption"`
	IsPrimary bool      `gorm:"column:is_primary"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (hotelImageModel) TableName() string { return "hotel_images" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:                 m.ID,
		Name:               m.Name,
		Slug:               m.Slug,
		HotelType:          domain.HotelType(m.HotelType),
		ChainID:            m.ChainID,
		CityID:             m.CityID,
		Address:            m.Address,
		PostalCode:         strOrEmpty(m.PostalCode),
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		Phone:              strOrEmpty(m.Phone),
		Email:              strOrEmpty(m.Email),
		Website:            strOrEmpty(m.Website),
		Description:        m.Description,
		ShortDescription:   strOrEmpty(m.ShortDescription),
		StarRating:         m.StarRating,
		GuestRating:        m.GuestRating,
		TotalReviews:       m.TotalReviews,
		BasePrice:          m.BasePrice,
		Currency:           m.Currency,
		MainImageURL:       strOrEmpty(m.MainImageURL),
		OwnerID:            m.OwnerID,
		LicenseNumber:      strOrEmpty(m.LicenseNumber),
		TaxID:              strOrEmpty(m.TaxID),
		CheckInTime:        m.CheckInTime,
		CheckOutTime:       m.CheckOutTime,
		CancellationPolicy: strOrEmpty(m.CancellationPolicy),
		PetPolicy:          strOrEmpty(m.PetPolicy),
		SmokingPolicy:      domain.SmokingPolicy(m.SmokingPolicy),
		IsActive:           m.IsActive,
		IsVerified:         m.IsVerified,
		IsFeatured:         m.IsFeatured,
		VerificationDate:   m.VerificationDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	checkIn := h.CheckInTime
	if checkIn == "" {
		checkIn = "15:00"
	}
	checkOut := h.CheckOutTime
	if checkOut == "" {
		checkOut = "11:00"
	}
	currency := h.Currency
	if currency == "" {
		currency = "USD"
	}
	smoking := string(h.SmokingPolicy)
	if smoking == "" {
		smoking = string(domain.SmokingForbidden)
	}
	hotelType := string(h.HotelType)
	if hotelType == "" {
		hotelType = string(domain.HotelStandard)
	}
	return hotelModel{
		ID:                 h.ID,
		Name:               h.Name,
		Slug:               h.Slug,
		HotelType:          hotelType,
		ChainID:            h.ChainID,
		CityID:             h.CityID,
		Address:            h.Address,
		PostalCode:         strOrNil(h.PostalCode),
		Latitude:           h.Latitude,
		Longitude:          h.Longitude,
		Phone:              strOrNil(h.Phone),
		Email:              strOrNil(h.Email),
		Website:            strOrNil(h.Website),
		Description:        h.Description,
		ShortDescription:   strOrNil(h.ShortDescription),
		StarRating:         h.StarRating,
		GuestRating:        h.GuestRating,
		TotalReviews:       h.TotalReviews,
		BasePrice:          h.BasePrice,
		Currency:           currency,
		MainImageURL:       strOrNil(h.MainImageURL),
		OwnerID:            h.OwnerID,
		LicenseNumber:      strOrNil(h.LicenseNumber),
		TaxID:              strOrNil(h.TaxID),
		CheckInTime:        checkIn,
		CheckOutTime:       checkOut,
		CancellationPolicy: strOrNil(h.CancellationPolicy),
		PetPolicy:          strOrNil(h.PetPolicy),
		SmokingPolicy:      smoking,
		IsActive:           h.IsActive,
		IsVerified:         h.IsVerified,
		IsFeatured:         h.IsFeatured,
		VerificationDate:   h.VerificationDate,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&hotelModel{}).
		Where("slug = ?", slug).
		Count(&cnt)
	return cnt > 0, tx.Error
}

type HotelFilters struct {
	Location     string
	CityID       int64
	MinPrice     float64
	MaxPrice     float64
	Stars        []int
	AmenityIDs   []int64
	MinGuestRate float64
	FeaturedOnly bool
	Sort         string
	Limit        int
	Offset       int
}

// List returns active hotels matching the filters plus the total count
// before pagination. Location matches hotel name, city name or address.
func (r *HotelRepository) List(ctx context.Context, f HotelFilters) ([]domain.Hotel, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&hotelModel{}).
		Where("hotels.is_active = ?", true)

	if f.Location != "" {
		like := "%" + f.Location + "%"
		q = q.Joins("JOIN cities ON cities.id = hotels.city_id").
			Where("hotels.name LIKE ? OR cities.name LIKE ? OR hotels.address LIKE ?", like, like, like)
	}
	if f.CityID > 0 {
		q = q.Where("hotels.city_id = ?", f.CityID)
	}
	if f.MinPrice > 0 {
		q = q.Where("hotels.base_price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("hotels.base_price <= ?", f.MaxPrice)
	}
	if len(f.Stars) > 0 {
		q = q.Where("hotels.star_rating IN ?", f.Stars)
	}
	if f.MinGuestRate > 0 {
		q = q.Where("hotels.guest_rating >= ?", f.MinGuestRate)
	}
	if f.FeaturedOnly {
		q = q.Where("hotels.is_featured = ?", true)
	}
	if len(f.AmenityIDs) > 0 {
		q = q.Where(`hotels.id IN (
			SELECT hotel_id FROM hotel_amenities
			WHERE amenity_id IN ?
			GROUP BY hotel_id
			HAVING COUNT(DISTINCT amenity_id) = ?)`, f.AmenityIDs, len(f.AmenityIDs))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "price_low":
		q = q.Order("hotels.base_price")
	case "price_high":
		q = q.Order("hotels.base_price DESC")
	case "rating":
		q = q.Order("hotels.guest_rating DESC")
	default:
		q = q.Order("hotels.name")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var ms []hotelModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, total, nil
}

func (r *HotelRepository) Featured(ctx context.Context, limit int) ([]domain.Hotel, error) {
	var ms []hotelModel
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("guest_rating DESC, name").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

// UpdateRating stores the recomputed guest rating roll-up.
func (r *HotelRepository) UpdateRating(ctx context.Context, hotelID int64, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).
		Model(&hotelModel{}).
		Where("id = ?", hotelID).
		Updates(map[string]any{
			"guest_rating":  rating,
			"total_reviews": totalReviews,
		}).Error
}

// ReplaceAmenities rewrites the hotel's amenity set.
func (r *HotelRepository) ReplaceAmenities(ctx context.Context, hotelID int64, amenityIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&hotelAmenityModel{}).Error; err != nil {
			return err
		}
		for _, id := range amenityIDs {
			if err := tx.Create(&hotelAmenityModel{HotelID: hotelID, AmenityID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *HotelRepository) GetAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error) {
	var ms []amenityModel
	err := r.db.WithContext(ctx).
		Joins("JOIN hotel_amenities ON hotel_amenities.amenity_id = amenities.id").
		Where("hotel_amenities.hotel_id = ?", hotelID).
		Order("amenities.category, amenities.name").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Amenity, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainAmenity(m))
	}
	return out, nil
}

func (r *HotelRepository) AddImage(ctx context.Context, img *domain.HotelImage) error {
	m := hotelImageModel{
		HotelID:   img.HotelID,
		ImageURL:  img.ImageURL,
		Caption:   strOrNil(img.Caption),
		IsPrimary: img.IsPrimary,
		SortOrder: img.SortOrder,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	img.ID = m.ID
	img.CreatedAt = m.CreatedAt
	return nil
}

func (r *HotelRepository) GetImages(ctx context.Context, hotelID int64) ([]domain.HotelImage, error) {
	var ms []hotelImageModel
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("sort_order, created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.HotelImage, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.HotelImage{
			ID:        m.ID,
			HotelID:   m.HotelID,
			ImageURL:  m.ImageURL,
			Caption:   strOrEmpty(m.Caption),
			IsPrimary: m.IsPrimary,
			SortOrder: m.SortOrder,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (r *HotelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	var ms []hotelModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}
