package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomTypeModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name;index"`
	DisplayName   *string `gorm:"column:display_name"`
	Description   *string `gorm:"column:description"`
	MaxOccupancy  int     `gorm:"column:max_occupancy"`
	MaxAdults     int     `gorm:"column:max_adults"`
	MaxChildren   int     `gorm:"column:max_children"`
	BedType       string  `gorm:"column:bed_type"`
	BedCount      int     `gorm:"column:bed_count"`
	RoomSize      *int    `gorm:"column:room_size"`
	HasBalcony    bool    `gorm:"column:has_balcony"`
	HasSeaView    bool    `gorm:"column:has_sea_view"`
	HasCityView   bool    `gorm:"column:has_city_view"`
	HasGardenView bool    `gorm:"column:has_garden_view"`
}

func (roomTypeModel) TableName() string { return "room_types" }

type roomModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	HotelID    int64  `gorm:"column:hotel_id;uniqueIndex:idx_hotel_room_number;index:idx_rooms_hotel_available"`
	RoomTypeID int64  `gorm:"column:room_type_id;index"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex:idx_hotel_room_number"`
	Floor      *int   `gorm:"column:floor"`

	BasePrice       float64  `gorm:"column:base_price"`
	WeekendPrice    *float64 `gorm:"column:weekend_price"`
	PeakSeasonPrice *float64 `gorm:"column:peak_season_price"`

	SpecialFeatures  *string `gorm:"column:special_features"`
	IsAvailable      bool    `gorm:"column:is_available;index:idx_rooms_hotel_available"`
	IsAccessible     bool    `gorm:"column:is_accessible"`
	IsSmokingAllowed bool    `gorm:"column:is_smoking_allowed"`
	MainImageURL     *string `gorm:"column:main_image_url"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

type roomAmenityModel struct {
	RoomID    int64 `gorm:"column:room_id;uniqueIndex:idx_room_amenity"`
	AmenityID int64 `gorm:"column:amenity_id;uniqueIndex:idx_room_amenity"`
}

func (roomAmenityModel) TableName() string { return "room_amenities" }

type roomImageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RoomID    int64     `gorm:"column:room_id;index"`
	ImageURL  string    `gorm:"column:image_url"`
	Caption   *string   `gorm:"column:caption"`
	SortOrder int       `gorm:"column:sort_order"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (roomImageModel) TableName() string { return "room_images" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:               m.ID,
		HotelID:          m.HotelID,
		RoomTypeID:       m.RoomTypeID,
		RoomNumber:       m.RoomNumber,
		Floor:            m.Floor,
		BasePrice:        m.BasePrice,
		WeekendPrice:     m.WeekendPrice,
		PeakSeasonPrice:  m.PeakSeasonPrice,
		SpecialFeatures:  strOrEmpty(m.SpecialFeatures),
		IsAvailable:      m.IsAvailable,
		IsAccessible:     m.IsAccessible,
		IsSmokingAllowed: m.IsSmokingAllowed,
		MainImageURL:     strOrEmpty(m.MainImageURL),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:               r.ID,
		HotelID:          r.HotelID,
		RoomTypeID:       r.RoomTypeID,
		RoomNumber:       r.RoomNumber,
		Floor:            r.Floor,
		BasePrice:        r.BasePrice,
		WeekendPrice:     r.WeekendPrice,
		PeakSeasonPrice:  r.PeakSeasonPrice,
		SpecialFeatures:  strOrNil(r.SpecialFeatures),
		IsAvailable:      r.IsAvailable,
		IsAccessible:     r.IsAccessible,
		IsSmokingAllowed: r.IsSmokingAllowed,
		MainImageURL:     strOrNil(r.MainImageURL),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ms []roomModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64, availableOnly bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var ms []roomModel
	if err := q.Order("floor, room_number").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	m := roomTypeModel{
		Name:          string(rt.Name),
		DisplayName:   strOrNil(rt.DisplayName),
		Description:   strOrNil(rt.Description),
		MaxOccupancy:  rt.MaxOccupancy,
		MaxAdults:     rt.MaxAdults,
		MaxChildren:   rt.MaxChildren,
		BedType:       string(rt.BedType),
		BedCount:      rt.BedCount,
		RoomSize:      rt.RoomSize,
		HasBalcony:    rt.HasBalcony,
		HasSeaView:    rt.HasSeaView,
		HasCityView:   rt.HasCityView,
		HasGardenView: rt.HasGardenView,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	rt.ID = m.ID
	return nil
}

func (r *RoomRepository) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	var m roomTypeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.RoomType{
		ID:            m.ID,
		Name:          domain.RoomCategory(m.Name),
		DisplayName:   strOrEmpty(m.DisplayName),
		Description:   strOrEmpty(m.Description),
		MaxOccupancy:  m.MaxOccupancy,
		MaxAdults:     m.MaxAdults,
		MaxChildren:   m.MaxChildren,
		BedType:       domain.BedType(m.BedType),
		BedCount:      m.BedCount,
		RoomSize:      m.RoomSize,
		HasBalcony:    m.HasBalcony,
		HasSeaView:    m.HasSeaView,
		HasCityView:   m.HasCityView,
		HasGardenView: m.HasGardenView,
	}, nil
}
