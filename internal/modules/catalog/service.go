package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"
)

const defaultPageSize = 20

type Service struct {
	hotels    HotelRepository
	rooms     RoomRepository
	cities    CityRepository
	amenities AmenityRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository, cities CityRepository, amenities AmenityRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms, cities: cities, amenities: amenities}
}

type HotelPage struct {
	Hotels   []domain.Hotel `json:"hotels"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func (s *Service) ListHotels(ctx context.Context, q ListHotelsQuery) (*HotelPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 || size > 100 {
		size = defaultPageSize
	}

	var stars []int
	if q.Stars > 0 {
		stars = []int{q.Stars}
	}

	hotels, total, err := s.hotels.List(ctx, repository.HotelFilters{
		Location:     strings.TrimSpace(q.Location),
		CityID:       q.CityID,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Stars:        stars,
		MinGuestRate: q.MinRating,
		AmenityIDs:   q.AmenityIDs,
		FeaturedOnly: q.FeaturedOnly,
		Sort:         q.Sort,
		Limit:        size,
		Offset:       (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	return &HotelPage{Hotels: hotels, Total: total, Page: page, PageSize: size}, nil
}

func (s *Service) FeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	if limit < 1 || limit > 50 {
		limit = 6
	}
	return s.hotels.Featured(ctx, limit)
}

// GetHotelBySlug loads the public hotel detail: amenities, images and
// bookable rooms included.
func (s *Service) GetHotelBySlug(ctx context.Context, slugStr string) (*domain.Hotel, error) {
	h, err := s.hotels.GetBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if h.Amenities, err = s.hotels.GetAmenities(ctx, h.ID); err != nil {
		return nil, err
	}
	if h.Images, err = s.hotels.GetImages(ctx, h.ID); err != nil {
		return nil, err
	}
	if h.Rooms, err = s.rooms.ListByHotel(ctx, h.ID, true); err != nil {
		return nil, err
	}
	if city, err := s.cities.GetByID(ctx, h.CityID); err == nil {
		h.City = city
	}
	return h, nil
}

func (s *Service) CreateHotel(ctx context.Context, ownerID int64, req CreateHotelRequest) (*domain.Hotel, error) {
	city, err := s.cities.GetByID(ctx, req.CityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	hotelSlug, err := s.generateSlug(ctx, req.Name, city.Name)
	if err != nil {
		return nil, err
	}

	h := &domain.Hotel{
		Name:             strings.TrimSpace(req.Name),
		Slug:             hotelSlug,
		HotelType:        domain.HotelType(req.HotelType),
		ChainID:          req.ChainID,
		CityID:           req.CityID,
		Address:          req.Address,
		PostalCode:       req.PostalCode,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		StarRating:       req.StarRating,
		BasePrice:        req.BasePrice,
		Currency:         req.Currency,
		MainImageURL:     req.MainImageURL,
		OwnerID:          ownerID,
		CheckInTime:      req.CheckInTime,
		CheckOutTime:     req.CheckOutTime,
		SmokingPolicy:    domain.SmokingPolicy(req.SmokingPolicy),
		IsActive:         true,
	}
	if errs := validator.Validate(h); errs != nil {
		return nil, ErrValidation
	}

	if err := s.hotels.Create(ctx, h); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if len(req.AmenityIDs) > 0 {
		if err := s.hotels.ReplaceAmenities(ctx, h.ID, req.AmenityIDs); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, ownerID, hotelID int64, isAdmin bool, req UpdateHotelRequest) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if h.OwnerID != ownerID && !isAdmin {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		h.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		h.Address = *req.Address
	}
	if req.Phone != nil {
		h.Phone = *req.Phone
	}
	if req.Email != nil {
		h.Email = *req.Email
	}
	if req.Website != nil {
		h.Website = *req.Website
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.ShortDescription != nil {
		h.ShortDescription = *req.ShortDescription
	}
	if req.StarRating != nil {
		if *req.StarRating < 1 || *req.StarRating > 5 {
			return nil, ErrValidation
		}
		h.StarRating = *req.StarRating
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, ErrValidation
		}
		h.BasePrice = *req.BasePrice
	}
	if req.MainImageURL != nil {
		h.MainImageURL = *req.MainImageURL
	}
	if req.CheckInTime != nil {
		h.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		h.CheckOutTime = *req.CheckOutTime
	}
	if req.SmokingPolicy != nil {
		h.SmokingPolicy = domain.SmokingPolicy(*req.SmokingPolicy)
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}

	if req.AmenityIDs != nil {
		if err := s.hotels.ReplaceAmenities(ctx, h.ID, req.AmenityIDs); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (s *Service) MyHotels(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	return s.hotels.ListByOwner(ctx, ownerID)
}

func (s *Service) CreateRoom(ctx context.Context, ownerID, hotelID int64, isAdmin bool, req CreateRoomRequest) (*domain.Room, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if h.OwnerID != ownerID && !isAdmin {
		return nil, ErrForbidden
	}

	if _, err := s.rooms.GetRoomType(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	room := &domain.Room{
		HotelID:          hotelID,
		RoomTypeID:       req.RoomTypeID,
		RoomNumber:       strings.TrimSpace(req.RoomNumber),
		Floor:            req.Floor,
		BasePrice:        req.BasePrice,
		WeekendPrice:     req.WeekendPrice,
		PeakSeasonPrice:  req.PeakSeasonPrice,
		SpecialFeatures:  req.SpecialFeatures,
		IsAvailable:      true,
		IsAccessible:     req.IsAccessible,
		IsSmokingAllowed: req.IsSmokingAllowed,
		MainImageURL:     req.MainImageURL,
	}
	if errs := validator.Validate(room); errs != nil {
		return nil, ErrValidation
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) HotelRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID, true)
}

func (s *Service) ListCities(ctx context.Context, f repository.CityFilters) ([]domain.City, error) {
	return s.cities.GetAll(ctx, f)
}

func (s *Service) ListAmenities(ctx context.Context, category string) ([]domain.Amenity, error) {
	return s.amenities.GetAll(ctx, category)
}

// generateSlug builds "name-city" and appends a numeric suffix until the
// slug is free.
func (s *Service) generateSlug(ctx context.Context, name, city string) (string, error) {
	base := slug.Make(fmt.Sprintf("%s-%s", name, city))
	candidate := base
	for i := 1; ; i++ {
		exists, err := s.hotels.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
