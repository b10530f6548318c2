package catalog

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	Update(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f repository.HotelFilters) ([]domain.Hotel, int64, error)
	Featured(ctx context.Context, limit int) ([]domain.Hotel, error)
	ReplaceAmenities(ctx context.Context, hotelID int64, amenityIDs []int64) error
	GetAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error)
	AddImage(ctx context.Context, img *domain.HotelImage) error
	GetImages(ctx context.Context, hotelID int64) ([]domain.HotelImage, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64, availableOnly bool) ([]domain.Room, error)
	CreateRoomType(ctx context.Context, rt *domain.RoomType) error
	GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error)
}

type CityRepository interface {
	Create(ctx context.Context, c *domain.City) error
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	GetAll(ctx context.Context, f repository.CityFilters) ([]domain.City, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetAll(ctx context.Context, category string) ([]domain.Amenity, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Amenity, error)
}
