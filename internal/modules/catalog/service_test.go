package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	if h != nil {
		h.ID = 11
	}
	return args.Error(0)
}

func (m *MockHotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context, f repository.HotelFilters) ([]domain.Hotel, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Hotel), args.Get(1).(int64), args.Error(2)
}

func (m *MockHotelRepository) Featured(ctx context.Context, limit int) ([]domain.Hotel, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) ReplaceAmenities(ctx context.Context, hotelID int64, amenityIDs []int64) error {
	args := m.Called(ctx, hotelID, amenityIDs)
	return args.Error(0)
}

func (m *MockHotelRepository) GetAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *MockHotelRepository) AddImage(ctx context.Context, img *domain.HotelImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockHotelRepository) GetImages(ctx context.Context, hotelID int64) ([]domain.HotelImage, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.HotelImage), args.Error(1)
}

func (m *MockHotelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 21
	}
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64, availableOnly bool) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID, availableOnly)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRoomRepository) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Create(ctx context.Context, c *domain.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetAll(ctx context.Context, f repository.CityFilters) ([]domain.City, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.City), args.Error(1)
}

type MockAmenityRepository struct {
	mock.Mock
}

func (m *MockAmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAmenityRepository) GetAll(ctx context.Context, category string) ([]domain.Amenity, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func (m *MockAmenityRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Amenity, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func newTestService() (*Service, *MockHotelRepository, *MockRoomRepository, *MockCityRepository, *MockAmenityRepository) {
	hotels := new(MockHotelRepository)
	rooms := new(MockRoomRepository)
	cities := new(MockCityRepository)
	amenities := new(MockAmenityRepository)
	return NewService(hotels, rooms, cities, amenities), hotels, rooms, cities, amenities
}

func TestService_CreateHotel_GeneratesSlugFromNameAndCity(t *testing.T) {
	svc, hotels, _, cities, _ := newTestService()

	cities.On("GetByID", mock.Anything, int64(3)).Return(&domain.City{ID: 3, Name: "Paris", Country: "France"}, nil)
	hotels.On("SlugExists", mock.Anything, "grand-palace-paris").Return(false, nil)
	hotels.On("Create", mock.Anything, mock.MatchedBy(func(h *domain.Hotel) bool {
		return h.Slug == "grand-palace-paris" && h.OwnerID == 5 && h.IsActive
	})).Return(nil)

	h, err := svc.CreateHotel(context.Background(), 5, CreateHotelRequest{
		Name:        "Grand Palace",
		CityID:      3,
		Address:     "1 Rue de Rivoli",
		Description: "A palace",
		StarRating:  5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "grand-palace-paris", h.Slug)
	hotels.AssertExpectations(t)
}

func TestService_CreateHotel_RejectsOutOfRangeStarRating(t *testing.T) {
	svc, hotels, _, cities, _ := newTestService()

	cities.On("GetByID", mock.Anything, int64(3)).Return(&domain.City{ID: 3, Name: "Paris"}, nil)
	hotels.On("SlugExists", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.CreateHotel(context.Background(), 5, CreateHotelRequest{
		Name:        "Grand Palace",
		CityID:      3,
		Address:     "addr",
		Description: "desc",
		StarRating:  7,
	})

	assert.ErrorIs(t, err, ErrValidation)
	hotels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateHotel_SlugCollisionGetsCounter(t *testing.T) {
	svc, hotels, _, cities, _ := newTestService()

	cities.On("GetByID", mock.Anything, int64(3)).Return(&domain.City{ID: 3, Name: "Paris"}, nil)
	hotels.On("SlugExists", mock.Anything, "grand-palace-paris").Return(true, nil)
	hotels.On("SlugExists", mock.Anything, "grand-palace-paris-1").Return(true, nil)
	hotels.On("SlugExists", mock.Anything, "grand-palace-paris-2").Return(false, nil)
	hotels.On("Create", mock.Anything, mock.MatchedBy(func(h *domain.Hotel) bool {
		return h.Slug == "grand-palace-paris-2"
	})).Return(nil)

	h, err := svc.CreateHotel(context.Background(), 5, CreateHotelRequest{
		Name:        "Grand Palace",
		CityID:      3,
		Address:     "addr",
		Description: "desc",
		StarRating:  4,
	})

	assert.NoError(t, err)
	assert.Equal(t, "grand-palace-paris-2", h.Slug)
}

func TestService_CreateHotel_UnknownCity(t *testing.T) {
	svc, _, _, cities, _ := newTestService()

	cities.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateHotel(context.Background(), 5, CreateHotelRequest{
		Name:        "Nowhere Inn",
		CityID:      99,
		Address:     "addr",
		Description: "desc",
		StarRating:  3,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListHotels_DefaultsPaging(t *testing.T) {
	svc, hotels, _, _, _ := newTestService()

	hotels.On("List", mock.Anything, mock.MatchedBy(func(f repository.HotelFilters) bool {
		return f.Limit == defaultPageSize && f.Offset == 0
	})).Return([]domain.Hotel{{ID: 1}}, int64(1), nil)

	page, err := svc.ListHotels(context.Background(), ListHotelsQuery{Page: 0, PageSize: -5})

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.PageSize)
	assert.Equal(t, int64(1), page.Total)
}

func TestService_UpdateHotel_ForbiddenForNonOwner(t *testing.T) {
	svc, hotels, _, _, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(11)).Return(&domain.Hotel{ID: 11, OwnerID: 7}, nil)

	name := "New Name"
	_, err := svc.UpdateHotel(context.Background(), 8, 11, false, UpdateHotelRequest{Name: &name})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateHotel_AdminBypassesOwnership(t *testing.T) {
	svc, hotels, _, _, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(11)).Return(&domain.Hotel{ID: 11, OwnerID: 7}, nil)
	hotels.On("Update", mock.Anything, mock.AnythingOfType("*domain.Hotel")).Return(nil)

	name := "New Name"
	h, err := svc.UpdateHotel(context.Background(), 8, 11, true, UpdateHotelRequest{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", h.Name)
}

func TestService_CreateRoom_OwnershipChecked(t *testing.T) {
	svc, hotels, _, _, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(11)).Return(&domain.Hotel{ID: 11, OwnerID: 7}, nil)

	_, err := svc.CreateRoom(context.Background(), 8, 11, false, CreateRoomRequest{
		RoomTypeID: 1,
		RoomNumber: "101",
		BasePrice:  100,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateRoom_Success(t *testing.T) {
	svc, hotels, rooms, _, _ := newTestService()

	hotels.On("GetByID", mock.Anything, int64(11)).Return(&domain.Hotel{ID: 11, OwnerID: 7}, nil)
	rooms.On("GetRoomType", mock.Anything, int64(1)).Return(&domain.RoomType{ID: 1, Name: domain.RoomDouble}, nil)
	rooms.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.HotelID == 11 && r.RoomNumber == "101" && r.IsAvailable
	})).Return(nil)

	room, err := svc.CreateRoom(context.Background(), 7, 11, false, CreateRoomRequest{
		RoomTypeID: 1,
		RoomNumber: "101",
		BasePrice:  100,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(21), room.ID)
}

func TestService_GetHotelBySlug_NotFound(t *testing.T) {
	svc, hotels, _, _, _ := newTestService()

	hotels.On("GetBySlug", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetHotelBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
