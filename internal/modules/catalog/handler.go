package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/repository"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, owner *gin.RouterGroup) {
	public.GET("/hotels", h.ListHotels)
	public.GET("/hotels/featured", h.FeaturedHotels)
	public.GET("/hotels/search", h.SearchHotels)
	public.GET("/hotels/:slug", h.GetHotel)
	public.GET("/hotels/:slug/rooms", h.HotelRooms)
	public.GET("/cities", h.ListCities)
	public.GET("/amenities", h.ListAmenities)

	owner.POST("/hotels", h.CreateHotel)
	owner.PATCH("/hotels/:id", h.UpdateHotel)
	owner.GET("/my/hotels", h.MyHotels)
	owner.POST("/hotels/:id/rooms", h.CreateRoom)
}

func (h *Handler) ListHotels(c *gin.Context) {
	var q ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	page, err := h.service.ListHotels(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// SearchHotels is the free-text variant of ListHotels: q matches hotel
// name, city name and country.
func (h *Handler) SearchHotels(c *gin.Context) {
	var q ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	q.Location = c.Query("q")

	page, err := h.service.ListHotels(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search hotels")
		return
	}

	response.Success(c, http.StatusOK, page)
}

func (h *Handler) FeaturedHotels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	hotels, err := h.service.FeaturedHotels(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load featured hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotelBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		}
		return
	}

	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) HotelRooms(c *gin.Context) {
	hotel, err := h.service.GetHotelBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": hotel.Rooms})
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel data")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "CONFLICT", "Hotel already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		}
		return
	}

	response.Success(c, http.StatusCreated, hotel)
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	isAdmin := c.GetString("user_type") == "admin"
	hotel, err := h.service.UpdateHotel(c.Request.Context(), c.GetInt64("user_id"), hotelID, isAdmin, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this hotel")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hotel")
		}
		return
	}

	response.Success(c, http.StatusOK, hotel)
}

func (h *Handler) MyHotels(c *gin.Context) {
	hotels, err := h.service.MyHotels(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	isAdmin := c.GetString("user_type") == "admin"
	room, err := h.service.CreateRoom(c.Request.Context(), c.GetInt64("user_id"), hotelID, isAdmin, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this hotel")
		case ErrDuplicate:
			response.Error(c, http.StatusConflict, "CONFLICT", "Room number already exists in this hotel")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}

	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context(), repository.CityFilters{
		Country:     c.Query("country"),
		PopularOnly: c.Query("popular") == "true",
		Search:      c.Query("q"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cities")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) ListAmenities(c *gin.Context) {
	amenities, err := h.service.ListAmenities(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list amenities")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"amenities": amenities})
}
