package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed, staff *gin.RouterGroup) {
	authed.POST("/payments", h.RecordPayment)
	authed.GET("/bookings/:id/payments", h.BookingPayments)

	staff.POST("/bookings/:id/refund", h.RefundBooking)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	isStaff := c.GetString("user_type") == "admin"
	p, err := h.service.RecordPayment(c.Request.Context(), c.GetInt64("user_id"), isStaff, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrBadStatus:
			response.Error(c, http.StatusBadRequest, "STATE_CONFLICT", "Booking status does not allow payments")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) BookingPayments(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	isStaff := c.GetString("user_type") == "admin"
	summary, err := h.service.BookingPayments(c.Request.Context(), c.GetInt64("user_id"), bookingID, isStaff)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		}
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) RefundBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := h.service.RefundBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrBadStatus:
			response.Error(c, http.StatusBadRequest, "STATE_CONFLICT", "Booking cannot be refunded")
		case ErrNothingToRefund:
			response.Error(c, http.StatusBadRequest, "STATE_CONFLICT", "No completed payments to refund")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to refund booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
