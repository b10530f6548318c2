package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, authed, owner, admin *gin.RouterGroup) {
	public.GET("/hotels/:slug/reviews", h.HotelReviews)

	authed.POST("/reviews", h.CreateReview)
	authed.GET("/my/reviews", h.MyReviews)
	authed.POST("/reviews/:id/vote", h.Vote)

	owner.POST("/reviews/:id/respond", h.Respond)

	admin.POST("/reviews/:id/moderate", h.Moderate)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rev, err := h.service.CreateReview(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		case ErrNoStay:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "A completed stay is required to review this hotel")
		case ErrAlreadyExists:
			response.Error(c, http.StatusConflict, "CONFLICT", "You already reviewed this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rev)
}

// HotelReviews lists approved reviews. The route takes the hotel ID,
// not the slug, so it works without a catalog lookup.
func (h *Handler) HotelReviews(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel ID")
		return
	}

	f := repository.ReviewFilters{Sort: c.Query("sort")}
	if v, err := strconv.Atoi(c.DefaultQuery("min_rating", "0")); err == nil {
		f.MinRating = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		f.Offset = v
	}

	reviews, total, err := h.service.HotelReviews(c.Request.Context(), hotelID, f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews, "total": total})
}

func (h *Handler) MyReviews(c *gin.Context) {
	reviews, err := h.service.MyReviews(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) Vote(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review ID")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsHelpful == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_helpful is required")
		return
	}

	helpful, notHelpful, err := h.service.Vote(c.Request.Context(), c.GetInt64("user_id"), reviewID, *req.IsHelpful)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot vote on your own review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record vote")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"helpful_count":     helpful,
		"not_helpful_count": notHelpful,
	})
}

func (h *Handler) Respond(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review ID")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Content is required")
		return
	}

	isAdmin := c.GetString("user_type") == "admin"
	resp, err := h.service.Respond(c.Request.Context(), c.GetInt64("user_id"), reviewID, isAdmin, req.Content)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the hotel owner can respond")
		case ErrAlreadyExists:
			response.Error(c, http.StatusConflict, "CONFLICT", "A response already exists for this review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create response")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Moderate(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review ID")
		return
	}

	var req struct {
		Approved bool   `json:"approved"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Moderate(c.Request.Context(), c.GetInt64("user_id"), reviewID, req.Approved, req.Notes); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to moderate review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"moderated": true})
}
