package adaptor

import (
	"net/http"

	"cinetrack/internal/dto/request"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// UpdateReview handles PATCH /api/reviews/{id} (owner only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// DeleteReview handles DELETE /api/reviews/{id} (owner only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// RemoveReview handles DELETE /api/admin/reviews/{id} (admin only)
func (h *ReviewHandler) RemoveReview(w http.ResponseWriter, r *http.Request) {
	if !utils.IsAdminFromContext(r.Context()) {
		utils.ResponseForbidden(w, "Admin access required")
		return
	}

	if err := h.service.RemoveReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "remove review")
		return
	}

	utils.ResponseSuccess(w, "Review removed successfully", nil)
}

// GetMediaReviews handles GET /api/reviews/media/{tmdbId}/{itemType} (public)
func (h *ReviewHandler) GetMediaReviews(w http.ResponseWriter, r *http.Request) {
	tmdbID, ok := pathID(w, chi.URLParam(r, "tmdbId"), "tmdb id")
	if !ok {
		return
	}

	reviews, err := h.service.GetMediaReviews(r.Context(), tmdbID, chi.URLParam(r, "itemType"), pagination(r))
	if err != nil {
		h.handleServiceError(w, err, "get media reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// GetMyReviews handles GET /api/reviews/me (protected)
func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID, pagination(r))
	if err != nil {
		h.handleServiceError(w, err, "get my reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

func pagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	// Validate per_page max
	if req.PerPage > request.MaxPerPage {
		req.PerPage = request.MaxPerPage
	}
	return req
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
