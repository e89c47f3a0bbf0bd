package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/dto/request"
	"cinetrack/internal/dto/response"
	"cinetrack/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID uuid.UUID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, reviewID string) error
	GetMediaReviews(ctx context.Context, tmdbID int, itemType string, req *request.PaginatedRequest) (*response.MediaReviewsResponse, error)
	GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MyReviewResponse], error)

	// Moderation
	RemoveReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	hydrator *Hydrator
	log      *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, hydrator *Hydrator, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:     repo,
		hydrator: hydrator,
		log:      log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(s.log, "Create review", req); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userID,
		TmdbID:   req.TmdbID,
		ItemType: entity.MediaType(req.ItemType),
		Rating:   req.Rating,
		Body:     strings.TrimSpace(req.Body),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperror.Internal("failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("tmdb_id", req.TmdbID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) loadOwned(ctx context.Context, userID uuid.UUID, reviewID string) (*entity.Review, error) {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return nil, err
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to load review", err)
	}

	found := review != nil
	var owner uuid.UUID
	if found {
		owner = review.UserID
	}
	if err := checkOwner(found, owner, userID, "review"); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID uuid.UUID, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(s.log, "Update review", req); err != nil {
		return nil, err
	}
	if req.Rating == nil && req.Body == nil {
		return nil, apperror.Validation("nothing to update")
	}

	review, err := s.loadOwned(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Body != nil {
		review.Body = strings.TrimSpace(*req.Body)
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("review not found")
		}
		return nil, apperror.Internal("failed to update review", err)
	}

	s.log.Info("Review updated", zap.String("review_id", reviewID))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID uuid.UUID, reviewID string) error {
	review, err := s.loadOwned(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	return s.delete(ctx, review.ID)
}

func (s *reviewService) RemoveReview(ctx context.Context, reviewID string) error {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return err
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal("failed to load review", err)
	}
	if review == nil {
		return apperror.NotFound("review not found")
	}

	s.log.Info("Review removed by moderator",
		zap.String("review_id", reviewID),
		zap.String("author_id", review.UserID.String()))
	return s.delete(ctx, id)
}

func (s *reviewService) delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("review not found")
		}
		return apperror.Internal("failed to delete review", err)
	}
	return nil
}

func (s *reviewService) GetMediaReviews(ctx context.Context, tmdbID int, itemType string, req *request.PaginatedRequest) (*response.MediaReviewsResponse, error) {
	mediaType, err := parseMediaType(itemType)
	if err != nil {
		return nil, err
	}
	if tmdbID <= 0 {
		return nil, apperror.Validation("tmdb id must be a positive integer")
	}

	reviews, err := s.repo.FindByMedia(ctx, tmdbID, mediaType, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperror.Internal("failed to load reviews", err)
	}

	average, count, err := s.repo.GetMediaStats(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, apperror.Internal("failed to load review stats", err)
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, response.ReviewWithAuthorToResponse(r))
	}

	return &response.MediaReviewsResponse{
		TmdbID:   tmdbID,
		ItemType: string(mediaType),
		Media:    s.hydrator.HydrateOne(ctx, MediaRef{TmdbID: tmdbID, ItemType: mediaType}),
		Stats: response.ReviewStats{
			AverageRating: average,
			ReviewCount:   count,
		},
		Reviews: response.NewPaginatedResponse(items, req.Page, req.Limit(), count),
	}, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MyReviewResponse], error) {
	reviews, err := s.repo.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperror.Internal("failed to load reviews", err)
	}

	total, err := s.repo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to count reviews", err)
	}

	refs := make([]MediaRef, len(reviews))
	for i, r := range reviews {
		refs[i] = MediaRef{TmdbID: r.TmdbID, ItemType: r.ItemType}
	}
	details := s.hydrator.Hydrate(ctx, refs)

	items := make([]response.MyReviewResponse, len(reviews))
	for i, r := range reviews {
		items[i] = response.MyReviewResponse{
			ReviewResponse: response.ReviewToResponse(r),
			MediaDetails:   details[i],
		}
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}
