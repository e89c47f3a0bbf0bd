package usecase

import (
	"context"
	"errors"
	"time"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/dto/request"
	"cinetrack/internal/dto/response"
	"cinetrack/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, favoriteID string) error
	List(ctx context.Context, userID uuid.UUID) ([]response.FavoriteResponse, error)
	ListDetails(ctx context.Context, userID uuid.UUID) ([]response.FavoriteDetailResponse, error)
	Check(ctx context.Context, userID uuid.UUID, tmdbID int, itemType string) (*response.FavoriteCheckResponse, error)
}

type favoriteService struct {
	repo     repository.FavoriteRepository
	hydrator *Hydrator
	log      *zap.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, hydrator *Hydrator, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo:     repo,
		hydrator: hydrator,
		log:      log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error) {
	if err := validate(s.log, "Create favorite", req); err != nil {
		return nil, err
	}

	favorite := &entity.Favorite{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userID,
		TmdbID:   req.TmdbID,
		ItemType: entity.MediaType(req.ItemType),
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Info("Favorite already exists",
				zap.String("user_id", userID.String()),
				zap.Int("tmdb_id", req.TmdbID),
				zap.String("item_type", req.ItemType))
			return nil, apperror.Conflict("already in favorites")
		}
		return nil, apperror.Internal("failed to add favorite", err)
	}

	s.log.Info("Favorite created",
		zap.String("favorite_id", favorite.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("tmdb_id", favorite.TmdbID))

	resp := response.FavoriteToResponse(favorite)
	return &resp, nil
}

func (s *favoriteService) Delete(ctx context.Context, userID uuid.UUID, favoriteID string) error {
	id, err := parseID(favoriteID, "favorite")
	if err != nil {
		return err
	}

	favorite, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal("failed to load favorite", err)
	}

	found := favorite != nil
	var owner uuid.UUID
	if found {
		owner = favorite.UserID
	}
	if err := checkOwner(found, owner, userID, "favorite"); err != nil {
		if apperror.Is(err, apperror.KindAuthorization) {
			s.log.Warn("Favorite delete by non-owner",
				zap.String("favorite_id", favoriteID),
				zap.String("user_id", userID.String()))
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("favorite not found")
		}
		return apperror.Internal("failed to delete favorite", err)
	}

	s.log.Info("Favorite deleted", zap.String("favorite_id", favoriteID))
	return nil
}

func (s *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]response.FavoriteResponse, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to load favorites", err)
	}

	out := make([]response.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, response.FavoriteToResponse(f))
	}
	return out, nil
}

func (s *favoriteService) ListDetails(ctx context.Context, userID uuid.UUID) ([]response.FavoriteDetailResponse, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to load favorites", err)
	}

	refs := make([]MediaRef, len(favorites))
	for i, f := range favorites {
		refs[i] = MediaRef{TmdbID: f.TmdbID, ItemType: f.ItemType}
	}
	details := s.hydrator.Hydrate(ctx, refs)

	out := make([]response.FavoriteDetailResponse, len(favorites))
	for i, f := range favorites {
		out[i] = response.FavoriteDetailResponse{
			FavoriteResponse: response.FavoriteToResponse(f),
			MediaDetails:     details[i],
		}
	}
	return out, nil
}

func (s *favoriteService) Check(ctx context.Context, userID uuid.UUID, tmdbID int, itemType string) (*response.FavoriteCheckResponse, error) {
	mediaType, err := parseMediaType(itemType)
	if err != nil {
		return nil, err
	}

	favorite, err := s.repo.FindByUserAndMedia(ctx, userID, tmdbID, mediaType)
	if err != nil {
		return nil, apperror.Internal("failed to check favorite", err)
	}

	if favorite == nil {
		return &response.FavoriteCheckResponse{Favorited: false}, nil
	}

	id := favorite.ID.String()
	return &response.FavoriteCheckResponse{Favorited: true, ID: &id}, nil
}
