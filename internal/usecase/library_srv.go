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

type LibraryService interface {
	Add(ctx context.Context, userID uuid.UUID, req *request.AddLibraryItemRequest) (*response.LibraryItemResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, itemID string, req *request.UpdateLibraryStatusRequest) (*response.LibraryItemResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, itemID string) error
	List(ctx context.Context, userID uuid.UUID, status string) ([]response.LibraryItemResponse, error)
	ListDetails(ctx context.Context, userID uuid.UUID, status string) ([]response.LibraryDetailResponse, error)
	Status(ctx context.Context, userID uuid.UUID, tmdbID int, itemType string) (*response.LibraryStatusResponse, error)
}

type libraryService struct {
	repo     repository.LibraryRepository
	hydrator *Hydrator
	log      *zap.Logger
}

func NewLibraryService(repo repository.LibraryRepository, hydrator *Hydrator, log *zap.Logger) LibraryService {
	return &libraryService{
		repo:     repo,
		hydrator: hydrator,
		log:      log.With(zap.String("service", "library")),
	}
}

func parseStatus(raw string) (entity.LibraryStatus, error) {
	status := entity.LibraryStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", apperror.Validation("invalid status, expected one of PLAN_TO_WATCH, WATCHING, COMPLETED, ON_HOLD, DROPPED")
	}
	return status, nil
}

func (s *libraryService) Add(ctx context.Context, userID uuid.UUID, req *request.AddLibraryItemRequest) (*response.LibraryItemResponse, error) {
	if err := validate(s.log, "Add library item", req); err != nil {
		return nil, err
	}

	status := entity.StatusPlanToWatch
	if req.Status != "" {
		parsed, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now()
	item := &entity.LibraryItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userID,
		TmdbID:   req.TmdbID,
		ItemType: entity.MediaType(req.ItemType),
		Status:   status,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("already in library")
		}
		return nil, apperror.Internal("failed to add library item", err)
	}

	s.log.Info("Library item added",
		zap.String("item_id", item.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)))

	resp := response.LibraryItemToResponse(item)
	return &resp, nil
}

func (s *libraryService) load(ctx context.Context, userID uuid.UUID, itemID string) (*entity.LibraryItem, error) {
	id, err := parseID(itemID, "library item")
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to load library item", err)
	}

	found := item != nil
	var owner uuid.UUID
	if found {
		owner = item.UserID
	}
	if err := checkOwner(found, owner, userID, "library item"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *libraryService) UpdateStatus(ctx context.Context, userID uuid.UUID, itemID string, req *request.UpdateLibraryStatusRequest) (*response.LibraryItemResponse, error) {
	if err := validate(s.log, "Update library status", req); err != nil {
		return nil, err
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	item, err := s.load(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, item.ID, status, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("library item not found")
		}
		return nil, apperror.Internal("failed to update library item", err)
	}

	item.Status = status
	item.UpdatedAt = now

	resp := response.LibraryItemToResponse(item)
	return &resp, nil
}

func (s *libraryService) Delete(ctx context.Context, userID uuid.UUID, itemID string) error {
	item, err := s.load(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, item.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("library item not found")
		}
		return apperror.Internal("failed to delete library item", err)
	}

	s.log.Info("Library item deleted", zap.String("item_id", itemID))
	return nil
}

func (s *libraryService) find(ctx context.Context, userID uuid.UUID, status string) ([]*entity.LibraryItem, error) {
	var filter *entity.LibraryStatus
	if status != "" {
		parsed, err := parseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = &parsed
	}

	items, err := s.repo.FindByUserID(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal("failed to load library", err)
	}
	return items, nil
}

func (s *libraryService) List(ctx context.Context, userID uuid.UUID, status string) ([]response.LibraryItemResponse, error) {
	items, err := s.find(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	out := make([]response.LibraryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response.LibraryItemToResponse(item))
	}
	return out, nil
}

func (s *libraryService) ListDetails(ctx context.Context, userID uuid.UUID, status string) ([]response.LibraryDetailResponse, error) {
	items, err := s.find(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	refs := make([]MediaRef, len(items))
	for i, item := range items {
		refs[i] = MediaRef{TmdbID: item.TmdbID, ItemType: item.ItemType}
	}
	details := s.hydrator.Hydrate(ctx, refs)

	out := make([]response.LibraryDetailResponse, len(items))
	for i, item := range items {
		out[i] = response.LibraryDetailResponse{
			LibraryItemResponse: response.LibraryItemToResponse(item),
			MediaDetails:        details[i],
		}
	}
	return out, nil
}

func (s *libraryService) Status(ctx context.Context, userID uuid.UUID, tmdbID int, itemType string) (*response.LibraryStatusResponse, error) {
	mediaType, err := parseMediaType(itemType)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByUserAndMedia(ctx, userID, tmdbID, mediaType)
	if err != nil {
		return nil, apperror.Internal("failed to load library status", err)
	}

	if item == nil {
		return &response.LibraryStatusResponse{InLibrary: false}, nil
	}

	id, status := item.ID.String(), string(item.Status)
	return &response.LibraryStatusResponse{InLibrary: true, ID: &id, Status: &status}, nil
}
