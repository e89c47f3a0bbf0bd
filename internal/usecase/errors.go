package usecase

import (
	"context"
	"errors"
	"net/url"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/tmdb"
	"cinetrack/pkg/apperror"
	"cinetrack/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// upstreamError converts a TMDB failure at the service boundary: a 404 becomes
// NotFound, anything else is logged with its endpoint and params and becomes Upstream.
func upstreamError(log *zap.Logger, err error, endpoint string, params url.Values, notFound string) error {
	if tmdb.IsNotFound(err) {
		log.Info("TMDB item not found", zap.String("endpoint", endpoint))
		return apperror.NotFound(notFound)
	}
	if errors.Is(err, context.Canceled) {
		return apperror.Upstream("Request cancelled", err)
	}

	log.Error("TMDB request failed",
		zap.String("endpoint", endpoint),
		zap.String("params", params.Encode()),
		zap.Int("status", tmdb.StatusCode(err)),
		zap.Error(err),
	)
	return apperror.Upstream("Failed to fetch data from TMDB", err)
}

func validate(log *zap.Logger, operation string, req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		log.Warn(operation+" validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return apperror.ValidationFields(errs)
	}
	return nil
}

// parseID rejects malformed resource ids before any lookup, so a bad id is a 400
// and never a 404.
func parseID(raw, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid " + resource + " id")
	}
	return id, nil
}

func parseMediaType(raw string) (entity.MediaType, error) {
	itemType := entity.MediaType(raw)
	if !itemType.Valid() {
		return "", apperror.Validation("item_type must be movie or series")
	}
	return itemType, nil
}

// checkOwner applies the shared ordering: missing is 404, not owned is 403.
func checkOwner(found bool, ownerID, callerID uuid.UUID, resource string) error {
	if !found {
		return apperror.NotFound(resource + " not found")
	}
	if ownerID != callerID {
		return apperror.Authorization("you do not own this " + resource)
	}
	return nil
}
