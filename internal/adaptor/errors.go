package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinetrack/pkg/apperror"
	"cinetrack/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// writeServiceError maps a service error to its envelope. Anything outside the
// apperror taxonomy is a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		if len(appErr.Fields) > 0 {
			utils.ResponseBadRequest(w, appErr.Message, appErr.Fields)
			return
		}
		utils.ResponseBadRequest(w, appErr.Message, nil)

	case apperror.KindConflict:
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, appErr.Message, nil)

	case apperror.KindAuthentication:
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, appErr.Message)

	case apperror.KindAuthorization:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, appErr.Message)

	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, appErr.Message)

	case apperror.KindUpstream:
		log.Error("Failed to "+operation+" - upstream", zap.Error(err))
		utils.ResponseInternalError(w, appErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate reads a JSON body into dst and answers 400 itself when the
// body is malformed or fails validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// currentUser answers 401 when the request carries no authenticated user.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
