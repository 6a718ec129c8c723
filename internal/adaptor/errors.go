package adaptor

import (
	"net/http"
	"strings"

	"vehicle-leasing/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service error messages onto the HTTP error
// taxonomy. Store-level failures fall through to a generic 500; their
// detail stays in the server log.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "forbidden"),
		strings.Contains(errMsg, "does not match"),
		strings.Contains(errMsg, "does not belong"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "already has an active lease"),
		strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "cannot cancel"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid") && strings.Contains(errMsg, "format"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
