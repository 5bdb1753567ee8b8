package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/http/response"
	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

// respondServiceError maps service-layer errors onto HTTP statuses.
// Validation errors carry their per-item detail into the payload; anything
// unclassified is a 500 and gets logged.
func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error) {
	var refErrs *domain.ReferenceErrors
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &refErrs):
		response.RespondMalformed(c, refErrs)
	case errors.As(err, &fieldErrs):
		response.RespondMalformed(c, fieldErrs)
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case db.IsLockTimeout(err):
		// The whole write rolled back; the client decides whether to retry.
		response.RespondError(c, http.StatusServiceUnavailable, "lock_timeout", err)
	default:
		log.Error(op+" failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("invalid id"))
		return 0, false
	}
	return id, true
}
