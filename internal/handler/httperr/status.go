package httperr

import (
	"net/http"

	"session-booking/internal/domain/flow"
	"session-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// StatusFor maps the error taxonomy onto HTTP. The first matching mark wins.
func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, flow.ErrInvalidFlowToken):
		return http.StatusUnauthorized, "Invalid or expired flow token"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.IsAny(err, errs.ErrConflict, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "Request is already being processed"
	case errs.Is(err, errs.ErrExternalService):
		return http.StatusServiceUnavailable, "Calendar service unavailable"
	case errs.Is(err, errs.ErrConsistency):
		return http.StatusInternalServerError, "Booking saved but needs manual review"
	case errs.Is(err, errs.ErrConfiguration):
		return http.StatusInternalServerError, "Service is not configured"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func Abort(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	AbortWithError(c, status, err, msg, nil)
}
