package api

import (
	"errors"
	"log/slog"
	"net/http"

	"football-field-booking/internal/domain/booking"
	"football-field-booking/internal/handler/httperr"
	"football-field-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidID      = "Invalid id"
	msgInvalidBooking = "Invalid booking"
	msgForbidden      = "You do not have permission to perform this action"
	msgInternal       = "Internal server error"

	msgTimestampFormat = "start_time and end_time must be ISO-8601 timestamps"
)

// abortWithUseCaseError maps usecase and domain errors onto HTTP responses.
func abortWithUseCaseError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	switch {
	case errors.As(err, &ve):
		httperr.AbortWithNonFieldErrors(c, http.StatusBadRequest, err, msgInvalidBooking, ve.Message())
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
	case errors.Is(err, errs.ErrDistrictNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "District not found", nil)
	case errors.Is(err, errs.ErrFieldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden, nil)
	default:
		slog.Error("Unhandled usecase error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}
