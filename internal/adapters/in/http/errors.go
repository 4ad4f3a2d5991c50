package http

import (
	"context"
	"errors"
	"net/http"

	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain error kinds to HTTP status codes and writes the
// error body. Unclassified errors become 500 with a generic message so
// internals never leak to the client.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrUnavailable):
		status = http.StatusServiceUnavailable
		message = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		// A store call outliving the request budget is an availability
		// problem, not an internal fault.
		status = http.StatusServiceUnavailable
		message = errs.NewUnavailableError("storage").Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
