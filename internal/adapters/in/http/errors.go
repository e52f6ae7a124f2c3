package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps the core's error taxonomy onto HTTP status codes.
// Validation failures are client errors, missing references are 404s, and
// state conflicts (wrong order status, unoccupied table, overpriced menu)
// are 409s. Anything unclassified is a server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes the error response for the given failure.
// Internal errors are not echoed back to the client.
func errorJSON(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
