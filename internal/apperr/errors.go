package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrConflict      = errors.New("resource conflict") // e.g. email already registered
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrPaymentFailed = errors.New("payment failed")
	ErrInternal      = errors.New("internal error")
)

// HTTPStatus maps domain errors to HTTP status codes. A duplicate email is a
// 400 on this API, not a 409.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrConflict), errors.Is(err, ErrPaymentFailed):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
