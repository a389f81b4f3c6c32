package book

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/shared"
)

// ============================================================
// DOMAIN ERRORS
// ============================================================

var (
	ErrBookNotFound = errors.New("book not found")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookNotFound) || shared.IsNotFound(err)
}

// GetHTTPStatusCode map domain error về HTTP status cho handler.
// BackendError giữ nguyên status của backend.
func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if shared.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBookNotFound) {
		return http.StatusNotFound
	}

	var backendErr *shared.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.StatusCode
	}
	if shared.IsNetworkError(err) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
