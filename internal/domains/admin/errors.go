package admin

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/shared"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if shared.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
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
