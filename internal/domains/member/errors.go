package member

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/shared"
)

var (
	ErrMemberNotFound = errors.New("member not found")
)

func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if shared.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrMemberNotFound) {
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
