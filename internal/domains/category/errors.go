package category

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/shared"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has books and cannot be deleted")
)

func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if shared.IsValidationError(err) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrCategoryNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrCategoryInUse) {
		return http.StatusConflict
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
