package loan

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/shared"
)

// ============================================================
// DOMAIN ERRORS
// ============================================================
// Lifecycle gating errors được chặn tại gateway TRƯỚC khi có bất kỳ
// call nào tới backend.

var (
	ErrLoanNotFound = errors.New("loan not found")

	// Chỉ loan active mới edit / return được.
	ErrLoanNotActive = errors.New("loan is not active")

	// Chỉ loan completed mới xóa được (xóa loan active sẽ làm mất
	// dấu sách đang nằm ngoài thư viện).
	ErrLoanNotCompleted = errors.New("only completed loans can be deleted")

	ErrDueBeforeLoanDate = errors.New("due date cannot be before the loan date")
)

func GetHTTPStatusCode(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if shared.IsValidationError(err) || errors.Is(err, ErrDueBeforeLoanDate) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrLoanNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrLoanNotActive) || errors.Is(err, ErrLoanNotCompleted) {
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
