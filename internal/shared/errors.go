package shared

import (
	"errors"
	"fmt"
)

// ============================================================
// ERROR TAXONOMY
// ============================================================
// Ba loại lỗi đi qua gateway:
//
// 1. ValidationError - gateway tự phát hiện (thiếu selection, pagination
//    params sai, lifecycle gating). KHÔNG có network call nào xảy ra.
// 2. NetworkError - không nhận được response từ library backend
//    (timeout, connection refused). Không tự retry.
// 3. BackendError - backend trả non-2xx kèm structured message.
//    Message của backend được hiển thị verbatim khi có.

// ValidationError là lỗi client-detected, chặn operation trước khi
// có bất kỳ round trip nào tới backend.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NetworkError: request đã gửi nhưng không có response
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("library backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// BackendError: backend trả non-2xx response
// Message giữ nguyên văn message của backend (nếu có)
type BackendError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("library backend returned status %d", e.StatusCode)
}

func IsUnauthorized(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.StatusCode == 401
}

func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.StatusCode == 404
}

// ErrorMessage chọn message hiển thị cho user theo từng loại lỗi:
// - NetworkError => generic connectivity message
// - BackendError => message verbatim, fallback nếu backend không gửi message
// - còn lại => err.Error()
func ErrorMessage(err error, fallback string) string {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "Cannot reach the library service. Please try again."
	}

	var be *BackendError
	if errors.As(err, &be) {
		if be.Message != "" {
			return be.Message
		}
		return fallback
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
