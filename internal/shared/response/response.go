package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope chung cho mọi JSON response của gateway.
// View components (bảng, form, modal) đọc message làm toast/notification,
// meta làm pagination state.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Redirect báo client phải điều hướng đi đâu (session reset => /login)
	Redirect string `json:"redirect,omitempty"`
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, "NOT_FOUND", message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, "CONFLICT", message)
}

func BadGateway(c *gin.Context, message string) {
	Error(c, 502, "BACKEND_UNREACHABLE", message)
}

// CodeFor map HTTP status về error code string trong envelope.
func CodeFor(statusCode int) string {
	switch statusCode {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 502:
		return "BACKEND_UNREACHABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// SessionExpired dùng khi backend trả 401: session đã bị reset,
// client phải quay về login view.
func SessionExpired(c *gin.Context) {
	c.JSON(401, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:     "SESSION_EXPIRED",
			Message:  "Your session has expired. Please log in again.",
			Redirect: "/login",
		},
	})
}
