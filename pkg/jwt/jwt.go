package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Inspector đọc claims từ backend access token mà KHÔNG verify signature.
// Signing secret thuộc về library backend; gateway chỉ cần biết token còn
// hạn hay không để chủ động kết thúc session thay vì chờ một lần 401.
type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// ExpiresAt trả về exp claim của token.
// Token không có exp claim => zero time, không error.
func (i *Inspector) ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// IsExpired báo token đã hết hạn chưa.
// Token không parse được (backend có thể dùng opaque token) => false,
// để backend tự quyết định qua 401.
func (i *Inspector) IsExpired(tokenString string, now time.Time) bool {
	exp, err := i.ExpiresAt(tokenString)
	if err != nil || exp.IsZero() {
		return false
	}
	return now.After(exp)
}
