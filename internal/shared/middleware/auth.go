package middleware

import (
	"github.com/gin-gonic/gin"

	"library-admin/internal/backend"
	"library-admin/internal/session"
	"library-admin/internal/shared/response"
)

const sessionContextKey = "admin_session"

// RequireSession - Middleware xác thực session cookie
// Request không có session hợp lệ => 401 + redirect về login view.
// Request hợp lệ => backend token và session id đi vào request context
// cho các backend call phía sau.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessions.FromRequest(c)
		if !ok {
			sessions.ClearCookie(c)
			response.SessionExpired(c)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, s)

		ctx := backend.WithToken(c.Request.Context(), s.Token)
		ctx = session.WithID(ctx, s.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionFromContext lấy session hiện tại trong handler.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
