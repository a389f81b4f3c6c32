package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/internal/backend"
	"library-admin/internal/config"
	"library-admin/internal/session"
	"library-admin/internal/shared/response"
)

func newAuthRouter(sessions *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireSession(sessions), func(c *gin.Context) {
		token, _ := backend.TokenFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"token": token})
	})
	return r
}

func newSessionManager() *session.Manager {
	return session.NewManager(config.SessionConfig{
		CookieName: "admin_session",
		TTL:        time.Hour,
	})
}

func TestRequireSession(t *testing.T) {
	t.Run("no cookie gets session expired with login redirect", func(t *testing.T) {
		r := newAuthRouter(newSessionManager())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "SESSION_EXPIRED", body.Error.Code)
		assert.Equal(t, "/login", body.Error.Redirect)
	})

	t.Run("valid session injects the backend token", func(t *testing.T) {
		sessions := newSessionManager()
		s := sessions.Create("backend-token", "1", "admin")
		r := newAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: s.ID})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "backend-token")
	})

	t.Run("destroyed session is rejected on the next request", func(t *testing.T) {
		sessions := newSessionManager()
		s := sessions.Create("backend-token", "1", "admin")
		r := newAuthRouter(sessions)

		// backend 401 hook đã hủy session giữa hai request
		sessions.Delete(s.ID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "admin_session", Value: s.ID})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
