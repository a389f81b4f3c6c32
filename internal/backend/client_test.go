package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/internal/domains/admin"
	"library-admin/internal/shared"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestAuthorizationHeader(t *testing.T) {
	t.Run("token from context goes out as bearer", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		})

		ctx := WithToken(context.Background(), "jwt-token-here")
		_, err := client.ListBooks(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Bearer jwt-token-here", gotAuth)
	})

	t.Run("no token means no header", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		})

		_, err := client.ListBooks(context.Background())

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestErrorNormalization(t *testing.T) {
	t.Run("structured error envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":false,"error":{"code":"BOOK_LOANED","message":"Book is currently loaned"}}`))
		})

		_, err := client.ListBooks(context.Background())

		var backendErr *shared.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, http.StatusConflict, backendErr.StatusCode)
		assert.Equal(t, "BOOK_LOANED", backendErr.Code)
		assert.Equal(t, "Book is currently loaned", backendErr.Message)
	})

	t.Run("flat message envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Book not found"}`))
		})

		_, err := client.GetBook(context.Background(), "MAT000001")

		var backendErr *shared.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, "Book not found", backendErr.Message)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("unparseable body keeps status code", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>oops</html>`))
		})

		_, err := client.ListBooks(context.Background())

		var backendErr *shared.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
		assert.Empty(t, backendErr.Message)
	})

	t.Run("unreachable backend is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // đóng ngay: connection refused

		client := NewClient(srv.URL, 1*time.Second)
		_, err := client.ListBooks(context.Background())

		assert.True(t, shared.IsNetworkError(err))
	})
}

func TestUnauthorizedHook(t *testing.T) {
	t.Run("401 fires the hook and still returns the error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Token expired"}`))
		})

		fired := false
		client.OnUnauthorized(func(ctx context.Context) { fired = true })

		_, err := client.ListBooks(WithToken(context.Background(), "stale"))

		assert.True(t, fired)
		assert.True(t, shared.IsUnauthorized(err))
	})

	t.Run("other statuses do not fire the hook", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		fired := false
		client.OnUnauthorized(func(ctx context.Context) { fired = true })

		_, err := client.ListBooks(context.Background())

		assert.False(t, fired)
		assert.Error(t, err)
	})
}

func TestEnvelopeDecoding(t *testing.T) {
	t.Run("books come as a bare array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/books", r.URL.Path)
			w.Write([]byte(`[{"id":1,"book_id":"MAT000001","title":"Calculus","category_id":3,"status":"available"}]`))
		})

		books, err := client.ListBooks(context.Background())

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "MAT000001", books[0].BookID)
	})

	t.Run("categories come wrapped in a data envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/categories", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":[{"id":3,"code":"MAT","name":"Mathematics","book_count":12}]}`))
		})

		categories, err := client.ListCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "MAT", categories[0].Code)
		assert.Equal(t, 12, categories[0].BookCount)
	})

	t.Run("password change uses the short pass path", func(t *testing.T) {
		var gotMethod, gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.Write([]byte(`{"message":"Password updated"}`))
		})

		err := client.ChangePassword(context.Background(), admin.ChangePasswordReq{
			CurrentPassword: "old-secret",
			NewPassword:     "new-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/admin/me/pass", gotPath)
	})

	t.Run("member search escapes the query", func(t *testing.T) {
		var gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/members/search", r.URL.Path)
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`[]`))
		})

		_, err := client.SearchMembers(context.Background(), "nguyen van a")

		require.NoError(t, err)
		assert.Equal(t, "nguyen van a", gotQuery)
	})
}
