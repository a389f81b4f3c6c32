package session

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-admin/internal/config"
	"library-admin/pkg/jwt"
)

// Session giữ backend bearer token + admin identity cho một browser.
// Đây là bản thay thế server-side cho localStorage token của SPA:
// token không bao giờ xuống browser, chỉ session id nằm trong cookie.
type Session struct {
	ID        string
	Token     string
	AdminID   string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager quản lý sessions trong memory.
// Mất session khi restart là chấp nhận được: user login lại,
// giống SPA bị clear localStorage.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	cfg       config.SessionConfig
	inspector *jwt.Inspector
}

func NewManager(cfg config.SessionConfig) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		cfg:       cfg,
		inspector: jwt.NewInspector(),
	}

	// Dọn session hết hạn mỗi giờ
	go m.cleanupLoop()

	return m
}

// Create tạo session mới sau khi login thành công.
func (m *Manager) Create(token, adminID, username string) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		AdminID:   adminID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get trả về session còn sống.
// Session hết hạn, hoặc backend token đã quá exp claim => coi như logged out.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	now := time.Now()
	if now.After(s.ExpiresAt) || m.inspector.IsExpired(s.Token, now) {
		m.Delete(id)
		return nil, false
	}

	return s, true
}

// Delete hủy session (logout hoặc backend 401).
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// ============================================================
// COOKIE HELPERS
// ============================================================

// SetCookie gắn session id vào response cookie.
func (m *Manager) SetCookie(c *gin.Context, s *Session) {
	c.SetCookie(m.cfg.CookieName, s.ID, int(m.cfg.TTL.Seconds()), "/", "", m.cfg.CookieSecure, true)
}

// ClearCookie xóa session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.CookieSecure, true)
}

// FromRequest đọc session từ request cookie.
func (m *Manager) FromRequest(c *gin.Context) (*Session, bool) {
	id, err := c.Cookie(m.cfg.CookieName)
	if err != nil || id == "" {
		return nil, false
	}
	return m.Get(id)
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		m.mu.Lock()
		for id, s := range m.sessions {
			if now.After(s.ExpiresAt) {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}

// ============================================================
// CONTEXT HELPERS
// ============================================================
// Session id đi theo request context để backend client có thể hủy
// đúng session khi gặp 401 (tương đương axios interceptor clear token).

type contextKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok
}
