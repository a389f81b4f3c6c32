package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-admin/internal/domains/admin"
	"library-admin/internal/session"
	"library-admin/internal/shared"
	"library-admin/internal/shared/middleware"
	"library-admin/internal/shared/response"
	"library-admin/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
// AdminHandler sở hữu session lifecycle: login đổi backend token lấy
// session cookie, logout hủy session. Token không bao giờ rời server.
type AdminHandler struct {
	service  admin.Service
	sessions *session.Manager
}

func NewAdminHandler(svc admin.Service, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{
		service:  svc,
		sessions: sessions,
	}
}

func (h *AdminHandler) handleError(c *gin.Context, err error, fallback string) {
	if shared.IsUnauthorized(err) {
		response.SessionExpired(c)
		return
	}

	statusCode := admin.GetHTTPStatusCode(err)
	response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, fallback))
}

// ========== LOGIN: POST /api/auth/login ==========
func (h *AdminHandler) Login(c *gin.Context) {
	var creds admin.Credentials
	if err := c.BindJSON(&creds); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		statusCode := admin.GetHTTPStatusCode(err)
		response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, "Login failed"))
		return
	}

	s := h.sessions.Create(result.Token, result.Admin.ID, result.Admin.Username)
	h.sessions.SetCookie(c, s)

	logger.Info("Admin logged in", map[string]interface{}{
		"username": result.Admin.Username,
	})

	response.Success(c, http.StatusOK, "Login successful!", result.Admin)
}

// ========== REGISTER: POST /api/auth/register ==========
// Tạo account mới, KHÔNG tự login: user quay về login form.
func (h *AdminHandler) Register(c *gin.Context) {
	var creds admin.Credentials
	if err := c.BindJSON(&creds); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		h.handleError(c, err, "Registration failed")
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully! Please log in.", created)
}

// ========== LOGOUT: POST /api/auth/logout ==========
func (h *AdminHandler) Logout(c *gin.Context) {
	if s, ok := middleware.SessionFromContext(c); ok {
		h.sessions.Delete(s.ID)
	}
	h.sessions.ClearCookie(c)

	response.Success(c, http.StatusOK, "Logged out.", nil)
}

// ========== PROFILE: GET /api/auth/me ==========
func (h *AdminHandler) Me(c *gin.Context) {
	me, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, "", me)
}

// ========== PROFILE: PUT /api/auth/me ==========
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req admin.UpdateProfileReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to update profile")
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully!", updated)
}

// ========== PROFILE: PUT /api/auth/me/password ==========
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req admin.ChangePasswordReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to change password")
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully!", nil)
}
