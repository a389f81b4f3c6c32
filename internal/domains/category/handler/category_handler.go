package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-admin/internal/domains/category"
	"library-admin/internal/shared"
	"library-admin/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

func (h *CategoryHandler) handleError(c *gin.Context, err error, fallback string) {
	if shared.IsUnauthorized(err) {
		response.SessionExpired(c)
		return
	}

	statusCode := category.GetHTTPStatusCode(err)
	response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, fallback))
}

// ========== LIST: GET /api/categories ==========
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to load categories")
		return
	}

	response.Success(c, http.StatusOK, "", categories)
}

// ========== READ: GET /api/categories/:code ==========
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err, "Failed to load category")
		return
	}

	response.Success(c, http.StatusOK, "", cat)
}

// ========== CREATE: POST /api/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to add category")
		return
	}

	response.Success(c, http.StatusCreated, "Category added successfully!", nil)
}

// ========== UPDATE: PUT /api/categories/:code ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	var req category.UpdateCategoryReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("code"), req); err != nil {
		h.handleError(c, err, "Failed to update category")
		return
	}

	response.Success(c, http.StatusOK, "Category updated successfully!", nil)
}

// ========== DELETE: DELETE /api/categories/:code ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.handleError(c, err, "Failed to delete category")
		return
	}

	response.Success(c, http.StatusOK, "Category deleted successfully!", nil)
}
