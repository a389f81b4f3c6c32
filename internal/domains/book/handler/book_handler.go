package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-admin/internal/domains/book"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/internal/shared/response"
	"library-admin/internal/shared/utils"
	"library-admin/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// handleError map error về envelope thống nhất.
// 401 từ backend là case riêng: session đã bị destroy, client phải
// quay về login view.
func (h *BookHandler) handleError(c *gin.Context, err error, fallback string) {
	if shared.IsUnauthorized(err) {
		response.SessionExpired(c)
		return
	}

	statusCode := book.GetHTTPStatusCode(err)
	response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, fallback))
}

// ========== LIST: GET /api/books ==========
// Query params: page, limit, search, category, sort_by, sort_order
func (h *BookHandler) List(c *gin.Context) {
	req := book.ListBooksReq{
		Page:       utils.QueryInt(c, "page", 1),
		Limit:      utils.QueryInt(c, "limit", 10),
		Search:     c.Query("search"),
		CategoryID: utils.QueryInt64(c, "category", 0),
		SortBy:     c.Query("sort_by"),
		SortOrder:  query.ParseOrder(c.Query("sort_order")),
	}

	rows, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to load books")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      pagination.Total,
		TotalPages: pagination.TotalPages,
	})
}

// ========== READ: GET /api/books/:id ==========
func (h *BookHandler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to load book")
		return
	}

	response.Success(c, http.StatusOK, "", b)
}

// ========== CREATE: POST /api/books ==========
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to add book")
		return
	}

	response.Success(c, http.StatusCreated, "Book added successfully!", nil)
}

// ========== UPDATE: PUT /api/books/:id ==========
func (h *BookHandler) Update(c *gin.Context) {
	var req book.UpdateBookReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		h.handleError(c, err, "Failed to update book")
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully!", nil)
}

// ========== DELETE: DELETE /api/books/:id ==========
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete book")
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully!", nil)
}

// ========== EXPORT: GET /api/books/export ==========
// Trả file .xlsx của toàn bộ tập sách khớp search/filter hiện tại.
func (h *BookHandler) Export(c *gin.Context) {
	req := book.ListBooksReq{
		Search:     c.Query("search"),
		CategoryID: utils.QueryInt64(c, "category", 0),
		SortBy:     c.Query("sort_by"),
		SortOrder:  query.ParseOrder(c.Query("sort_order")),
	}

	f, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to export books")
		return
	}

	filename := fmt.Sprintf("books_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to stream excel file", err)
	}
}
