package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-admin/internal/domains/loan"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/internal/shared/response"
	"library-admin/internal/shared/utils"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type LoanHandler struct {
	service loan.Service
}

func NewLoanHandler(svc loan.Service) *LoanHandler {
	return &LoanHandler{
		service: svc,
	}
}

func (h *LoanHandler) handleError(c *gin.Context, err error, fallback string) {
	if shared.IsUnauthorized(err) {
		response.SessionExpired(c)
		return
	}

	statusCode := loan.GetHTTPStatusCode(err)
	response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, fallback))
}

// ========== LIST: GET /api/loans ==========
// Query params: page, limit, status, member_id, book_id, sort_by, sort_order
// status nhận cả "overdue" (derived lúc render).
func (h *LoanHandler) List(c *gin.Context) {
	req := loan.ListLoansReq{
		Page:      utils.QueryInt(c, "page", 1),
		Limit:     utils.QueryInt(c, "limit", 10),
		Status:    c.Query("status"),
		MemberID:  c.Query("member_id"),
		BookID:    c.Query("book_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: query.ParseOrder(c.Query("sort_order")),
	}

	rows, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to load loans")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      pagination.Total,
		TotalPages: pagination.TotalPages,
	})
}

// ========== READ: GET /api/loans/:id ==========
func (h *LoanHandler) Get(c *gin.Context) {
	l, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to load loan")
		return
	}

	response.Success(c, http.StatusOK, "", l)
}

// ========== BORROW: POST /api/loans ==========
func (h *LoanHandler) Borrow(c *gin.Context) {
	var req loan.BorrowReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Borrow(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to borrow book")
		return
	}

	response.Success(c, http.StatusCreated, "Book borrowed successfully!", nil)
}

// ========== UPDATE: PUT /api/loans/:id ==========
func (h *LoanHandler) Update(c *gin.Context) {
	var req loan.UpdateLoanReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		h.handleError(c, err, "Failed to update loan")
		return
	}

	response.Success(c, http.StatusOK, "Loan updated successfully!", nil)
}

// ========== RETURN: PATCH /api/loans/:id/return ==========
func (h *LoanHandler) Return(c *gin.Context) {
	if err := h.service.Return(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to return book")
		return
	}

	response.Success(c, http.StatusOK, "Book returned successfully!", nil)
}

// ========== DELETE: DELETE /api/loans/:id ==========
func (h *LoanHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete loan")
		return
	}

	response.Success(c, http.StatusOK, "Loan deleted successfully!", nil)
}

// ========== BULK RETURN: POST /api/loans/bulk/return ==========
// Body: {"loan_ids": ["LN0001", "LN0002"]}
// Luôn 200 kèm per-item report; item fail không làm fail cả batch.
func (h *LoanHandler) BulkReturn(c *gin.Context) {
	h.bulk(c, h.service.BulkReturn, "Failed to return selected loans")
}

// ========== BULK DELETE: POST /api/loans/bulk/delete ==========
func (h *LoanHandler) BulkDelete(c *gin.Context) {
	h.bulk(c, h.service.BulkDelete, "Failed to delete selected loans")
}

func (h *LoanHandler) bulk(
	c *gin.Context,
	op func(ctx context.Context, loanIDs []string) (loan.BulkResult, error),
	fallback string,
) {
	var req loan.BulkIDsReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := op(c.Request.Context(), req.LoanIDs)
	if err != nil {
		h.handleError(c, err, fallback)
		return
	}

	response.Success(c, http.StatusOK, "", result)
}
