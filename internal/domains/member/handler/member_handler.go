package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-admin/internal/domains/member"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/internal/shared/response"
	"library-admin/internal/shared/utils"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type MemberHandler struct {
	service member.Service
}

func NewMemberHandler(svc member.Service) *MemberHandler {
	return &MemberHandler{
		service: svc,
	}
}

func (h *MemberHandler) handleError(c *gin.Context, err error, fallback string) {
	if shared.IsUnauthorized(err) {
		response.SessionExpired(c)
		return
	}

	statusCode := member.GetHTTPStatusCode(err)
	response.Error(c, statusCode, response.CodeFor(statusCode), shared.ErrorMessage(err, fallback))
}

// ========== LIST: GET /api/members ==========
// Query params: page, limit, search, study_program, sort_by, sort_order
func (h *MemberHandler) List(c *gin.Context) {
	req := member.ListMembersReq{
		Page:         utils.QueryInt(c, "page", 1),
		Limit:        utils.QueryInt(c, "limit", 10),
		Search:       c.Query("search"),
		StudyProgram: c.Query("study_program"),
		SortBy:       c.Query("sort_by"),
		SortOrder:    query.ParseOrder(c.Query("sort_order")),
	}

	rows, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to load members")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, rows, &response.Meta{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      pagination.Total,
		TotalPages: pagination.TotalPages,
	})
}

// ========== SEARCH: GET /api/members/search?q= ==========
// Autocomplete cho loan form, passthrough tới backend search.
func (h *MemberHandler) Search(c *gin.Context) {
	members, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err, "Failed to search members")
		return
	}

	response.Success(c, http.StatusOK, "", members)
}

// ========== READ: GET /api/members/:id ==========
func (h *MemberHandler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Failed to load member")
		return
	}

	response.Success(c, http.StatusOK, "", m)
}

// ========== CREATE: POST /api/members ==========
func (h *MemberHandler) Create(c *gin.Context) {
	var req member.CreateMemberReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Failed to add member")
		return
	}

	response.Success(c, http.StatusCreated, "Member added successfully!", nil)
}

// ========== UPDATE: PUT /api/members/:id ==========
func (h *MemberHandler) Update(c *gin.Context) {
	var req member.UpdateMemberReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		h.handleError(c, err, "Failed to update member")
		return
	}

	response.Success(c, http.StatusOK, "Member updated successfully!", nil)
}

// ========== DELETE: DELETE /api/members/:id ==========
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Failed to delete member")
		return
	}

	response.Success(c, http.StatusOK, "Member deleted successfully!", nil)
}
