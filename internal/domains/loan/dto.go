package loan

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/query"
)

// DefaultLoanDays là kỳ hạn mượn mặc định khi form không chọn due date.
const DefaultLoanDays = 14

type ListLoansReq struct {
	Page      int
	Limit     int
	Status    string // filter theo EffectiveStatus, nhận cả "overdue"
	MemberID  string
	BookID    string
	SortBy    string
	SortOrder query.Order
}

// BorrowReq - form mượn sách. Business rules (member active, sách còn
// available, giới hạn số sách đang mượn) do backend quyết định;
// gateway chỉ chặn case thiếu selection, không tốn round trip.
type BorrowReq struct {
	MemberID string     `json:"member_id"`
	BookID   string     `json:"book_id"`
	Quantity int        `json:"quantity,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

func (r BorrowReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MemberID, validation.Required.Error("please select a member")),
		validation.Field(&r.BookID, validation.Required.Error("please select a book")),
		validation.Field(&r.Quantity, validation.Min(0), validation.Max(10)),
	)
}

// UpdateLoanReq - partial update cho loan còn active.
// nil = giữ nguyên; service chỉ forward field thực sự thay đổi.
type UpdateLoanReq struct {
	BookID  *string    `json:"book_id,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// BulkIDsReq là body của bulk return / bulk delete.
type BulkIDsReq struct {
	LoanIDs []string `json:"loan_ids"`
}

func (r BulkIDsReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LoanIDs, validation.Required.Error("no loans selected")),
	)
}

// BulkResult tổng hợp kết quả một bulk operation: mọi item đều được
// thử, item fail không chặn item sau.
type BulkResult struct {
	Requested int         `json:"requested"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Errors    []BulkError `json:"errors,omitempty"`
}

type BulkError struct {
	LoanID  string `json:"loan_id"`
	Message string `json:"message"`
}

// ============================================================
// BACKEND PAYLOADS
// ============================================================

// CreateLoanData là payload gửi lên backend sau khi service đã áp
// default (quantity 1, due date +14 ngày).
type CreateLoanData struct {
	MemberID string    `json:"member_id"`
	BookID   string    `json:"book_id"`
	Quantity int       `json:"quantity"`
	DueDate  time.Time `json:"due_date"`
}

// UpdateLoanData chỉ chứa field đã thay đổi.
type UpdateLoanData struct {
	BookID  *string    `json:"book_id,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
}
