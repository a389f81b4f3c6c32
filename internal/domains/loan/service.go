package loan

import (
	"context"

	"library-admin/internal/query"
)

// Service - lifecycle gating nằm ở layer này: mọi mutation đọc loan
// hiện tại từ backend rồi check status GỐC trước khi gửi mutation.
type Service interface {
	// List trả rows với status đã derive (active + quá hạn => overdue).
	List(ctx context.Context, req ListLoansReq) ([]Loan, query.Pagination, error)
	Get(ctx context.Context, loanID string) (Loan, error)

	// Borrow áp defaults (quantity 1, due date +14 ngày) rồi gửi backend.
	Borrow(ctx context.Context, req BorrowReq) error

	// Update chỉ cho loan active; chỉ forward field thực sự thay đổi.
	Update(ctx context.Context, loanID string, req UpdateLoanReq) error

	// Return chỉ cho loan active.
	Return(ctx context.Context, loanID string) error

	// Delete chỉ cho loan completed.
	Delete(ctx context.Context, loanID string) error

	// Bulk variants: tuần tự, không early-abort, báo cáo từng item.
	BulkReturn(ctx context.Context, loanIDs []string) (BulkResult, error)
	BulkDelete(ctx context.Context, loanIDs []string) (BulkResult, error)
}
