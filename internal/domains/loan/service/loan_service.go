package service

import (
	"context"
	"time"

	"library-admin/internal/domains/loan"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/pkg/cache"
	"library-admin/pkg/logger"
)

type loanServiceImpl struct {
	backend loan.Backend
	cache   cache.Cache
	ttl     time.Duration

	// now inject được cho test, mặc định time.Now.
	now func() time.Time
}

func NewLoanService(backend loan.Backend, c cache.Cache, ttl time.Duration) loan.Service {
	return &loanServiceImpl{
		backend: backend,
		cache:   c,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *loanServiceImpl) listAll(ctx context.Context) ([]loan.Loan, error) {
	key := shared.EntityLoans.CacheKey()

	var loans []loan.Loan
	found, err := s.cache.Get(ctx, key, &loans)
	if err != nil {
		logger.Warn("Loans cache read failed", err)
	}
	if found {
		return loans, nil
	}

	loans, err = s.backend.ListLoans(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, loans, s.ttl); err != nil {
		logger.Warn("Loans cache write failed", err)
	}
	return loans, nil
}

// List filter theo EffectiveStatus (nhận cả "overdue"), member, book.
// Rows trả về mang status đã derive - STATUS HIỂN THỊ, các mutation
// path bên dưới không bao giờ dùng lại giá trị này.
func (s *loanServiceImpl) List(ctx context.Context, req loan.ListLoansReq) ([]loan.Loan, query.Pagination, error) {
	loans, err := s.listAll(ctx)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	now := s.now()
	rows := make([]loan.Loan, 0, len(loans))
	for _, l := range loans {
		l.Status = l.EffectiveStatus(now)

		if req.Status != "" && l.Status != loan.Status(req.Status) {
			continue
		}
		if req.MemberID != "" && l.MemberID != req.MemberID {
			continue
		}
		if req.BookID != "" && !l.HasBook(req.BookID) {
			continue
		}
		rows = append(rows, l)
	}

	if req.SortBy != "" {
		rows = query.SortBy(rows, req.SortBy, req.SortOrder)
	}

	result, err := query.Paginate(rows, req.Page, req.Limit)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return result.Data, result.Pagination, nil
}

func (s *loanServiceImpl) Get(ctx context.Context, loanID string) (loan.Loan, error) {
	if loanID == "" {
		return loan.Loan{}, shared.NewValidationError("loan id is required")
	}

	l, err := s.backend.GetLoan(ctx, loanID)
	if err != nil {
		if shared.IsNotFound(err) {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, err
	}
	return l, nil
}

// Borrow validate selection rồi áp defaults. Business rules sâu hơn
// (member active, sách available, quota) là việc của backend.
func (s *loanServiceImpl) Borrow(ctx context.Context, req loan.BorrowReq) error {
	if err := req.Validate(); err != nil {
		return err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	dueDate := s.now().AddDate(0, 0, loan.DefaultLoanDays)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	data := loan.CreateLoanData{
		MemberID: req.MemberID,
		BookID:   req.BookID,
		Quantity: quantity,
		DueDate:  dueDate,
	}

	if err := s.backend.CreateLoan(ctx, data); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Update gating: đọc loan hiện tại, chỉ active mới edit được.
// Chỉ forward field thực sự khác giá trị hiện tại; không có gì đổi
// thì không gọi backend.
func (s *loanServiceImpl) Update(ctx context.Context, loanID string, req loan.UpdateLoanReq) error {
	current, err := s.Get(ctx, loanID)
	if err != nil {
		return err
	}

	if !current.IsActive() {
		return loan.ErrLoanNotActive
	}

	data := loan.UpdateLoanData{}
	changed := false

	if req.BookID != nil && !current.HasBook(*req.BookID) {
		data.BookID = req.BookID
		changed = true
	}

	if req.DueDate != nil {
		if req.DueDate.Before(current.LoanDate) {
			return loan.ErrDueBeforeLoanDate
		}
		if !req.DueDate.Equal(current.DueDate) {
			data.DueDate = req.DueDate
			changed = true
		}
	}

	if !changed {
		return nil
	}

	if err := s.backend.UpdateLoan(ctx, loanID, data); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Return gating: chỉ loan active. Loan overdue vẫn là active ở
// backend nên vẫn return được.
func (s *loanServiceImpl) Return(ctx context.Context, loanID string) error {
	current, err := s.Get(ctx, loanID)
	if err != nil {
		return err
	}

	if !current.IsActive() {
		return loan.ErrLoanNotActive
	}

	if err := s.backend.ReturnLoan(ctx, loanID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Delete gating: chỉ loan completed.
func (s *loanServiceImpl) Delete(ctx context.Context, loanID string) error {
	current, err := s.Get(ctx, loanID)
	if err != nil {
		return err
	}

	if !current.IsCompleted() {
		return loan.ErrLoanNotCompleted
	}

	if err := s.backend.DeleteLoan(ctx, loanID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// ============================================================
// BULK OPERATIONS
// ============================================================
// Tuần tự, không parallel: backend update stock counter không atomic
// cho concurrent mutations. Item fail được ghi nhận rồi đi tiếp,
// KHÔNG early-abort.

func (s *loanServiceImpl) BulkReturn(ctx context.Context, loanIDs []string) (loan.BulkResult, error) {
	return s.bulk(ctx, loanIDs, s.Return, "Failed to return loan")
}

func (s *loanServiceImpl) BulkDelete(ctx context.Context, loanIDs []string) (loan.BulkResult, error) {
	return s.bulk(ctx, loanIDs, s.Delete, "Failed to delete loan")
}

func (s *loanServiceImpl) bulk(
	ctx context.Context,
	loanIDs []string,
	op func(context.Context, string) error,
	fallback string,
) (loan.BulkResult, error) {
	result := loan.BulkResult{Requested: len(loanIDs)}

	for _, id := range loanIDs {
		if err := op(ctx, id); err != nil {
			logger.Warn("Bulk loan operation: item failed", err)
			result.Failed++
			result.Errors = append(result.Errors, loan.BulkError{
				LoanID:  id,
				Message: shared.ErrorMessage(err, fallback),
			})
			continue
		}
		result.Succeeded++
	}

	return result, nil
}

func (s *loanServiceImpl) invalidate(ctx context.Context) {
	keys := shared.InvalidationKeys(shared.EntityLoans)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Loans cache invalidation failed", err)
	}
}
