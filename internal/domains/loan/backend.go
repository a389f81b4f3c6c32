package loan

import "context"

type Backend interface {
	ListLoans(ctx context.Context) ([]Loan, error)
	GetLoan(ctx context.Context, loanID string) (Loan, error)
	CreateLoan(ctx context.Context, data CreateLoanData) error
	UpdateLoan(ctx context.Context, loanID string, data UpdateLoanData) error

	// ReturnLoan đánh dấu loan completed; backend tự trả sách về
	// available và set status.
	ReturnLoan(ctx context.Context, loanID string) error

	DeleteLoan(ctx context.Context, loanID string) error
}
