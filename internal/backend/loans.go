package backend

import (
	"context"

	"library-admin/internal/domains/loan"
)

// ============================================================
// LOAN ENDPOINTS
// ============================================================

func (c *Client) ListLoans(ctx context.Context) ([]loan.Loan, error) {
	var loans []loan.Loan
	if err := c.get(ctx, "/loans", &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) GetLoan(ctx context.Context, loanID string) (loan.Loan, error) {
	var l loan.Loan
	if err := c.get(ctx, "/loans/"+loanID, &l); err != nil {
		return loan.Loan{}, err
	}
	return l, nil
}

func (c *Client) CreateLoan(ctx context.Context, data loan.CreateLoanData) error {
	return c.post(ctx, "/loans", data, nil)
}

func (c *Client) UpdateLoan(ctx context.Context, loanID string, data loan.UpdateLoanData) error {
	return c.put(ctx, "/loans/"+loanID, data, nil)
}

func (c *Client) ReturnLoan(ctx context.Context, loanID string) error {
	return c.patch(ctx, "/loans/"+loanID+"/return", nil, nil)
}

func (c *Client) DeleteLoan(ctx context.Context, loanID string) error {
	return c.delete(ctx, "/loans/"+loanID)
}
