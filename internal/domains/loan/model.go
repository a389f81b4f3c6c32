package loan

import "time"

// ============================================================
// LOAN MODEL
// ============================================================
// Loan row backend trả về đã denormalized: member_name và book title
// nhúng sẵn, list view không cần join phía client.

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"

	// StatusOverdue là DISPLAY status, derive lúc render từ
	// active + due_date đã qua. Backend không lưu giá trị này và
	// gateway không bao giờ gửi nó ngược lên.
	StatusOverdue Status = "overdue"
)

type BookRef struct {
	BookID string `json:"book_id"`
	Title  string `json:"title"`
}

type Loan struct {
	ID         int64     `json:"id"`
	LoanID     string    `json:"loan_id"` // display id, ví dụ "LN0001"
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Books      []BookRef `json:"books"`
	LoanDate   time.Time `json:"loan_date"`
	DueDate    time.Time `json:"due_date"`
	Status     Status    `json:"status"`
}

// EffectiveStatus derive status hiển thị.
// Lifecycle gating dùng Status GỐC, không dùng giá trị này:
// loan overdue vẫn là active => vẫn edit/return được.
func (l *Loan) EffectiveStatus(now time.Time) Status {
	if l.Status == StatusActive && now.After(l.DueDate) {
		return StatusOverdue
	}
	return l.Status
}

func (l *Loan) IsActive() bool {
	return l.Status == StatusActive
}

func (l *Loan) IsCompleted() bool {
	return l.Status == StatusCompleted
}

// HasBook check loan có chứa book (theo display id) không.
func (l *Loan) HasBook(bookID string) bool {
	for _, b := range l.Books {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}
