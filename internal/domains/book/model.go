package book

import "strings"

// ============================================================
// BOOK MODEL
// ============================================================
// Book map 1:1 row mà backend trả về. Gateway không sở hữu data,
// chỉ cache + trình bày, nên model phẳng theo đúng JSON của backend.

type Status string

// Các giá trị status backend đang dùng. Backend là nơi quyết định
// status (set khi mượn/trả), gateway chỉ hiển thị và KHÔNG validate
// giá trị lạ - backend có thể thêm status mới mà không cần deploy
// lại gateway.
const (
	StatusAvailable   Status = "available"
	StatusLoaned      Status = "loaned"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
	StatusLost        Status = "lost"
)

type Book struct {
	ID          int64  `json:"id"`
	BookID      string `json:"book_id"` // display id, ví dụ "MAT000001"
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"publication_year,omitempty"`
	CategoryID  int64  `json:"category_id"`
	Status      Status `json:"status"`
	CoverURL    string `json:"cover_url,omitempty"`
	Description string `json:"description,omitempty"`
}

func (b *Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}

// MatchesSearch check free-text search của list view:
// title và author case-insensitive substring, display id substring thô.
func (b *Book) MatchesSearch(q string) bool {
	if q == "" {
		return true
	}
	lower := strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.Title), lower) ||
		strings.Contains(strings.ToLower(b.Author), lower) ||
		strings.Contains(b.BookID, q)
}
