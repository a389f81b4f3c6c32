package member

import (
	"strings"
	"time"
)

// Member map row backend trả về (sinh viên đăng ký thư viện).
type Member struct {
	ID           int64     `json:"id"`
	MemberID     string    `json:"member_id"` // mã số sinh viên, 8-15 chữ số
	Name         string    `json:"name"`
	StudyProgram string    `json:"study_program,omitempty"`
	Semester     int       `json:"semester,omitempty"`
	Active       bool      `json:"active"`
	JoinedAt     time.Time `json:"joined_at"`
}

// MatchesSearch check free-text search của list view:
// name case-insensitive substring, member id substring thô.
func (m *Member) MatchesSearch(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), strings.ToLower(q)) ||
		strings.Contains(m.MemberID, q)
}
