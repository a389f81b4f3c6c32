package member

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/query"
)

var memberIDPattern = regexp.MustCompile(`^[0-9]{8,15}$`)

type ListMembersReq struct {
	Page         int
	Limit        int
	Search       string
	StudyProgram string
	SortBy       string
	SortOrder    query.Order
}

type CreateMemberReq struct {
	MemberID     string `json:"member_id"`
	Name         string `json:"name"`
	StudyProgram string `json:"study_program,omitempty"`
	Semester     int    `json:"semester,omitempty"`
}

func (r CreateMemberReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MemberID, validation.Required, validation.Match(memberIDPattern)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.StudyProgram, validation.Length(0, 255)),
		validation.Field(&r.Semester, validation.Min(0), validation.Max(14)),
	)
}

// UpdateMemberReq - partial update. MemberID không đổi được: là mã
// định danh loans đang tham chiếu.
type UpdateMemberReq struct {
	Name         *string `json:"name,omitempty"`
	StudyProgram *string `json:"study_program,omitempty"`
	Semester     *int    `json:"semester,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

func (r UpdateMemberReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
		validation.Field(&r.StudyProgram, validation.Length(0, 255)),
	)
}
