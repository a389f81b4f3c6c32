package category

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

type CreateCategoryReq struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Match(codePattern)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// UpdateCategoryReq - partial update. Code không đổi được: code là
// prefix của book display id, đổi code làm mồ côi toàn bộ id đã cấp.
type UpdateCategoryReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}
