package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-admin/internal/query"
)

// ============================================================
// REQUEST DTOs
// ============================================================

// ListBooksReq là query param của list view: search + category filter
// + sort + pagination, chạy qua query pipeline phía gateway.
type ListBooksReq struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int64
	SortBy     string
	SortOrder  query.Order
}

type CreateBookReq struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Year        int    `json:"publication_year,omitempty"`
	CategoryID  int64  `json:"category_id"`
	CoverURL    string `json:"cover_url,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r CreateBookReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Length(0, 255)),
		validation.Field(&r.Publisher, validation.Length(0, 255)),
		validation.Field(&r.Year, validation.Min(0), validation.Max(3000)),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// UpdateBookReq - partial update, nil = không đổi field đó.
// Status KHÔNG có ở đây: status là backend-derived, admin không set tay.
type UpdateBookReq struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	Year        *int    `json:"publication_year,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateBookReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Length(0, 255)),
		validation.Field(&r.Publisher, validation.Length(0, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}
