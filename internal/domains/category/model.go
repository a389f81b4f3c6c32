package category

// Category map row backend trả về.
// BookCount là giá trị denormalized backend tính sẵn, gateway dùng
// để chặn delete category còn sách mà không cần thêm round trip.
type Category struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"` // ví dụ "MAT", prefix của book display id
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BookCount   int    `json:"book_count"`
}

func (c *Category) HasBooks() bool {
	return c.BookCount > 0
}
