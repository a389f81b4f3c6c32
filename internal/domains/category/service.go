package category

import "context"

// Service - categories là collection nhỏ (vài chục row), list không
// phân trang, dùng nguyên cho dropdown chọn category ở book form.
type Service interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, code string) (Category, error)
	Create(ctx context.Context, req CreateCategoryReq) error
	Update(ctx context.Context, code string, req UpdateCategoryReq) error

	// Delete chặn tại gateway khi category còn sách (book_count > 0),
	// không tốn round trip cho case chắc chắn fail.
	Delete(ctx context.Context, code string) error
}
