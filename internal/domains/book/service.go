package book

import (
	"context"

	"github.com/xuri/excelize/v2"

	"library-admin/internal/query"
)

// Service là business contract cho handler layer.
type Service interface {
	// List chạy query pipeline (search + filter + sort + paginate)
	// trên collection cached.
	List(ctx context.Context, req ListBooksReq) ([]Book, query.Pagination, error)

	// Get fetch một book theo display id, luôn đi thẳng backend.
	Get(ctx context.Context, bookID string) (Book, error)

	Create(ctx context.Context, req CreateBookReq) error
	Update(ctx context.Context, bookID string, req UpdateBookReq) error
	Delete(ctx context.Context, bookID string) error

	// Export build file Excel cho toàn bộ tập đã filter (không phân trang).
	Export(ctx context.Context, req ListBooksReq) (*excelize.File, error)
}
