package book

import "context"

// Backend là data-access contract của domain. Library backend đóng
// vai trò repository: gateway không có database riêng.
type Backend interface {
	ListBooks(ctx context.Context) ([]Book, error)
	GetBook(ctx context.Context, bookID string) (Book, error)
	CreateBook(ctx context.Context, req CreateBookReq) error
	UpdateBook(ctx context.Context, bookID string, req UpdateBookReq) error
	DeleteBook(ctx context.Context, bookID string) error
}
