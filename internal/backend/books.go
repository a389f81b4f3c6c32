package backend

import (
	"context"

	"library-admin/internal/domains/book"
)

// ============================================================
// BOOK ENDPOINTS
// ============================================================
// Backend trả bare JSON array cho list, bare object cho detail.

func (c *Client) ListBooks(ctx context.Context) ([]book.Book, error) {
	var books []book.Book
	if err := c.get(ctx, "/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, bookID string) (book.Book, error) {
	var b book.Book
	if err := c.get(ctx, "/books/"+bookID, &b); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

func (c *Client) CreateBook(ctx context.Context, req book.CreateBookReq) error {
	return c.post(ctx, "/books", req, nil)
}

func (c *Client) UpdateBook(ctx context.Context, bookID string, req book.UpdateBookReq) error {
	return c.put(ctx, "/books/"+bookID, req, nil)
}

func (c *Client) DeleteBook(ctx context.Context, bookID string) error {
	return c.delete(ctx, "/books/"+bookID)
}
