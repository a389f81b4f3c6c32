package service

import (
	"context"
	"time"

	"library-admin/internal/domains/book"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/pkg/cache"
	"library-admin/pkg/logger"
)

type bookServiceImpl struct {
	backend book.Backend
	cache   cache.Cache
	ttl     time.Duration
}

func NewBookService(backend book.Backend, c cache.Cache, ttl time.Duration) book.Service {
	return &bookServiceImpl{
		backend: backend,
		cache:   c,
		ttl:     ttl,
	}
}

// listAll fetch full collection, cache-aside.
// Cache lỗi không chặn read path: log warning rồi đi thẳng backend.
func (s *bookServiceImpl) listAll(ctx context.Context) ([]book.Book, error) {
	key := shared.EntityBooks.CacheKey()

	var books []book.Book
	found, err := s.cache.Get(ctx, key, &books)
	if err != nil {
		logger.Warn("Books cache read failed", err)
	}
	if found {
		return books, nil
	}

	books, err = s.backend.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, books, s.ttl); err != nil {
		logger.Warn("Books cache write failed", err)
	}
	return books, nil
}

// filtered = search + category filter, chưa sort/paginate.
// Export dùng chung path này với List.
func (s *bookServiceImpl) filtered(ctx context.Context, req book.ListBooksReq) ([]book.Book, error) {
	books, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	if req.Search != "" {
		matched := make([]book.Book, 0, len(books))
		for _, b := range books {
			if b.MatchesSearch(req.Search) {
				matched = append(matched, b)
			}
		}
		books = matched
	}

	filters := map[string]interface{}{}
	if req.CategoryID != 0 {
		filters["category_id"] = req.CategoryID
	}
	books = query.Filter(books, filters)

	if req.SortBy != "" {
		books = query.SortBy(books, req.SortBy, req.SortOrder)
	}
	return books, nil
}

func (s *bookServiceImpl) List(ctx context.Context, req book.ListBooksReq) ([]book.Book, query.Pagination, error) {
	books, err := s.filtered(ctx, req)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	result, err := query.Paginate(books, req.Page, req.Limit)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return result.Data, result.Pagination, nil
}

func (s *bookServiceImpl) Get(ctx context.Context, bookID string) (book.Book, error) {
	if bookID == "" {
		return book.Book{}, shared.NewValidationError("book id is required")
	}

	b, err := s.backend.GetBook(ctx, bookID)
	if err != nil {
		if shared.IsNotFound(err) {
			return book.Book{}, book.ErrBookNotFound
		}
		return book.Book{}, err
	}
	return b, nil
}

func (s *bookServiceImpl) Create(ctx context.Context, req book.CreateBookReq) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.CreateBook(ctx, req); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *bookServiceImpl) Update(ctx context.Context, bookID string, req book.UpdateBookReq) error {
	if bookID == "" {
		return shared.NewValidationError("book id is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.UpdateBook(ctx, bookID, req); err != nil {
		if shared.IsNotFound(err) {
			return book.ErrBookNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *bookServiceImpl) Delete(ctx context.Context, bookID string) error {
	if bookID == "" {
		return shared.NewValidationError("book id is required")
	}

	if err := s.backend.DeleteBook(ctx, bookID); err != nil {
		if shared.IsNotFound(err) {
			return book.ErrBookNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

// invalidate xóa các collection bị stale sau book mutation
// (books + loans, xem shared.InvalidationKeys).
// Invalidate fail chỉ log: cache còn TTL, tự hết hạn.
func (s *bookServiceImpl) invalidate(ctx context.Context) {
	keys := shared.InvalidationKeys(shared.EntityBooks)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Books cache invalidation failed", err)
	}
}
