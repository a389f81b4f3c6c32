package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/internal/domains/book"
	infraCache "library-admin/internal/infrastructure/cache"
	"library-admin/internal/shared"
)

type fakeBookBackend struct {
	books     []book.Book
	listCalls int
	mutations []string
}

func (f *fakeBookBackend) ListBooks(ctx context.Context) ([]book.Book, error) {
	f.listCalls++
	return f.books, nil
}

func (f *fakeBookBackend) GetBook(ctx context.Context, bookID string) (book.Book, error) {
	for _, b := range f.books {
		if b.BookID == bookID {
			return b, nil
		}
	}
	return book.Book{}, &shared.BackendError{StatusCode: 404, Message: "Book not found"}
}

func (f *fakeBookBackend) CreateBook(ctx context.Context, req book.CreateBookReq) error {
	f.mutations = append(f.mutations, "create")
	return nil
}

func (f *fakeBookBackend) UpdateBook(ctx context.Context, bookID string, req book.UpdateBookReq) error {
	f.mutations = append(f.mutations, "update:"+bookID)
	return nil
}

func (f *fakeBookBackend) DeleteBook(ctx context.Context, bookID string) error {
	f.mutations = append(f.mutations, "delete:"+bookID)
	return nil
}

func sampleBooks() []book.Book {
	return []book.Book{
		{ID: 1, BookID: "MAT000001", Title: "Calculus", Author: "Stewart", CategoryID: 3, Status: book.StatusAvailable},
		{ID: 2, BookID: "MAT000002", Title: "Linear Algebra", Author: "Strang", CategoryID: 3, Status: book.StatusLoaned},
		{ID: 3, BookID: "PHY000001", Title: "Classical Mechanics", Author: "Taylor", CategoryID: 5, Status: book.StatusAvailable},
	}
}

func newBookService(backend *fakeBookBackend) book.Service {
	return NewBookService(backend, infraCache.NewMemoryCache(), 5*time.Minute)
}

func TestBookList(t *testing.T) {
	t.Run("search matches title author and display id", func(t *testing.T) {
		svc := newBookService(&fakeBookBackend{books: sampleBooks()})

		rows, _, err := svc.List(context.Background(), book.ListBooksReq{
			Page: 1, Limit: 10, Search: "algebra",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "MAT000002", rows[0].BookID)

		rows, _, err = svc.List(context.Background(), book.ListBooksReq{
			Page: 1, Limit: 10, Search: "PHY",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "PHY000001", rows[0].BookID)
	})

	t.Run("category filter", func(t *testing.T) {
		svc := newBookService(&fakeBookBackend{books: sampleBooks()})

		rows, meta, err := svc.List(context.Background(), book.ListBooksReq{
			Page: 1, Limit: 10, CategoryID: 3,
		})

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, 2, meta.Total)
	})

	t.Run("pagination counts the filtered set", func(t *testing.T) {
		svc := newBookService(&fakeBookBackend{books: sampleBooks()})

		rows, meta, err := svc.List(context.Background(), book.ListBooksReq{
			Page: 2, Limit: 2,
		})

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, 3, meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("second call hits the cache", func(t *testing.T) {
		backend := &fakeBookBackend{books: sampleBooks()}
		svc := newBookService(backend)

		_, _, err := svc.List(context.Background(), book.ListBooksReq{Page: 1, Limit: 10})
		require.NoError(t, err)
		_, _, err = svc.List(context.Background(), book.ListBooksReq{Page: 1, Limit: 10, Search: "calculus"})
		require.NoError(t, err)

		assert.Equal(t, 1, backend.listCalls)
	})

	t.Run("invalid pagination params rejected", func(t *testing.T) {
		svc := newBookService(&fakeBookBackend{books: sampleBooks()})

		_, _, err := svc.List(context.Background(), book.ListBooksReq{Page: 1, Limit: 0})

		assert.True(t, shared.IsValidationError(err))
	})
}

func TestBookMutationInvalidatesLoans(t *testing.T) {
	// Book update phải invalidate cả loans: loan rows nhúng title.
	backend := &fakeBookBackend{books: sampleBooks()}
	cache := infraCache.NewMemoryCache()
	svc := NewBookService(backend, cache, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, shared.EntityBooks.CacheKey(), []string{"stale"}, time.Minute))
	require.NoError(t, cache.Set(ctx, shared.EntityLoans.CacheKey(), []string{"stale"}, time.Minute))
	require.NoError(t, cache.Set(ctx, shared.EntityMembers.CacheKey(), []string{"fresh"}, time.Minute))

	title := "Calculus 2nd ed"
	require.NoError(t, svc.Update(ctx, "MAT000001", book.UpdateBookReq{Title: &title}))

	var dest []string
	found, _ := cache.Get(ctx, shared.EntityBooks.CacheKey(), &dest)
	assert.False(t, found)
	found, _ = cache.Get(ctx, shared.EntityLoans.CacheKey(), &dest)
	assert.False(t, found)

	// members không liên quan, giữ nguyên
	found, _ = cache.Get(ctx, shared.EntityMembers.CacheKey(), &dest)
	assert.True(t, found)
}

func TestBookCreateValidation(t *testing.T) {
	backend := &fakeBookBackend{}
	svc := newBookService(backend)

	err := svc.Create(context.Background(), book.CreateBookReq{Author: "No Title"})

	require.Error(t, err)
	assert.Empty(t, backend.mutations)
}

func TestBookGet(t *testing.T) {
	svc := newBookService(&fakeBookBackend{books: sampleBooks()})

	b, err := svc.Get(context.Background(), "MAT000001")
	require.NoError(t, err)
	assert.Equal(t, "Calculus", b.Title)

	_, err = svc.Get(context.Background(), "NOPE000001")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookExport(t *testing.T) {
	svc := newBookService(&fakeBookBackend{books: sampleBooks()})

	f, err := svc.Export(context.Background(), book.ListBooksReq{CategoryID: 3})
	require.NoError(t, err)

	// Header + 2 data rows cho category 3
	title, err := f.GetCellValue("Book list", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Title", title)

	firstRow, err := f.GetCellValue("Book list", "A2")
	require.NoError(t, err)
	assert.Equal(t, "MAT000001", firstRow)

	empty, err := f.GetCellValue("Book list", "A4")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
