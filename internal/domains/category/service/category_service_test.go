package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/internal/domains/category"
	infraCache "library-admin/internal/infrastructure/cache"
	"library-admin/internal/shared"
)

type fakeCategoryBackend struct {
	categories []category.Category
	listCalls  int
	deletes    []string
}

func (f *fakeCategoryBackend) ListCategories(ctx context.Context) ([]category.Category, error) {
	f.listCalls++
	return f.categories, nil
}

func (f *fakeCategoryBackend) GetCategory(ctx context.Context, code string) (category.Category, error) {
	for _, c := range f.categories {
		if c.Code == code {
			return c, nil
		}
	}
	return category.Category{}, &shared.BackendError{StatusCode: 404, Message: "Category not found"}
}

func (f *fakeCategoryBackend) CreateCategory(ctx context.Context, req category.CreateCategoryReq) error {
	return nil
}

func (f *fakeCategoryBackend) UpdateCategory(ctx context.Context, code string, req category.UpdateCategoryReq) error {
	return nil
}

func (f *fakeCategoryBackend) DeleteCategory(ctx context.Context, code string) error {
	f.deletes = append(f.deletes, code)
	return nil
}

func sampleCategories() []category.Category {
	return []category.Category{
		{ID: 3, Code: "MAT", Name: "Mathematics", BookCount: 12},
		{ID: 5, Code: "PHY", Name: "Physics", BookCount: 0},
	}
}

func TestCategoryDelete(t *testing.T) {
	t.Run("category with books is blocked before the backend call", func(t *testing.T) {
		backend := &fakeCategoryBackend{categories: sampleCategories()}
		svc := NewCategoryService(backend, infraCache.NewMemoryCache(), 5*time.Minute)

		err := svc.Delete(context.Background(), "MAT")

		assert.ErrorIs(t, err, category.ErrCategoryInUse)
		assert.Empty(t, backend.deletes)
	})

	t.Run("empty category deletes", func(t *testing.T) {
		backend := &fakeCategoryBackend{categories: sampleCategories()}
		svc := NewCategoryService(backend, infraCache.NewMemoryCache(), 5*time.Minute)

		require.NoError(t, svc.Delete(context.Background(), "PHY"))
		assert.Equal(t, []string{"PHY"}, backend.deletes)
	})

	t.Run("unknown category", func(t *testing.T) {
		backend := &fakeCategoryBackend{categories: sampleCategories()}
		svc := NewCategoryService(backend, infraCache.NewMemoryCache(), 5*time.Minute)

		err := svc.Delete(context.Background(), "XYZ")

		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryList(t *testing.T) {
	t.Run("cached after first fetch", func(t *testing.T) {
		backend := &fakeCategoryBackend{categories: sampleCategories()}
		svc := NewCategoryService(backend, infraCache.NewMemoryCache(), 5*time.Minute)

		_, err := svc.List(context.Background())
		require.NoError(t, err)
		_, err = svc.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, backend.listCalls)
	})

	t.Run("mutation invalidates only categories", func(t *testing.T) {
		backend := &fakeCategoryBackend{categories: sampleCategories()}
		cache := infraCache.NewMemoryCache()
		svc := NewCategoryService(backend, cache, 5*time.Minute)
		ctx := context.Background()

		require.NoError(t, cache.Set(ctx, shared.EntityBooks.CacheKey(), []string{"fresh"}, time.Minute))

		require.NoError(t, svc.Create(ctx, category.CreateCategoryReq{Code: "CHE", Name: "Chemistry"}))

		var dest []string
		found, _ := cache.Get(ctx, shared.EntityCategories.CacheKey(), &dest)
		assert.False(t, found)
		found, _ = cache.Get(ctx, shared.EntityBooks.CacheKey(), &dest)
		assert.True(t, found)
	})
}

func TestCategoryValidation(t *testing.T) {
	backend := &fakeCategoryBackend{}
	svc := NewCategoryService(backend, infraCache.NewMemoryCache(), 5*time.Minute)

	err := svc.Create(context.Background(), category.CreateCategoryReq{Code: "mat", Name: "Mathematics"})
	assert.Error(t, err, "lowercase code must fail the pattern")

	err = svc.Create(context.Background(), category.CreateCategoryReq{Code: "MAT"})
	assert.Error(t, err, "missing name")
}
