package service

import (
	"context"
	"time"

	"library-admin/internal/domains/category"
	"library-admin/internal/shared"
	"library-admin/pkg/cache"
	"library-admin/pkg/logger"
)

type categoryServiceImpl struct {
	backend category.Backend
	cache   cache.Cache
	ttl     time.Duration
}

func NewCategoryService(backend category.Backend, c cache.Cache, ttl time.Duration) category.Service {
	return &categoryServiceImpl{
		backend: backend,
		cache:   c,
		ttl:     ttl,
	}
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]category.Category, error) {
	key := shared.EntityCategories.CacheKey()

	var categories []category.Category
	found, err := s.cache.Get(ctx, key, &categories)
	if err != nil {
		logger.Warn("Categories cache read failed", err)
	}
	if found {
		return categories, nil
	}

	categories, err = s.backend.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, categories, s.ttl); err != nil {
		logger.Warn("Categories cache write failed", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) Get(ctx context.Context, code string) (category.Category, error) {
	if code == "" {
		return category.Category{}, shared.NewValidationError("category code is required")
	}

	cat, err := s.backend.GetCategory(ctx, code)
	if err != nil {
		if shared.IsNotFound(err) {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, err
	}
	return cat, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, req category.CreateCategoryReq) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.CreateCategory(ctx, req); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, code string, req category.UpdateCategoryReq) error {
	if code == "" {
		return shared.NewValidationError("category code is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.UpdateCategory(ctx, code, req); err != nil {
		if shared.IsNotFound(err) {
			return category.ErrCategoryNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Delete check book_count trước khi gọi backend: category còn sách
// chắc chắn bị từ chối, chặn sớm tại gateway.
// book_count có thể stale (TTL), backend vẫn là người quyết định cuối.
func (s *categoryServiceImpl) Delete(ctx context.Context, code string) error {
	cat, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	if cat.HasBooks() {
		return category.ErrCategoryInUse
	}

	if err := s.backend.DeleteCategory(ctx, code); err != nil {
		if shared.IsNotFound(err) {
			return category.ErrCategoryNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *categoryServiceImpl) invalidate(ctx context.Context) {
	keys := shared.InvalidationKeys(shared.EntityCategories)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Categories cache invalidation failed", err)
	}
}
