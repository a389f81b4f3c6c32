package category

import "context"

type Backend interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, code string) (Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryReq) error
	UpdateCategory(ctx context.Context, code string, req UpdateCategoryReq) error
	DeleteCategory(ctx context.Context, code string) error
}
