package backend

import (
	"context"

	"library-admin/internal/domains/category"
)

// ============================================================
// CATEGORY ENDPOINTS
// ============================================================
// Khác books: category endpoints bọc payload trong envelope
// {"success": true, "data": ...}.

func (c *Client) ListCategories(ctx context.Context) ([]category.Category, error) {
	var envelope struct {
		Data []category.Category `json:"data"`
	}
	if err := c.get(ctx, "/categories", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) GetCategory(ctx context.Context, code string) (category.Category, error) {
	var envelope struct {
		Data category.Category `json:"data"`
	}
	if err := c.get(ctx, "/categories/"+code, &envelope); err != nil {
		return category.Category{}, err
	}
	return envelope.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, req category.CreateCategoryReq) error {
	return c.post(ctx, "/categories", req, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, code string, req category.UpdateCategoryReq) error {
	return c.put(ctx, "/categories/"+code, req, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, code string) error {
	return c.delete(ctx, "/categories/"+code)
}
