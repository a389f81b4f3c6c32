package backend

import (
	"context"

	"library-admin/internal/domains/admin"
)

// ============================================================
// ADMIN AUTH ENDPOINTS
// ============================================================

func (c *Client) Login(ctx context.Context, creds admin.Credentials) (admin.LoginResult, error) {
	var result admin.LoginResult
	if err := c.post(ctx, "/admin/login", creds, &result); err != nil {
		return admin.LoginResult{}, err
	}
	return result, nil
}

func (c *Client) Register(ctx context.Context, creds admin.Credentials) (admin.Admin, error) {
	var envelope struct {
		Admin admin.Admin `json:"admin"`
	}
	if err := c.post(ctx, "/admin/register", creds, &envelope); err != nil {
		return admin.Admin{}, err
	}
	return envelope.Admin, nil
}

func (c *Client) Me(ctx context.Context) (admin.Admin, error) {
	var envelope struct {
		Admin admin.Admin `json:"admin"`
	}
	if err := c.get(ctx, "/admin/me", &envelope); err != nil {
		return admin.Admin{}, err
	}
	return envelope.Admin, nil
}

func (c *Client) UpdateMe(ctx context.Context, req admin.UpdateProfileReq) (admin.Admin, error) {
	var envelope struct {
		Admin admin.Admin `json:"admin"`
	}
	if err := c.put(ctx, "/admin/me", req, &envelope); err != nil {
		return admin.Admin{}, err
	}
	return envelope.Admin, nil
}

// ChangePassword - backend route là "/admin/me/pass", không phải
// "/admin/me/password" như route phía gateway.
func (c *Client) ChangePassword(ctx context.Context, req admin.ChangePasswordReq) error {
	return c.put(ctx, "/admin/me/pass", req, nil)
}
