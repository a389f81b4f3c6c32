package admin

import "context"

// Service forward credentials/profile calls tới backend.
// Session lifecycle (tạo/hủy session, cookie) là việc của handler.
type Service interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Register(ctx context.Context, creds Credentials) (Admin, error)
	Me(ctx context.Context) (Admin, error)
	UpdateProfile(ctx context.Context, req UpdateProfileReq) (Admin, error)
	ChangePassword(ctx context.Context, req ChangePasswordReq) error
}
