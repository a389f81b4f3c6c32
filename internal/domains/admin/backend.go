package admin

import "context"

type Backend interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Register(ctx context.Context, creds Credentials) (Admin, error)
	Me(ctx context.Context) (Admin, error)
	UpdateMe(ctx context.Context, req UpdateProfileReq) (Admin, error)
	ChangePassword(ctx context.Context, req ChangePasswordReq) error
}
