package service

import (
	"context"

	"library-admin/internal/domains/admin"
	"library-admin/internal/shared"
)

type adminServiceImpl struct {
	backend admin.Backend
}

func NewAdminService(backend admin.Backend) admin.Service {
	return &adminServiceImpl{
		backend: backend,
	}
}

// Login validate form rồi forward. Backend trả 401 cho credentials
// sai => map về ErrInvalidCredentials cho message nhất quán.
func (s *adminServiceImpl) Login(ctx context.Context, creds admin.Credentials) (admin.LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return admin.LoginResult{}, err
	}

	result, err := s.backend.Login(ctx, creds)
	if err != nil {
		if shared.IsUnauthorized(err) {
			return admin.LoginResult{}, admin.ErrInvalidCredentials
		}
		return admin.LoginResult{}, err
	}
	return result, nil
}

func (s *adminServiceImpl) Register(ctx context.Context, creds admin.Credentials) (admin.Admin, error) {
	if err := creds.Validate(); err != nil {
		return admin.Admin{}, err
	}
	return s.backend.Register(ctx, creds)
}

func (s *adminServiceImpl) Me(ctx context.Context) (admin.Admin, error) {
	return s.backend.Me(ctx)
}

func (s *adminServiceImpl) UpdateProfile(ctx context.Context, req admin.UpdateProfileReq) (admin.Admin, error) {
	if err := req.Validate(); err != nil {
		return admin.Admin{}, err
	}
	return s.backend.UpdateMe(ctx, req)
}

func (s *adminServiceImpl) ChangePassword(ctx context.Context, req admin.ChangePasswordReq) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.backend.ChangePassword(ctx, req)
}
