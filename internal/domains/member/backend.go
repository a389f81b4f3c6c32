package member

import "context"

type Backend interface {
	ListMembers(ctx context.Context) ([]Member, error)
	GetMember(ctx context.Context, memberID string) (Member, error)

	// SearchMembers là server-side search endpoint của backend,
	// dùng cho autocomplete chọn member ở loan form.
	SearchMembers(ctx context.Context, q string) ([]Member, error)

	CreateMember(ctx context.Context, req CreateMemberReq) error
	UpdateMember(ctx context.Context, memberID string, req UpdateMemberReq) error
	DeleteMember(ctx context.Context, memberID string) error
}
