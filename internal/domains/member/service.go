package member

import (
	"context"

	"library-admin/internal/query"
)

type Service interface {
	List(ctx context.Context, req ListMembersReq) ([]Member, query.Pagination, error)
	Get(ctx context.Context, memberID string) (Member, error)

	// Search passthrough tới backend search endpoint (autocomplete),
	// không đụng collection cache.
	Search(ctx context.Context, q string) ([]Member, error)

	Create(ctx context.Context, req CreateMemberReq) error
	Update(ctx context.Context, memberID string, req UpdateMemberReq) error
	Delete(ctx context.Context, memberID string) error
}
