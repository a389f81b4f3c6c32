package service

import (
	"context"
	"strings"
	"time"

	"library-admin/internal/domains/member"
	"library-admin/internal/query"
	"library-admin/internal/shared"
	"library-admin/pkg/cache"
	"library-admin/pkg/logger"
)

type memberServiceImpl struct {
	backend member.Backend
	cache   cache.Cache
	ttl     time.Duration
}

func NewMemberService(backend member.Backend, c cache.Cache, ttl time.Duration) member.Service {
	return &memberServiceImpl{
		backend: backend,
		cache:   c,
		ttl:     ttl,
	}
}

func (s *memberServiceImpl) listAll(ctx context.Context) ([]member.Member, error) {
	key := shared.EntityMembers.CacheKey()

	var members []member.Member
	found, err := s.cache.Get(ctx, key, &members)
	if err != nil {
		logger.Warn("Members cache read failed", err)
	}
	if found {
		return members, nil
	}

	members, err = s.backend.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, members, s.ttl); err != nil {
		logger.Warn("Members cache write failed", err)
	}
	return members, nil
}

func (s *memberServiceImpl) List(ctx context.Context, req member.ListMembersReq) ([]member.Member, query.Pagination, error) {
	members, err := s.listAll(ctx)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	if req.Search != "" {
		matched := make([]member.Member, 0, len(members))
		for _, m := range members {
			if m.MatchesSearch(req.Search) {
				matched = append(matched, m)
			}
		}
		members = matched
	}

	members = query.Filter(members, map[string]interface{}{
		"study_program": req.StudyProgram,
	})

	if req.SortBy != "" {
		members = query.SortBy(members, req.SortBy, req.SortOrder)
	}

	result, err := query.Paginate(members, req.Page, req.Limit)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	return result.Data, result.Pagination, nil
}

func (s *memberServiceImpl) Get(ctx context.Context, memberID string) (member.Member, error) {
	if memberID == "" {
		return member.Member{}, shared.NewValidationError("member id is required")
	}

	m, err := s.backend.GetMember(ctx, memberID)
	if err != nil {
		if shared.IsNotFound(err) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, err
	}
	return m, nil
}

// Search passthrough, query rỗng trả list rỗng luôn không gọi backend.
func (s *memberServiceImpl) Search(ctx context.Context, q string) ([]member.Member, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []member.Member{}, nil
	}
	return s.backend.SearchMembers(ctx, q)
}

func (s *memberServiceImpl) Create(ctx context.Context, req member.CreateMemberReq) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.CreateMember(ctx, req); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *memberServiceImpl) Update(ctx context.Context, memberID string, req member.UpdateMemberReq) error {
	if memberID == "" {
		return shared.NewValidationError("member id is required")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.backend.UpdateMember(ctx, memberID, req); err != nil {
		if shared.IsNotFound(err) {
			return member.ErrMemberNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *memberServiceImpl) Delete(ctx context.Context, memberID string) error {
	if memberID == "" {
		return shared.NewValidationError("member id is required")
	}

	if err := s.backend.DeleteMember(ctx, memberID); err != nil {
		if shared.IsNotFound(err) {
			return member.ErrMemberNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *memberServiceImpl) invalidate(ctx context.Context) {
	keys := shared.InvalidationKeys(shared.EntityMembers)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Members cache invalidation failed", err)
	}
}
