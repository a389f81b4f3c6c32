package backend

import (
	"context"
	"net/url"

	"library-admin/internal/domains/member"
)

// ============================================================
// MEMBER ENDPOINTS
// ============================================================

func (c *Client) ListMembers(ctx context.Context) ([]member.Member, error) {
	var members []member.Member
	if err := c.get(ctx, "/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetMember(ctx context.Context, memberID string) (member.Member, error) {
	var m member.Member
	if err := c.get(ctx, "/members/"+memberID, &m); err != nil {
		return member.Member{}, err
	}
	return m, nil
}

func (c *Client) SearchMembers(ctx context.Context, q string) ([]member.Member, error) {
	var members []member.Member
	if err := c.get(ctx, "/members/search?q="+url.QueryEscape(q), &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) CreateMember(ctx context.Context, req member.CreateMemberReq) error {
	return c.post(ctx, "/members", req, nil)
}

func (c *Client) UpdateMember(ctx context.Context, memberID string, req member.UpdateMemberReq) error {
	return c.put(ctx, "/members/"+memberID, req, nil)
}

func (c *Client) DeleteMember(ctx context.Context, memberID string) error {
	return c.delete(ctx, "/members/"+memberID)
}
