package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// JoinRequestCreate is a prospective member's application payload.
// Requests are always created PENDING.
type JoinRequestCreate struct {
	ProjectID int64               `json:"projectId"`
	UserID    int64               `json:"userId"`
	Message   string              `json:"message"`
	Status    model.RequestStatus `json:"status"`
}

// MemberService handles the join-request lifecycle and member removal,
// the /api/member endpoints.
type MemberService struct {
	client *api.Client
}

// NewMemberService creates a member service over the authenticated client
func NewMemberService(private *api.Client) *MemberService {
	return &MemberService{client: private}
}

// SendJoinRequest submits an application to join a project
func (s *MemberService) SendJoinRequest(ctx context.Context, req JoinRequestCreate) Result[model.JoinRequest] {
	if req.Status == "" {
		req.Status = model.RequestStatusPending
	}
	var created model.JoinRequest
	if err := s.client.Post(ctx, "/api/member/join-request", req, &created); err != nil {
		return fail[model.JoinRequest](err, "Join request failed")
	}
	return succeed(created)
}

// JoinRequests lists all join requests for a project (leader view)
func (s *MemberService) JoinRequests(ctx context.Context, projectID int64) Result[[]model.JoinRequest] {
	var requests []model.JoinRequest
	path := fmt.Sprintf("/api/member/requests/%d", projectID)
	if err := s.client.Get(ctx, path, nil, &requests); err != nil {
		return fail[[]model.JoinRequest](err, "Failed to fetch join requests")
	}
	return succeed(requests)
}

// ResolveJoinRequest approves or rejects a pending request
func (s *MemberService) ResolveJoinRequest(ctx context.Context, requestID int64, status model.RequestStatus) Result[Void] {
	query := url.Values{}
	query.Set("status", status.String())
	path := fmt.Sprintf("/api/member/requests/%d", requestID)
	if err := s.client.Put(ctx, path, query, nil, nil); err != nil {
		return fail[Void](err, "Failed to handle join request")
	}
	return succeed(Void{})
}

// RemoveMember removes a user from a project's team. Serves both
// leader-initiated removal and self-initiated leave, which differ only in
// whose id is passed.
func (s *MemberService) RemoveMember(ctx context.Context, projectID, userID int64) Result[Void] {
	path := fmt.Sprintf("/api/member/projects/%d/users/%d", projectID, userID)
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fail[Void](err, "Failed to remove member")
	}
	return succeed(Void{})
}
