package service

import (
	"context"

	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// Authenticator defines the interface for the auth service.
type Authenticator interface {
	Login(ctx context.Context, username, password string) Result[LoginResponse]
	Register(ctx context.Context, req RegisterRequest) Result[model.UserProfile]
}

// ProfileUpdater defines the interface for the user service.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, profile model.UserProfile) Result[model.UserProfile]
}

// Projects defines the interface for the project service.
type Projects interface {
	Filter(ctx context.Context, f Filter) Result[model.ProjectPage]
	Get(ctx context.Context, id int64) Result[model.Project]
	Update(ctx context.Context, id, userID int64, update ProjectUpdate) Result[model.Project]
	Create(ctx context.Context, create ProjectCreate) Result[model.Project]
}

// Members defines the interface for the member service.
type Members interface {
	SendJoinRequest(ctx context.Context, req JoinRequestCreate) Result[model.JoinRequest]
	JoinRequests(ctx context.Context, projectID int64) Result[[]model.JoinRequest]
	ResolveJoinRequest(ctx context.Context, requestID int64, status model.RequestStatus) Result[Void]
	RemoveMember(ctx context.Context, projectID, userID int64) Result[Void]
}
