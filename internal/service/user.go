package service

import (
	"context"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// UserService handles profile mutations for the authenticated user
type UserService struct {
	client *api.Client
}

// NewUserService creates a user service over the authenticated client
func NewUserService(private *api.Client) *UserService {
	return &UserService{client: private}
}

// UpdateProfile replaces the current user's profile fields and returns
// the server's view of the updated profile.
func (s *UserService) UpdateProfile(ctx context.Context, profile model.UserProfile) Result[model.UserProfile] {
	var updated model.UserProfile
	if err := s.client.Put(ctx, "/api/users/profile", nil, profile, &updated); err != nil {
		return fail[model.UserProfile](err, "Profile update failed")
	}
	return succeed(updated)
}
