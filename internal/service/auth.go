package service

import (
	"context"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// LoginResponse is the login endpoint's payload: the bearer token plus
// the authenticated user's profile.
type LoginResponse struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
}

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
}

// AuthService handles login and registration over the public client,
// since no token exists before either call succeeds.
type AuthService struct {
	client *api.Client
}

// NewAuthService creates an auth service over the public client
func NewAuthService(public *api.Client) *AuthService {
	return &AuthService{client: public}
}

// Login exchanges credentials for a token and user profile
func (s *AuthService) Login(ctx context.Context, username, password string) Result[LoginResponse] {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp LoginResponse
	if err := s.client.Post(ctx, "/api/auth/login", body, &resp); err != nil {
		return fail[LoginResponse](err, "Login failed")
	}
	return succeed(resp)
}

// Register creates a new account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) Result[model.UserProfile] {
	var user model.UserProfile
	if err := s.client.Post(ctx, "/api/auth/register", req, &user); err != nil {
		return fail[model.UserProfile](err, "Registration failed")
	}
	return succeed(user)
}
