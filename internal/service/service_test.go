package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

type tokens string

func (t tokens) Token() string { return string(t) }

func privateClient(serverURL string) *api.Client {
	return api.NewPrivate(serverURL, tokens("tok"), nil)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "hunter2hunter2", body["password"])

		json.NewEncoder(w).Encode(LoginResponse{
			Token: "tok-123",
			User:  model.UserProfile{ID: 7, Username: "alice"},
		})
	}))
	defer server.Close()

	auth := NewAuthService(api.NewPublic(server.URL))
	result := auth.Login(context.Background(), "alice", "hunter2hunter2")

	require.True(t, result.Success)
	assert.Equal(t, "tok-123", result.Data.Token)
	assert.Equal(t, "alice", result.Data.User.Username)
}

func TestAuthService_LoginWrongCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))
	defer server.Close()

	auth := NewAuthService(api.NewPublic(server.URL))
	result := auth.Login(context.Background(), "alice", "wrong")

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusUnauthorized, result.Status)
	assert.Equal(t, "Invalid username or password", result.Message)
}

func TestAuthService_LoginNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	auth := NewAuthService(api.NewPublic(server.URL))
	result := auth.Login(context.Background(), "alice", "hunter2hunter2")

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, api.NetworkErrorMessage, result.Message)
}

func TestAuthService_RegisterConflictUsesFallbackWhenNoMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	auth := NewAuthService(api.NewPublic(server.URL))
	result := auth.Register(context.Background(), RegisterRequest{Username: "alice"})

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusConflict, result.Status)
	assert.Equal(t, "Registration failed", result.Message)
}

func TestUserService_UpdateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/profile", r.URL.Path)

		var profile model.UserProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
		profile.Bio = profile.Bio + " (saved)"
		json.NewEncoder(w).Encode(profile)
	}))
	defer server.Close()

	users := NewUserService(privateClient(server.URL))
	result := users.UpdateProfile(context.Background(), model.UserProfile{Username: "alice", Bio: "hi"})

	require.True(t, result.Success)
	assert.Equal(t, "hi (saved)", result.Data.Bio)
}

func TestProjectService_FilterEncodesParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "SE3040", q.Get("courseId"))
		assert.Equal(t, "React", q.Get("frontendTechnology"))
		assert.False(t, q.Has("backendTechnology"), "empty filters must be omitted")
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "9", q.Get("size"), "size defaults to 9")

		json.NewEncoder(w).Encode(model.ProjectPage{
			Content:    []model.Project{{ID: 1, Title: "Campus App"}},
			Page:       2,
			TotalPages: 3,
		})
	}))
	defer server.Close()

	projects := NewProjectService(privateClient(server.URL))
	result := projects.Filter(context.Background(), Filter{
		CourseID:           "SE3040",
		FrontendTechnology: "React",
		Page:               2,
	})

	require.True(t, result.Success)
	require.Len(t, result.Data.Content, 1)
	assert.Equal(t, "Campus App", result.Data.Content[0].Title)
}

func TestProjectService_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Project not found"}`))
	}))
	defer server.Close()

	projects := NewProjectService(privateClient(server.URL))
	result := projects.Get(context.Background(), 99)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Equal(t, "Project not found", result.Message)
}

func TestProjectService_UpdatePathCarriesActingUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/projects/5/user/7", r.URL.Path)

		var update ProjectUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		json.NewEncoder(w).Encode(model.Project{ID: 5, Title: update.Title, Status: update.Status})
	}))
	defer server.Close()

	projects := NewProjectService(privateClient(server.URL))
	result := projects.Update(context.Background(), 5, 7, ProjectUpdate{
		Title:  "Renamed",
		Status: model.ProjectStatusInProgress,
	})

	require.True(t, result.Success)
	assert.Equal(t, "Renamed", result.Data.Title)
	assert.Equal(t, model.ProjectStatusInProgress, result.Data.Status)
}

func TestProjectService_CreateReturnsAssignedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/create", r.URL.Path)

		var create ProjectCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&create))
		assert.Equal(t, int64(7), create.CreatorID)
		assert.Equal(t, 8, create.MaxMembers)

		json.NewEncoder(w).Encode(model.Project{ID: 42, Title: create.Title, Status: create.Status})
	}))
	defer server.Close()

	projects := NewProjectService(privateClient(server.URL))
	result := projects.Create(context.Background(), ProjectCreate{
		Title:      "Campus App",
		CreatorID:  7,
		MaxMembers: 8,
		Status:     model.ProjectStatusOpen,
	})

	require.True(t, result.Success)
	assert.Equal(t, int64(42), result.Data.ID)
}

func TestMemberService_SendJoinRequestDefaultsToPending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/member/join-request", r.URL.Path)

		var req JoinRequestCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.RequestStatusPending, req.Status)

		json.NewEncoder(w).Encode(model.JoinRequest{
			ID:        11,
			ProjectID: req.ProjectID,
			UserID:    req.UserID,
			Message:   req.Message,
			Status:    model.RequestStatusPending,
		})
	}))
	defer server.Close()

	members := NewMemberService(privateClient(server.URL))
	result := members.SendJoinRequest(context.Background(), JoinRequestCreate{
		ProjectID: 5,
		UserID:    7,
		Message:   "I would like to join your project.",
	})

	require.True(t, result.Success)
	assert.Equal(t, int64(11), result.Data.ID)
	assert.Equal(t, model.RequestStatusPending, result.Data.Status)
}

func TestMemberService_JoinRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/member/requests/5", r.URL.Path)
		json.NewEncoder(w).Encode([]model.JoinRequest{
			{ID: 1, Status: model.RequestStatusPending},
			{ID: 2, Status: model.RequestStatusApproved},
		})
	}))
	defer server.Close()

	members := NewMemberService(privateClient(server.URL))
	result := members.JoinRequests(context.Background(), 5)

	require.True(t, result.Success)
	assert.Len(t, result.Data, 2)
}

func TestMemberService_ResolveJoinRequestSendsStatusParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/member/requests/11", r.URL.Path)
		assert.Equal(t, "APPROVED", r.URL.Query().Get("status"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	members := NewMemberService(privateClient(server.URL))
	result := members.ResolveJoinRequest(context.Background(), 11, model.RequestStatusApproved)

	assert.True(t, result.Success)
}

func TestMemberService_RemoveMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/member/projects/5/users/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	members := NewMemberService(privateClient(server.URL))
	result := members.RemoveMember(context.Background(), 5, 9)

	assert.True(t, result.Success)
}

func TestMemberService_ResolveFailureKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Only the project leader can do that"}`))
	}))
	defer server.Close()

	members := NewMemberService(privateClient(server.URL))
	result := members.ResolveJoinRequest(context.Background(), 11, model.RequestStatusRejected)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.Status)
	assert.Equal(t, "Only the project leader can do that", result.Message)
}
