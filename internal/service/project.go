package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// DefaultPageSize is the browse page size when the caller passes none
const DefaultPageSize = 9

// Filter narrows the project listing; empty string fields are omitted
// from the query so the server treats them as "any".
type Filter struct {
	CourseID           string
	FrontendTechnology string
	BackendTechnology  string
	Page               int
	Size               int
}

// ProjectCreate is the creation payload. Status is always OPEN for new
// projects; the server assigns the creator the LEADER role.
type ProjectCreate struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	ModuleCode         string              `json:"moduleCode"`
	ModuleName         string              `json:"moduleName"`
	CreatorID          int64               `json:"creatorId"`
	FrontendTechnology string              `json:"frontendTechnology"`
	BackendTechnology  string              `json:"backendTechnology"`
	MaxMembers         int                 `json:"maxMembers"`
	Status             model.ProjectStatus `json:"status"`
}

// ProjectUpdate carries the leader-editable fields
type ProjectUpdate struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	ModuleCode         string              `json:"moduleCode"`
	ModuleName         string              `json:"moduleName"`
	FrontendTechnology string              `json:"frontendTechnology"`
	BackendTechnology  string              `json:"backendTechnology"`
	MaxMembers         int                 `json:"maxMembers"`
	Status             model.ProjectStatus `json:"status"`
}

// ProjectService handles project listing, detail, creation and updates
type ProjectService struct {
	client *api.Client
}

// NewProjectService creates a project service over the authenticated client
func NewProjectService(private *api.Client) *ProjectService {
	return &ProjectService{client: private}
}

// Filter returns one page of projects matching the filter
func (s *ProjectService) Filter(ctx context.Context, f Filter) Result[model.ProjectPage] {
	if f.Size <= 0 {
		f.Size = DefaultPageSize
	}

	query := url.Values{}
	if f.CourseID != "" {
		query.Set("courseId", f.CourseID)
	}
	if f.FrontendTechnology != "" {
		query.Set("frontendTechnology", f.FrontendTechnology)
	}
	if f.BackendTechnology != "" {
		query.Set("backendTechnology", f.BackendTechnology)
	}
	query.Set("page", strconv.Itoa(f.Page))
	query.Set("size", strconv.Itoa(f.Size))

	var page model.ProjectPage
	if err := s.client.Get(ctx, "/api/projects", query, &page); err != nil {
		return fail[model.ProjectPage](err, "Project filtering failed")
	}
	return succeed(page)
}

// Get returns a single project with its full member list
func (s *ProjectService) Get(ctx context.Context, id int64) Result[model.Project] {
	var project model.Project
	if err := s.client.Get(ctx, fmt.Sprintf("/api/projects/%d", id), nil, &project); err != nil {
		return fail[model.Project](err, "Failed to fetch project")
	}
	return succeed(project)
}

// Update applies leader edits to a project. The acting user's id is part
// of the path; the server rejects non-leaders.
func (s *ProjectService) Update(ctx context.Context, id, userID int64, update ProjectUpdate) Result[model.Project] {
	var project model.Project
	path := fmt.Sprintf("/api/projects/%d/user/%d", id, userID)
	if err := s.client.Put(ctx, path, nil, update, &project); err != nil {
		return fail[model.Project](err, "Project update failed")
	}
	return succeed(project)
}

// Create posts a new project and returns it with its assigned id
func (s *ProjectService) Create(ctx context.Context, create ProjectCreate) Result[model.Project] {
	var project model.Project
	if err := s.client.Post(ctx, "/api/projects/create", create, &project); err != nil {
		return fail[model.Project](err, "Project creation failed")
	}
	return succeed(project)
}
