package model

import "time"

// ProjectMember is one entry of a project's team list
type ProjectMember struct {
	MemberID  int64      `json:"memberId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      MemberRole `json:"role"`
}

// DisplayName returns "First Last" for member rows
func (m *ProjectMember) DisplayName() string {
	if m.FirstName == "" && m.LastName == "" {
		return "Unknown member"
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Project represents a collaboration project with its member list.
// The member list is ordered as returned by the server; exactly one
// member holds the LEADER role (server-enforced).
type Project struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	ModuleCode         string          `json:"moduleCode"`
	ModuleName         string          `json:"moduleName"`
	FrontendTechnology string          `json:"frontendTechnology"`
	BackendTechnology  string          `json:"backendTechnology"`
	MaxMembers         int             `json:"maxMembers"`
	Status             ProjectStatus   `json:"status"`
	CreatedAt          string          `json:"createdAt"`
	ProjectMembers     []ProjectMember `json:"projectMembers"`
}

// MemberCount returns the current team size
func (p *Project) MemberCount() int {
	return len(p.ProjectMembers)
}

// SpotsRemaining returns how many members can still join, never negative
func (p *Project) SpotsRemaining() int {
	remaining := p.MaxMembers - len(p.ProjectMembers)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FillPercent returns team occupancy as 0..100 for capacity indicators.
// A project with zero capacity counts as fully occupied.
func (p *Project) FillPercent() int {
	if p.MaxMembers <= 0 {
		return 100
	}
	return len(p.ProjectMembers) * 100 / p.MaxMembers
}

// FormatCreatedAt renders the server timestamp as "Jan 2, 2006".
// Unparseable values are shown as-is rather than hidden.
func (p *Project) FormatCreatedAt() string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return p.CreatedAt
}

// ProjectPage is one page of a filtered project listing
type ProjectPage struct {
	Content       []Project `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}
