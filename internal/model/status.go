package model

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	// ProjectStatusOpen means the project is recruiting members
	ProjectStatusOpen ProjectStatus = "OPEN"

	// ProjectStatusClosed means the project stopped recruiting
	ProjectStatusClosed ProjectStatus = "CLOSED"

	// ProjectStatusInProgress means the team is formed and working
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"

	// ProjectStatusCompleted means the project finished
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

// String returns the string representation of ProjectStatus
func (ps ProjectStatus) String() string {
	return string(ps)
}

// CanAcceptMembers returns true if the project status allows join requests
func (ps ProjectStatus) CanAcceptMembers() bool {
	return ps == ProjectStatusOpen
}

// IsValid returns true if the status is one of the known values
func (ps ProjectStatus) IsValid() bool {
	switch ps {
	case ProjectStatusOpen, ProjectStatusClosed, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// ProjectStatusOptions returns all statuses in display order
func ProjectStatusOptions() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusOpen,
		ProjectStatusClosed,
		ProjectStatusInProgress,
		ProjectStatusCompleted,
	}
}

// MemberRole represents a member's role within a project team
type MemberRole string

const (
	// RoleLeader is held by exactly one member per project
	RoleLeader MemberRole = "LEADER"

	// RoleMember is every other accepted member
	RoleMember MemberRole = "MEMBER"
)

// String returns the string representation of MemberRole
func (mr MemberRole) String() string {
	return string(mr)
}

// IsLeader returns true for the LEADER role
func (mr MemberRole) IsLeader() bool {
	return mr == RoleLeader
}

// RequestStatus represents the state of a join request
type RequestStatus string

const (
	// RequestStatusPending means the request awaits a leader's decision
	RequestStatusPending RequestStatus = "PENDING"

	// RequestStatusApproved means a leader accepted the request
	RequestStatusApproved RequestStatus = "APPROVED"

	// RequestStatusRejected means a leader declined the request
	RequestStatusRejected RequestStatus = "REJECTED"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsResolved returns true once a leader has acted on the request
func (rs RequestStatus) IsResolved() bool {
	return rs == RequestStatusApproved || rs == RequestStatusRejected
}
