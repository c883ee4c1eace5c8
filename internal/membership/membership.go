// Package membership derives a user's standing within a project (role,
// capacity, and the actions open to them) purely from the project's
// member list and the current user id. Nothing here is stored: every page
// recomputes on each fetch so derived state can never go stale.
package membership

import (
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// IsFull reports whether the team reached capacity. A member count equal
// to maxMembers counts as full.
func IsFull(p *model.Project) bool {
	return len(p.ProjectMembers) >= p.MaxMembers
}

// RoleOf scans the member list for the user. A user not on the list has
// no role; that is not an error.
func RoleOf(p *model.Project, userID int64) (model.MemberRole, bool) {
	for _, member := range p.ProjectMembers {
		if member.MemberID == userID {
			return member.Role, true
		}
	}
	return "", false
}

// IsMember reports whether the user appears in the member list
func IsMember(p *model.Project, userID int64) bool {
	_, ok := RoleOf(p, userID)
	return ok
}

// IsLeader reports whether the user holds the LEADER role
func IsLeader(p *model.Project, userID int64) bool {
	role, ok := RoleOf(p, userID)
	return ok && role.IsLeader()
}

// Actions enumerates what the current user may do on a project page
type Actions struct {
	// CanJoin: non-member, project OPEN, team not full
	CanJoin bool

	// JoinBlocked: non-member on an OPEN project that is full; the join
	// control is shown but disabled
	JoinBlocked bool

	// CanEdit: leader may change project fields
	CanEdit bool

	// CanManageRequests: leader may view/approve/reject join requests
	CanManageRequests bool

	// CanLeave: non-leader member may leave the team
	CanLeave bool

	// CanRemoveMembers: leader may remove non-leader members
	CanRemoveMembers bool
}

// ActionsFor gates every mutating project action by the user's standing
func ActionsFor(p *model.Project, userID int64) Actions {
	role, member := RoleOf(p, userID)

	if !member {
		if !p.Status.CanAcceptMembers() {
			return Actions{}
		}
		if IsFull(p) {
			return Actions{JoinBlocked: true}
		}
		return Actions{CanJoin: true}
	}

	if role.IsLeader() {
		return Actions{
			CanEdit:           true,
			CanManageRequests: true,
			CanRemoveMembers:  true,
		}
	}
	return Actions{CanLeave: true}
}

// CanRemove reports whether actor may remove target from the project:
// the acting leader may remove any non-leader member except themselves
// (leaders have no member-path exit).
func CanRemove(p *model.Project, actorID, targetID int64) bool {
	if !IsLeader(p, actorID) || actorID == targetID {
		return false
	}
	role, ok := RoleOf(p, targetID)
	return ok && !role.IsLeader()
}
