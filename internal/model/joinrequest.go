package model

import "time"

// JoinRequest is a prospective member's application to a project. It is
// created PENDING and transitioned exactly once by a project leader.
type JoinRequest struct {
	ID          int64         `json:"id"`
	ProjectID   int64         `json:"projectId"`
	UserID      int64         `json:"userId"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	RespondedAt string        `json:"respondedAt,omitempty"`
}

// Resolve returns a copy with the new status and a response timestamp.
// RespondedAt is only meaningful for resolved statuses.
func (r JoinRequest) Resolve(status RequestStatus, at time.Time) JoinRequest {
	resolved := r
	resolved.Status = status
	if status.IsResolved() {
		resolved.RespondedAt = at.Format(time.RFC3339)
	}
	return resolved
}
