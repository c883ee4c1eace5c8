package model

import (
	"testing"
	"time"
)

func TestJoinRequest_Resolve(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	req := JoinRequest{ID: 1, Status: RequestStatusPending}

	approved := req.Resolve(RequestStatusApproved, at)
	if approved.Status != RequestStatusApproved {
		t.Errorf("Status = %s, expected APPROVED", approved.Status)
	}
	if approved.RespondedAt != "2025-03-14T09:30:00Z" {
		t.Errorf("RespondedAt = %q, expected RFC3339 timestamp", approved.RespondedAt)
	}
	if req.Status != RequestStatusPending {
		t.Error("Resolve must not mutate the receiver")
	}
}
