package ui

import (
	"testing"
	"time"

	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

func TestValidateJoinMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		sendable bool
	}{
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"tabs and newlines", "\t\n  \r\n", false},
		{"real message", "I would like to join your project.", true},
		{"message with surrounding whitespace", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := validateJoinMessage(tt.message)
			if sendable := text == ""; sendable != tt.sendable {
				t.Errorf("validateJoinMessage(%q) = %q, sendable = %v, want %v",
					tt.message, text, sendable, tt.sendable)
			}
		})
	}
}

func pendingRequests() []model.JoinRequest {
	return []model.JoinRequest{
		{ID: 1, ProjectID: 5, UserID: 7, Status: model.RequestStatusPending},
		{ID: 2, ProjectID: 5, UserID: 8, Status: model.RequestStatusPending},
	}
}

func TestApplyResolutionOnSuccess(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	requests := applyResolution(pendingRequests(), 1, model.RequestStatusApproved, true, at)

	if got := requests[0].Status; got != model.RequestStatusApproved {
		t.Errorf("request 1 status = %v, want APPROVED", got)
	}
	if requests[0].RespondedAt == "" {
		t.Error("resolved request must carry a responded-at timestamp")
	}
	if got := requests[1].Status; got != model.RequestStatusPending {
		t.Errorf("request 2 status = %v, want PENDING (untouched)", got)
	}
}

func TestApplyResolutionKeepsPendingOnFailure(t *testing.T) {
	requests := applyResolution(pendingRequests(), 1, model.RequestStatusApproved, false, time.Now())

	for _, request := range requests {
		if request.Status != model.RequestStatusPending {
			t.Errorf("request %d status = %v, want PENDING after a failed call", request.ID, request.Status)
		}
		if request.RespondedAt != "" {
			t.Errorf("request %d responded-at = %q, want empty after a failed call", request.ID, request.RespondedAt)
		}
	}
}

func TestApplyResolutionIgnoresUnknownID(t *testing.T) {
	requests := applyResolution(pendingRequests(), 99, model.RequestStatusRejected, true, time.Now())

	for _, request := range requests {
		if request.Status != model.RequestStatusPending {
			t.Errorf("request %d status = %v, want PENDING", request.ID, request.Status)
		}
	}
}
