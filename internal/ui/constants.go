package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Message banners
const (
	MessageAutoHide = 7 * time.Second
	IconClose       = "×"
)

// Layout sizing
const (
	CardMinWidth  float32 = 300
	CardMinHeight float32 = 180

	FormMaxWidth   float32 = 420
	DialogWidth    float32 = 520
	DialogHeight   float32 = 480
	WindowWidth    float32 = 1000
	WindowHeight   float32 = 700
	MemberRowMinH  float32 = 48
	RequestRowMinH float32 = 72
)

// Validation limits
const (
	MinPasswordLength = 8
	MinTeamSize       = 2
	MaxTeamSize       = 12
)

// Text fragments
const (
	DashPlaceholder   = "—"
	MemberCountFormat = "%d/%d"
)

// Capacity color thresholds (percent occupied)
const (
	CapacityComfortable = 50
	CapacityTight       = 80
)
