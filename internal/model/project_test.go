package model

import "testing"

func memberList(n int) []ProjectMember {
	members := make([]ProjectMember, n)
	for i := range members {
		members[i] = ProjectMember{MemberID: int64(i + 1), Role: RoleMember}
	}
	if n > 0 {
		members[0].Role = RoleLeader
	}
	return members
}

func TestProject_SpotsRemaining(t *testing.T) {
	tests := []struct {
		members    int
		maxMembers int
		expected   int
	}{
		{0, 5, 5},
		{3, 5, 2},
		{5, 5, 0},
		{6, 5, 0}, // over capacity must not go negative
	}

	for _, test := range tests {
		p := Project{MaxMembers: test.maxMembers, ProjectMembers: memberList(test.members)}
		if got := p.SpotsRemaining(); got != test.expected {
			t.Errorf("SpotsRemaining() with %d/%d = %d, expected %d", test.members, test.maxMembers, got, test.expected)
		}
	}
}

func TestProject_FillPercent(t *testing.T) {
	tests := []struct {
		members    int
		maxMembers int
		expected   int
	}{
		{0, 8, 0},
		{2, 8, 25},
		{4, 5, 80},
		{5, 5, 100},
		{1, 0, 100},
	}

	for _, test := range tests {
		p := Project{MaxMembers: test.maxMembers, ProjectMembers: memberList(test.members)}
		if got := p.FillPercent(); got != test.expected {
			t.Errorf("FillPercent() with %d/%d = %d, expected %d", test.members, test.maxMembers, got, test.expected)
		}
	}
}

func TestProject_FormatCreatedAt(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"2025-03-14T09:30:00Z", "Mar 14, 2025"},
		{"2025-03-14T09:30:00", "Mar 14, 2025"},
		{"2025-03-14", "Mar 14, 2025"},
		{"not a date", "not a date"},
	}

	for _, test := range tests {
		p := Project{CreatedAt: test.raw}
		if got := p.FormatCreatedAt(); got != test.expected {
			t.Errorf("FormatCreatedAt(%q) = %q, expected %q", test.raw, got, test.expected)
		}
	}
}

func TestProjectMember_DisplayName(t *testing.T) {
	tests := []struct {
		member   ProjectMember
		expected string
	}{
		{ProjectMember{FirstName: "Alice", LastName: "Perera"}, "Alice Perera"},
		{ProjectMember{FirstName: "Alice"}, "Alice"},
		{ProjectMember{}, "Unknown member"},
	}

	for _, test := range tests {
		if got := test.member.DisplayName(); got != test.expected {
			t.Errorf("DisplayName() = %q, expected %q", got, test.expected)
		}
	}
}
