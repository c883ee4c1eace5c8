package model

import "strings"

// UserProfile holds identity and profile attributes of a platform user.
// Field names follow the remote API's JSON contract.
type UserProfile struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Specialization string   `json:"specialization"`
	Year           int      `json:"year"`
	Semester       int      `json:"semester"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	Github         string   `json:"github"`
	Linkedin       string   `json:"linkedin"`
	ProfilePicture string   `json:"profilePicture"`
}

// FullName returns "First Last", falling back to the username when both
// name fields are empty.
func (u *UserProfile) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Initials returns up to two uppercase initials for avatar placeholders.
func (u *UserProfile) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		part = strings.TrimSpace(part)
		if part != "" {
			b.WriteString(strings.ToUpper(part[:1]))
		}
	}
	if b.Len() == 0 && u.Username != "" {
		return strings.ToUpper(u.Username[:1])
	}
	return b.String()
}

// HasSkill reports whether the skill is already present (exact match).
func (u *UserProfile) HasSkill(skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Merge returns a copy of u with every non-zero field of partial applied
// on top. Skills replace the existing list only when partial carries one.
func (u UserProfile) Merge(partial UserProfile) UserProfile {
	merged := u
	if partial.ID != 0 {
		merged.ID = partial.ID
	}
	if partial.Username != "" {
		merged.Username = partial.Username
	}
	if partial.FirstName != "" {
		merged.FirstName = partial.FirstName
	}
	if partial.LastName != "" {
		merged.LastName = partial.LastName
	}
	if partial.Email != "" {
		merged.Email = partial.Email
	}
	if partial.Specialization != "" {
		merged.Specialization = partial.Specialization
	}
	if partial.Year != 0 {
		merged.Year = partial.Year
	}
	if partial.Semester != 0 {
		merged.Semester = partial.Semester
	}
	if partial.Bio != "" {
		merged.Bio = partial.Bio
	}
	if partial.Skills != nil {
		merged.Skills = partial.Skills
	}
	if partial.Github != "" {
		merged.Github = partial.Github
	}
	if partial.Linkedin != "" {
		merged.Linkedin = partial.Linkedin
	}
	if partial.ProfilePicture != "" {
		merged.ProfilePicture = partial.ProfilePicture
	}
	return merged
}
