package config

import (
	"os"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyBrowsePageSize = "browse_page_size"
	KeyJoinMessage    = "default_join_message"
)

// EnvAPIBaseURL overrides the stored API base URL at startup
const EnvAPIBaseURL = "GROUPFINDER_API_BASE_URL"

// Default values
const (
	DefaultAPIBaseURL     = "http://localhost:8080"
	DefaultBrowsePageSize = 9
	DefaultJoinMessage    = "I would like to join your project."
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the platform API base URL. The environment
// variable wins over the stored preference so deployments can point the
// client without touching local state.
func (s *Settings) GetAPIBaseURL() string {
	if url := os.Getenv(EnvAPIBaseURL); url != "" {
		return url
	}
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the platform API base URL
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetBrowsePageSize returns how many project cards a browse page shows
func (s *Settings) GetBrowsePageSize() int {
	size := s.app.Preferences().Int(KeyBrowsePageSize)
	if size <= 0 {
		s.SetBrowsePageSize(DefaultBrowsePageSize)
		return DefaultBrowsePageSize
	}
	return size
}

// SetBrowsePageSize sets the browse page size, clamped to 1..50
func (s *Settings) SetBrowsePageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > 50 {
		size = 50
	}
	s.app.Preferences().SetInt(KeyBrowsePageSize, size)
}

// GetDefaultJoinMessage returns the pre-filled join request message
func (s *Settings) GetDefaultJoinMessage() string {
	message := s.app.Preferences().String(KeyJoinMessage)
	if message == "" {
		return DefaultJoinMessage
	}
	return message
}

// SetDefaultJoinMessage sets the pre-filled join request message
func (s *Settings) SetDefaultJoinMessage(message string) {
	s.app.Preferences().SetString(KeyJoinMessage, message)
}

// FrontendTechnologyOptions returns the frontend choices for filters and forms
func FrontendTechnologyOptions() []string {
	return []string{"HTML", "CSS", "JavaScript", "React", "Angular", "Vue.js"}
}

// BackendTechnologyOptions returns the backend choices for filters and forms
func BackendTechnologyOptions() []string {
	return []string{"Java", "Node.js", "Python", "Ruby", "PHP", "Golang"}
}

// SpecializationOptions returns the study-track choices for registration
func SpecializationOptions() []string {
	return []string{
		"Software Engineering",
		"Information Technology",
		"Data Science",
		"Cyber Security",
		"Interactive Media",
	}
}
