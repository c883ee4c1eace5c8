package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetAPIBaseURL(); url != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, url)
	}

	// Test setting custom value
	custom := "https://api.groupfinder.example"
	settings.SetAPIBaseURL(custom)
	if url := settings.GetAPIBaseURL(); url != custom {
		t.Errorf("Expected base URL %s, got %s", custom, url)
	}
}

func TestAPIBaseURL_EnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetAPIBaseURL("https://stored.example")

	t.Setenv(EnvAPIBaseURL, "https://env.example")

	if url := settings.GetAPIBaseURL(); url != "https://env.example" {
		t.Errorf("Environment override should win, got %s", url)
	}
}

func TestBrowsePageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetBrowsePageSize(); size != DefaultBrowsePageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultBrowsePageSize, size)
	}

	settings.SetBrowsePageSize(18)
	if size := settings.GetBrowsePageSize(); size != 18 {
		t.Errorf("Expected page size 18, got %d", size)
	}

	// Clamping
	settings.SetBrowsePageSize(0)
	if size := settings.GetBrowsePageSize(); size != 1 {
		t.Errorf("Expected page size clamped to 1, got %d", size)
	}

	settings.SetBrowsePageSize(500)
	if size := settings.GetBrowsePageSize(); size != 50 {
		t.Errorf("Expected page size clamped to 50, got %d", size)
	}
}

func TestDefaultJoinMessage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if msg := settings.GetDefaultJoinMessage(); msg != DefaultJoinMessage {
		t.Errorf("Expected default join message, got %q", msg)
	}

	settings.SetDefaultJoinMessage("Hi, I have React experience.")
	if msg := settings.GetDefaultJoinMessage(); msg != "Hi, I have React experience." {
		t.Errorf("Custom join message not stored, got %q", msg)
	}
}

func TestTechnologyOptions(t *testing.T) {
	if len(FrontendTechnologyOptions()) == 0 {
		t.Error("frontend options should not be empty")
	}
	if len(BackendTechnologyOptions()) == 0 {
		t.Error("backend options should not be empty")
	}
}
