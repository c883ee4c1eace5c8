package storage

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok := kv.Get("token"); ok {
		t.Error("empty store should not report a value")
	}

	kv.Set("token", "abc123")
	value, ok := kv.Get("token")
	if !ok || value != "abc123" {
		t.Errorf("Get after Set = (%q, %v), expected (abc123, true)", value, ok)
	}

	kv.Remove("token")
	if _, ok := kv.Get("token"); ok {
		t.Error("Get after Remove should report absent")
	}
}

func TestMemoryKV_EmptyValueIsAbsent(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set("user", "")

	if _, ok := kv.Get("user"); ok {
		t.Error("empty string value should be treated as absent")
	}
}

func TestPreferencesKV_RoundTrip(t *testing.T) {
	app := test.NewApp()
	kv := NewPreferencesKV(app)

	if _, ok := kv.Get("token"); ok {
		t.Error("fresh preferences should not report a value")
	}

	kv.Set("token", "abc123")
	value, ok := kv.Get("token")
	if !ok || value != "abc123" {
		t.Errorf("Get after Set = (%q, %v), expected (abc123, true)", value, ok)
	}

	kv.Remove("token")
	if _, ok := kv.Get("token"); ok {
		t.Error("Get after Remove should report absent")
	}
}

func TestSecretKV_FallbackRoundTrip(t *testing.T) {
	// Keychain availability varies by environment; the contract that must
	// hold everywhere is that Set/Get/Remove round-trip through the
	// combined store.
	fallback := NewMemoryKV()
	kv := NewSecretKV("com.groupfinder.desktop.test", fallback)

	kv.Set("token", "secret-value")
	value, ok := kv.Get("token")
	if !ok || value != "secret-value" {
		t.Errorf("Get after Set = (%q, %v), expected (secret-value, true)", value, ok)
	}

	kv.Remove("token")
	if _, ok := kv.Get("token"); ok {
		t.Error("Get after Remove should report absent")
	}
}
