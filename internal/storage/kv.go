package storage

import (
	"sync"

	"fyne.io/fyne/v2"
)

// KV is the durable key-value port backing the session store. Values are
// opaque strings; an empty string is equivalent to absent.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// PreferencesKV stores values in the Fyne preferences backend, which
// persists per app ID across restarts.
type PreferencesKV struct {
	prefs fyne.Preferences
}

// NewPreferencesKV creates a KV over the given app's preferences
func NewPreferencesKV(app fyne.App) *PreferencesKV {
	return &PreferencesKV{prefs: app.Preferences()}
}

// Get returns the stored value and whether it was present
func (p *PreferencesKV) Get(key string) (string, bool) {
	value := p.prefs.String(key)
	return value, value != ""
}

// Set stores the value under key
func (p *PreferencesKV) Set(key, value string) {
	p.prefs.SetString(key, value)
}

// Remove deletes the key
func (p *PreferencesKV) Remove(key string) {
	p.prefs.RemoveValue(key)
}

// MemoryKV is an in-process KV used by tests and as a last-resort
// fallback. Safe for concurrent use.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the stored value and whether it was present
func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok && value != ""
}

// Set stores the value under key
func (m *MemoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Remove deletes the key
func (m *MemoryKV) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
