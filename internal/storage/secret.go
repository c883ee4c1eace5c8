package storage

import (
	"github.com/zalando/go-keyring"
)

// SecretKV keeps values in the OS keychain so credentials never land in
// plaintext preference files. When no keychain is reachable (headless
// sessions, stripped-down desktops) it falls back to the wrapped KV, and
// keeps using it until the key is removed.
type SecretKV struct {
	service  string
	fallback KV
}

// NewSecretKV creates a keychain-backed KV under the given service name
func NewSecretKV(service string, fallback KV) *SecretKV {
	return &SecretKV{service: service, fallback: fallback}
}

// Get returns the stored value, preferring the keychain
func (s *SecretKV) Get(key string) (string, bool) {
	value, err := keyring.Get(s.service, key)
	if err == nil && value != "" {
		return value, true
	}
	// Not found in the keychain may still mean a value written through the
	// fallback on an earlier run without keychain access.
	return s.fallback.Get(key)
}

// Set stores the value, falling back to the wrapped KV on keychain errors
func (s *SecretKV) Set(key, value string) {
	if err := keyring.Set(s.service, key, value); err != nil {
		s.fallback.Set(key, value)
		return
	}
	// A previous fallback write must not resurface after logout/login cycles
	s.fallback.Remove(key)
}

// Remove deletes the key from both the keychain and the fallback
func (s *SecretKV) Remove(key string) {
	_ = keyring.Delete(s.service, key)
	s.fallback.Remove(key)
}
