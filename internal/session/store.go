package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/groupfinder/groupfinder-desktop/internal/model"
	"github.com/groupfinder/groupfinder-desktop/internal/storage"
)

// Storage keys
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// ErrNotLoggedIn is returned by UserUpdate when no session user exists
var ErrNotLoggedIn = errors.New("session: no user is logged in")

// Snapshot is a consistent view of the session state. The invariant
// IsLoggedIn == (Token != "" && User != nil) holds for every snapshot.
type Snapshot struct {
	Token         string
	User          *model.UserProfile
	IsLoggedIn    bool
	IsInitialized bool
}

// Store is the single process-wide authority on who is logged in. It is
// shared by all pages and the authenticated HTTP client, persists the
// session through a storage.KV so it survives restarts, and notifies
// subscribers after every mutation.
type Store struct {
	mu        sync.RWMutex
	secrets   storage.KV // token entry
	kv        storage.KV // serialized user profile
	listeners []func(Snapshot)
	now       func() time.Time

	token         string
	user          *model.UserProfile
	isLoggedIn    bool
	isInitialized bool
}

// NewStore creates a logged-out, uninitialized store. The token goes to
// secrets, the user profile to kv; both may be the same backend.
func NewStore(secrets, kv storage.KV) *Store {
	return &Store{secrets: secrets, kv: kv, now: time.Now}
}

// Initialize reads the persisted session. Both entries present and valid
// means logged in; anything else (missing, undecodable, expired token)
// comes up logged out, with corrupt entries cleared. Idempotent: calling
// again re-reads storage. Never touches the network.
func (s *Store) Initialize() {
	s.mu.Lock()

	token, hasToken := s.secrets.Get(KeyToken)
	if hasToken && s.tokenExpired(token) {
		s.secrets.Remove(KeyToken)
		hasToken = false
	}

	var user *model.UserProfile
	if raw, ok := s.kv.Get(KeyUser); ok {
		var u model.UserProfile
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			// A corrupt blob is equivalent to no session found
			s.kv.Remove(KeyUser)
		} else {
			user = &u
		}
	}

	if hasToken && user != nil {
		s.token = token
		s.user = user
		s.isLoggedIn = true
	} else {
		s.token = ""
		s.user = nil
		s.isLoggedIn = false
	}
	s.isInitialized = true

	s.notifyLocked()
}

// Login persists the token and user and sets the in-memory state to
// logged in. Marks the store initialized.
func (s *Store) Login(token string, user model.UserProfile) {
	s.mu.Lock()

	s.secrets.Set(KeyToken, token)
	if raw, err := json.Marshal(user); err == nil {
		s.kv.Set(KeyUser, string(raw))
	}

	s.token = token
	s.user = &user
	s.isLoggedIn = true
	s.isInitialized = true

	s.notifyLocked()
}

// UserUpdate shallow-merges the non-zero fields of partial onto the
// current user and persists the result. Returns ErrNotLoggedIn when no
// user is set.
func (s *Store) UserUpdate(partial model.UserProfile) error {
	s.mu.Lock()

	if s.user == nil {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}

	merged := s.user.Merge(partial)
	if raw, err := json.Marshal(merged); err == nil {
		s.kv.Set(KeyUser, string(raw))
	}
	s.user = &merged

	s.notifyLocked()
	return nil
}

// Logout clears the persisted and in-memory session. IsInitialized stays
// true.
func (s *Store) Logout() {
	s.mu.Lock()

	s.secrets.Remove(KeyToken)
	s.kv.Remove(KeyUser)

	s.token = ""
	s.user = nil
	s.isLoggedIn = false

	s.notifyLocked()
}

// Token returns the current bearer token, empty when logged out. Satisfies
// the authenticated client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out
func (s *Store) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

// Snapshot returns a consistent view of the whole session state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// OnChange registers a subscriber invoked after every store mutation with
// the post-mutation snapshot. Callbacks run synchronously on the mutating
// goroutine; UI subscribers are expected to rewrap in fyne.Do.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Token:         s.token,
		User:          copyUser(s.user),
		IsLoggedIn:    s.isLoggedIn,
		IsInitialized: s.isInitialized,
	}
}

// notifyLocked releases the lock and delivers the snapshot, so listeners
// can read the store without deadlocking.
func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// tokenExpired reports whether the token is a JWT with an exp claim in the
// past. Opaque tokens and JWTs without exp are left for the server to
// judge; the check only avoids starting up with a session guaranteed to
// 401 on first use.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}

func copyUser(u *model.UserProfile) *model.UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	if u.Skills != nil {
		c.Skills = append([]string(nil), u.Skills...)
	}
	return &c
}
