package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupfinder/groupfinder-desktop/internal/model"
	"github.com/groupfinder/groupfinder-desktop/internal/storage"
)

func alice() model.UserProfile {
	return model.UserProfile{
		ID:        7,
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Perera",
		Email:     "alice@example.com",
		Skills:    []string{"Go", "React"},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginThenInitializeInFreshProcess(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	first := NewStore(secrets, kv)
	first.Login("opaque-token-123", alice())

	// A fresh store over the same durable storage models a process restart
	second := NewStore(secrets, kv)
	second.Initialize()

	snap := second.Snapshot()
	assert.True(t, snap.IsLoggedIn)
	assert.True(t, snap.IsInitialized)
	assert.Equal(t, "opaque-token-123", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "alice", snap.User.Username)
	assert.Equal(t, []string{"Go", "React"}, snap.User.Skills)
}

func TestLogoutThenInitializeInFreshProcess(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	first := NewStore(secrets, kv)
	first.Login("opaque-token-123", alice())
	first.Logout()

	assert.True(t, first.Snapshot().IsInitialized, "logout must keep the initialized flag")

	second := NewStore(secrets, kv)
	second.Initialize()

	snap := second.Snapshot()
	assert.False(t, snap.IsLoggedIn)
	assert.True(t, snap.IsInitialized)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestInitializeWithTokenButNoUser(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()
	secrets.Set(KeyToken, "orphan-token")

	store := NewStore(secrets, kv)
	store.Initialize()

	snap := store.Snapshot()
	assert.False(t, snap.IsLoggedIn, "token without user must not count as a session")
	assert.True(t, snap.IsInitialized)
}

func TestInitializeRecoversFromCorruptUserBlob(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()
	secrets.Set(KeyToken, "opaque-token-123")
	kv.Set(KeyUser, "{not json")

	store := NewStore(secrets, kv)
	store.Initialize()

	snap := store.Snapshot()
	assert.False(t, snap.IsLoggedIn)
	assert.True(t, snap.IsInitialized)

	_, ok := kv.Get(KeyUser)
	assert.False(t, ok, "corrupt entry should be cleared")
}

func TestInitializeRejectsExpiredJWT(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	first := NewStore(secrets, kv)
	first.Login(signedToken(t, time.Now().Add(-time.Hour)), alice())

	second := NewStore(secrets, kv)
	second.Initialize()

	snap := second.Snapshot()
	assert.False(t, snap.IsLoggedIn, "expired token must come up logged out")
	assert.True(t, snap.IsInitialized)
}

func TestInitializeAcceptsUnexpiredJWT(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	first := NewStore(secrets, kv)
	first.Login(signedToken(t, time.Now().Add(time.Hour)), alice())

	second := NewStore(secrets, kv)
	second.Initialize()

	assert.True(t, second.Snapshot().IsLoggedIn)
}

func TestInitializeIsIdempotent(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	store := NewStore(secrets, kv)
	store.Login("opaque-token-123", alice())
	store.Initialize()
	store.Initialize()

	snap := store.Snapshot()
	assert.True(t, snap.IsLoggedIn)
	assert.Equal(t, "opaque-token-123", snap.Token)
}

func TestUserUpdateMergesAndPersists(t *testing.T) {
	secrets := storage.NewMemoryKV()
	kv := storage.NewMemoryKV()

	store := NewStore(secrets, kv)
	store.Login("opaque-token-123", alice())

	err := store.UserUpdate(model.UserProfile{Bio: "Building things", Skills: []string{"Go", "Docker"}})
	require.NoError(t, err)

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "Building things", user.Bio)
	assert.Equal(t, []string{"Go", "Docker"}, user.Skills)
	assert.Equal(t, "alice", user.Username, "fields absent from the partial are retained")
	assert.Equal(t, "alice@example.com", user.Email)

	// The merge must survive a restart
	second := NewStore(secrets, kv)
	second.Initialize()
	require.NotNil(t, second.User())
	assert.Equal(t, "Building things", second.User().Bio)
}

func TestUserUpdateFailsWhenLoggedOut(t *testing.T) {
	store := NewStore(storage.NewMemoryKV(), storage.NewMemoryKV())
	store.Initialize()

	err := store.UserUpdate(model.UserProfile{Bio: "nope"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestOnChangeObservesEveryMutation(t *testing.T) {
	store := NewStore(storage.NewMemoryKV(), storage.NewMemoryKV())

	var seen []Snapshot
	store.OnChange(func(s Snapshot) { seen = append(seen, s) })

	store.Initialize()
	store.Login("opaque-token-123", alice())
	store.Logout()

	require.Len(t, seen, 3)
	assert.False(t, seen[0].IsLoggedIn)
	assert.True(t, seen[1].IsLoggedIn)
	assert.False(t, seen[2].IsLoggedIn)
	assert.True(t, seen[2].IsInitialized)
}

func TestUserReturnsACopy(t *testing.T) {
	store := NewStore(storage.NewMemoryKV(), storage.NewMemoryKV())
	store.Login("opaque-token-123", alice())

	user := store.User()
	user.Username = "mallory"
	user.Skills[0] = "Rust"

	fresh := store.User()
	assert.Equal(t, "alice", fresh.Username)
	assert.Equal(t, "Go", fresh.Skills[0])
}
