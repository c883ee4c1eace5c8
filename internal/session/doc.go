package session

// Package session holds the client-side authentication state: the bearer
// token, the current user profile, and the derived login flag. State is
// persisted through the storage port so sessions survive restarts, and
// every mutation is broadcast to subscribers.
