package api

// Package api provides the JSON HTTP clients for the remote platform API.
// Two configurations share a base URL: a public client for registration
// and login, and an authenticated client that attaches the current bearer
// token per request and triggers a global unauthorized hook on HTTP 401.
