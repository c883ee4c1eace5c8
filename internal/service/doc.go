package service

// Package service wraps the remote API with typed request/response
// functions for auth, user profiles, projects, and team membership. Every
// operation absorbs transport and HTTP errors and returns a uniform
// Result; no error ever propagates to a page. Services never mutate the
// session store; callers orchestrate store updates after success.
