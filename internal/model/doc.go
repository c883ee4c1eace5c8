package model

// Package model defines domain data structures shared across the app: user
// profiles, projects with their member lists, join requests, and status
// enums. Structures mirror the remote API's JSON payloads and are designed
// for direct binding in the UI.
