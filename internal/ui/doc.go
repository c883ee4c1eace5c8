package ui

// Package ui implements the application's pages and shared chrome: the
// navigation shell, login/register forms, the project browser, project
// detail with team management, the profile editor, and transient message
// banners. Network calls run in goroutines; completions re-enter the UI
// thread via fyne.Do and are guarded against navigated-away pages.
