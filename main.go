package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/groupfinder/groupfinder-desktop/internal/api"
	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
	"github.com/groupfinder/groupfinder-desktop/internal/session"
	"github.com/groupfinder/groupfinder-desktop/internal/storage"
	"github.com/groupfinder/groupfinder-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.groupfinder.desktop"
	AppName = "GroupFinder"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewIndigoTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	// The auth token lives in the OS keychain with a preferences fallback;
	// the cached user profile stays in plain preferences.
	prefsKV := storage.NewPreferencesKV(myApp)
	secretKV := storage.NewSecretKV(AppID, prefsKV)
	store := session.NewStore(secretKV, prefsKV)
	store.Initialize()

	baseURL := settings.GetAPIBaseURL()
	publicClient := api.NewPublic(baseURL)

	// root is assigned below; the 401 hook only ever fires from request
	// goroutines after the UI is mounted.
	var root *ui.RootUI
	privateClient := api.NewPrivate(baseURL, store, func() {
		store.Logout()
		fyne.Do(func() {
			if root != nil {
				root.ShowSessionExpired()
			}
		})
	})

	authSvc := service.NewAuthService(publicClient)
	userSvc := service.NewUserService(privateClient)
	projectSvc := service.NewProjectService(privateClient)
	memberSvc := service.NewMemberService(privateClient)

	root = ui.NewRootUI(myWindow, settings, store, authSvc, userSvc, projectSvc, memberSvc)

	myWindow.ShowAndRun()
}
