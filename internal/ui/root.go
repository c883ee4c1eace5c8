package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
	"github.com/groupfinder/groupfinder-desktop/internal/session"
)

// RootUI is the navigation shell: header with auth-aware controls, a
// transient message area, and a swappable content region the pages render
// into.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	store    *session.Store
	auth     service.Authenticator
	users    service.ProfileUpdater
	projects service.Projects
	members  service.Members
	messages *Messages

	header  *fyne.Container
	content *fyne.Container

	// generation invalidates in-flight page callbacks on navigation
	mu         sync.Mutex
	generation int
}

// NewRootUI creates and mounts the main UI
func NewRootUI(
	window fyne.Window,
	settings *config.Settings,
	store *session.Store,
	auth service.Authenticator,
	users service.ProfileUpdater,
	projects service.Projects,
	members service.Members,
) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,
		store:    store,
		auth:     auth,
		users:    users,
		projects: projects,
		members:  members,
		messages: NewMessages(),
		header:   container.NewHBox(),
		content:  container.NewStack(),
	}

	ui.rebuildHeader(store.Snapshot())
	store.OnChange(func(snap session.Snapshot) {
		fyne.Do(func() { ui.rebuildHeader(snap) })
	})

	window.SetContent(container.NewBorder(
		container.NewVBox(ui.header, widget.NewSeparator(), ui.messages.Container()),
		nil, nil, nil,
		ui.content,
	))

	if store.Snapshot().IsLoggedIn {
		ui.ShowBrowse()
	} else {
		ui.ShowWelcome()
	}
	return ui
}

// ShowSessionExpired is the landing point of the global 401 hook: the
// session store is already cleared, so surface why and return to login.
func (ui *RootUI) ShowSessionExpired() {
	ui.ShowLogin()
	ui.messages.ShowError("Your session has expired. Please log in again.")
}

// ShowWelcome displays the landing page
func (ui *RootUI) ShowWelcome() {
	ui.navigate(func(gen int) fyne.CanvasObject {
		return newWelcomePage(ui).build()
	})
}

// ShowLogin displays the login form
func (ui *RootUI) ShowLogin() {
	ui.navigate(func(gen int) fyne.CanvasObject {
		return newLoginPage(ui, gen).build()
	})
}

// ShowRegister displays the registration form
func (ui *RootUI) ShowRegister() {
	ui.navigate(func(gen int) fyne.CanvasObject {
		return newRegisterPage(ui, gen).build()
	})
}

// ShowBrowse displays the filtered project listing
func (ui *RootUI) ShowBrowse() {
	if !ui.requireLogin() {
		return
	}
	ui.navigate(func(gen int) fyne.CanvasObject {
		page := newBrowsePage(ui, gen)
		page.load()
		return page.build()
	})
}

// ShowCreate displays the project creation form
func (ui *RootUI) ShowCreate() {
	if !ui.requireLogin() {
		return
	}
	ui.navigate(func(gen int) fyne.CanvasObject {
		return newCreatePage(ui, gen).build()
	})
}

// ShowProject displays a project's detail page
func (ui *RootUI) ShowProject(id int64) {
	if !ui.requireLogin() {
		return
	}
	ui.navigate(func(gen int) fyne.CanvasObject {
		page := newProjectDetailPage(ui, gen, id)
		page.load()
		return page.build()
	})
}

// ShowProfile displays the current user's profile editor
func (ui *RootUI) ShowProfile() {
	if !ui.requireLogin() {
		return
	}
	ui.navigate(func(gen int) fyne.CanvasObject {
		return newProfilePage(ui, gen).build()
	})
}

// requireLogin gates protected pages; unauthenticated users land on the
// login form with an explanation.
func (ui *RootUI) requireLogin() bool {
	if ui.store.Snapshot().IsLoggedIn {
		return true
	}
	ui.ShowLogin()
	ui.messages.ShowError("Please log in to continue.")
	return false
}

// navigate swaps the content region and invalidates older pages'
// pending completions.
func (ui *RootUI) navigate(build func(gen int) fyne.CanvasObject) {
	ui.mu.Lock()
	ui.generation++
	gen := ui.generation
	ui.mu.Unlock()

	ui.content.Objects = []fyne.CanvasObject{build(gen)}
	ui.content.Refresh()
}

func (ui *RootUI) isCurrent(gen int) bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return gen == ui.generation
}

// post runs fn on the UI thread only while the originating page is still
// mounted, so stale completions never touch dead view state.
func (ui *RootUI) post(gen int, fn func()) {
	fyne.Do(func() {
		if ui.isCurrent(gen) {
			fn()
		}
	})
}

func (ui *RootUI) rebuildHeader(snap session.Snapshot) {
	title := widget.NewLabelWithStyle("GroupFinder", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	left := container.NewHBox(title)
	right := container.NewHBox()

	if snap.IsLoggedIn {
		projectsBtn := widget.NewButton("Projects", ui.ShowBrowse)
		createBtn := widget.NewButton("Create Project", ui.ShowCreate)
		profileBtn := widget.NewButton("My Profile", ui.ShowProfile)
		left.Add(projectsBtn)
		left.Add(createBtn)
		left.Add(profileBtn)

		name := widget.NewLabel(snap.User.FullName())
		logoutBtn := widget.NewButton("Logout", func() {
			ui.store.Logout()
			ui.ShowWelcome()
		})
		logoutBtn.Importance = widget.LowImportance
		right.Add(name)
		right.Add(logoutBtn)
	} else {
		loginBtn := widget.NewButton("Login", ui.ShowLogin)
		loginBtn.Importance = widget.LowImportance
		signUpBtn := widget.NewButton("Sign Up", ui.ShowRegister)
		signUpBtn.Importance = widget.HighImportance
		right.Add(loginBtn)
		right.Add(signUpBtn)
	}

	settingsBtn := widget.NewButton("⚙", func() {
		NewAppSettingsDialog(ui.settings, ui.window).Show()
	})
	settingsBtn.Importance = widget.LowImportance
	right.Add(settingsBtn)

	ui.header.Objects = []fyne.CanvasObject{container.NewBorder(nil, nil, left, right)}
	ui.header.Refresh()
}
