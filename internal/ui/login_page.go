package ui

import (
	"context"
	"net/http"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/service"
)

// loginPage is the credential form. A successful login lands in the
// session store; the page itself never keeps auth state.
type loginPage struct {
	ui  *RootUI
	gen int

	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	submitBtn     *widget.Button
	inlineError   *widget.Label
}

func newLoginPage(ui *RootUI, gen int) *loginPage {
	return &loginPage{ui: ui, gen: gen}
}

func (p *loginPage) build() fyne.CanvasObject {
	p.usernameEntry = widget.NewEntry()
	p.usernameEntry.SetPlaceHolder("username")

	p.passwordEntry = widget.NewPasswordEntry()
	p.passwordEntry.SetPlaceHolder("password")
	p.passwordEntry.OnSubmitted = func(string) { p.onSubmit() }

	p.inlineError = widget.NewLabel("")
	p.inlineError.Importance = widget.DangerImportance
	p.inlineError.Hide()

	p.submitBtn = widget.NewButton("Login", p.onSubmit)
	p.submitBtn.Importance = widget.HighImportance

	registerLink := widget.NewButton("No account yet? Sign up", p.ui.ShowRegister)
	registerLink.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Welcome back", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.inlineError,
		widget.NewLabel("Username"),
		p.usernameEntry,
		widget.NewLabel("Password"),
		p.passwordEntry,
		p.submitBtn,
		registerLink,
	)

	sized := container.NewGridWrap(fyne.NewSize(FormMaxWidth, form.MinSize().Height+220), form)
	return container.NewCenter(sized)
}

func (p *loginPage) showInline(text string) {
	p.inlineError.SetText(text)
	p.inlineError.Show()
}

func (p *loginPage) onSubmit() {
	username := strings.TrimSpace(p.usernameEntry.Text)
	password := p.passwordEntry.Text

	if username == "" || password == "" {
		p.showInline("Username and password are required.")
		return
	}

	p.inlineError.Hide()
	p.submitBtn.Disable()

	go func() {
		result := p.ui.auth.Login(context.Background(), username, password)
		p.ui.post(p.gen, func() {
			p.submitBtn.Enable()
			if !result.Success {
				p.showInline(loginErrorText(result))
				return
			}
			p.ui.store.Login(result.Data.Token, result.Data.User)
			p.ui.ShowBrowse()
			p.ui.messages.ShowSuccess("Logged in as " + result.Data.User.Username)
		})
	}()
}

func loginErrorText(result service.Result[service.LoginResponse]) string {
	switch result.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "Invalid username or password."
	case 0:
		return "Network Error! Try Again"
	}
	if result.Message != "" {
		return result.Message
	}
	return "Login failed. Please try again."
}
