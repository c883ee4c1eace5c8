package ui

import (
	"context"
	"net/http"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
)

// registerPage is the account creation form
type registerPage struct {
	ui  *RootUI
	gen int

	firstNameEntry *widget.Entry
	lastNameEntry  *widget.Entry
	usernameEntry  *widget.Entry
	emailEntry     *widget.Entry
	specSelect     *widget.Select
	passwordEntry  *widget.Entry
	submitBtn      *widget.Button
	inlineError    *widget.Label
}

func newRegisterPage(ui *RootUI, gen int) *registerPage {
	return &registerPage{ui: ui, gen: gen}
}

func (p *registerPage) build() fyne.CanvasObject {
	p.firstNameEntry = widget.NewEntry()
	p.firstNameEntry.SetPlaceHolder("John")
	p.lastNameEntry = widget.NewEntry()
	p.lastNameEntry.SetPlaceHolder("Doe")
	p.usernameEntry = widget.NewEntry()
	p.usernameEntry.SetPlaceHolder("username")
	p.emailEntry = widget.NewEntry()
	p.emailEntry.SetPlaceHolder("you@example.com")
	p.specSelect = widget.NewSelect(config.SpecializationOptions(), nil)
	p.specSelect.PlaceHolder = "Select specialization"
	p.passwordEntry = widget.NewPasswordEntry()
	p.passwordEntry.SetPlaceHolder("at least 8 characters")

	p.inlineError = widget.NewLabel("")
	p.inlineError.Importance = widget.DangerImportance
	p.inlineError.Wrapping = fyne.TextWrapWord
	p.inlineError.Hide()

	p.submitBtn = widget.NewButton("Create Account", p.onSubmit)
	p.submitBtn.Importance = widget.HighImportance

	loginLink := widget.NewButton("Already registered? Log in", p.ui.ShowLogin)
	loginLink.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Create your account", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.inlineError,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("First name"), p.firstNameEntry),
			container.NewVBox(widget.NewLabel("Last name"), p.lastNameEntry),
		),
		widget.NewLabel("Username"),
		p.usernameEntry,
		widget.NewLabel("Email"),
		p.emailEntry,
		widget.NewLabel("Specialization"),
		p.specSelect,
		widget.NewLabel("Password"),
		p.passwordEntry,
		p.submitBtn,
		loginLink,
	)

	sized := container.NewGridWrap(fyne.NewSize(FormMaxWidth, form.MinSize().Height+360), form)
	return container.NewCenter(sized)
}

func (p *registerPage) showInline(text string) {
	p.inlineError.SetText(text)
	p.inlineError.Show()
}

// validate mirrors the server's rules so obvious mistakes never cost a
// round-trip. Returns an empty string when the form is submittable.
func (p *registerPage) validate() string {
	if strings.TrimSpace(p.firstNameEntry.Text) == "" ||
		strings.TrimSpace(p.lastNameEntry.Text) == "" ||
		strings.TrimSpace(p.usernameEntry.Text) == "" ||
		strings.TrimSpace(p.emailEntry.Text) == "" ||
		p.passwordEntry.Text == "" {
		return "All fields are required."
	}
	if len(p.passwordEntry.Text) < MinPasswordLength {
		return "Password must be at least 8 characters long."
	}
	return ""
}

func (p *registerPage) onSubmit() {
	if message := p.validate(); message != "" {
		p.showInline(message)
		return
	}

	p.inlineError.Hide()
	p.submitBtn.Disable()

	req := service.RegisterRequest{
		FirstName:      strings.TrimSpace(p.firstNameEntry.Text),
		LastName:       strings.TrimSpace(p.lastNameEntry.Text),
		Username:       strings.TrimSpace(p.usernameEntry.Text),
		Password:       p.passwordEntry.Text,
		Email:          strings.TrimSpace(p.emailEntry.Text),
		Specialization: p.specSelect.Selected,
	}

	go func() {
		result := p.ui.auth.Register(context.Background(), req)
		p.ui.post(p.gen, func() {
			p.submitBtn.Enable()
			if !result.Success {
				if result.Status == http.StatusConflict {
					p.showInline("Username already exists!")
				} else {
					p.showInline("Network Error! Try Again")
				}
				return
			}
			p.ui.ShowLogin()
			p.ui.messages.ShowSuccess("Account created! Please log in.")
		})
	}()
}
