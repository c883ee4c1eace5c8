package ui

import (
	"context"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
)

// createPage is the project creation form. The creator becomes the
// project's leader server-side; on success the page navigates straight to
// the new project's detail view.
type createPage struct {
	ui  *RootUI
	gen int

	titleEntry       *widget.Entry
	descriptionEntry *widget.Entry
	moduleCodeEntry  *widget.Entry
	moduleNameEntry  *widget.Entry
	frontendSelect   *widget.Select
	backendSelect    *widget.Select
	maxMembersSelect *widget.Select
	submitBtn        *widget.Button
	inlineError      *widget.Label
}

func newCreatePage(ui *RootUI, gen int) *createPage {
	return &createPage{ui: ui, gen: gen}
}

func (p *createPage) build() fyne.CanvasObject {
	p.titleEntry = widget.NewEntry()
	p.titleEntry.SetPlaceHolder("Enter your project title")
	p.descriptionEntry = widget.NewMultiLineEntry()
	p.descriptionEntry.SetPlaceHolder("Describe your project in detail...")
	p.descriptionEntry.SetMinRowsVisible(4)
	p.moduleCodeEntry = widget.NewEntry()
	p.moduleCodeEntry.SetPlaceHolder("SE3040")
	p.moduleNameEntry = widget.NewEntry()
	p.moduleNameEntry.SetPlaceHolder("Application Frameworks")
	p.frontendSelect = widget.NewSelect(config.FrontendTechnologyOptions(), nil)
	p.frontendSelect.PlaceHolder = "Frontend technology"
	p.backendSelect = widget.NewSelect(config.BackendTechnologyOptions(), nil)
	p.backendSelect.PlaceHolder = "Backend technology"

	sizes := []string{}
	for n := MinTeamSize; n <= MaxTeamSize; n++ {
		sizes = append(sizes, strconv.Itoa(n))
	}
	p.maxMembersSelect = widget.NewSelect(sizes, nil)
	p.maxMembersSelect.PlaceHolder = "Max members"

	p.inlineError = widget.NewLabel("")
	p.inlineError.Importance = widget.DangerImportance
	p.inlineError.Wrapping = fyne.TextWrapWord
	p.inlineError.Hide()

	p.submitBtn = widget.NewButton("Create Project", p.onSubmit)
	p.submitBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Create a New Project", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.inlineError,
		widget.NewLabel("Project Title *"),
		p.titleEntry,
		widget.NewLabel("Description *"),
		p.descriptionEntry,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("Module Code *"), p.moduleCodeEntry),
			container.NewVBox(widget.NewLabel("Module Name *"), p.moduleNameEntry),
		),
		container.NewGridWithColumns(3, p.frontendSelect, p.backendSelect, p.maxMembersSelect),
		p.submitBtn,
	)

	sized := container.NewGridWrap(fyne.NewSize(FormMaxWidth+160, form.MinSize().Height+420), form)
	return container.NewVScroll(container.NewCenter(sized))
}

func (p *createPage) showInline(text string) {
	p.inlineError.SetText(text)
	p.inlineError.Show()
}

func (p *createPage) onSubmit() {
	if strings.TrimSpace(p.titleEntry.Text) == "" ||
		strings.TrimSpace(p.descriptionEntry.Text) == "" ||
		strings.TrimSpace(p.moduleCodeEntry.Text) == "" ||
		strings.TrimSpace(p.moduleNameEntry.Text) == "" ||
		p.frontendSelect.Selected == "" ||
		p.backendSelect.Selected == "" ||
		p.maxMembersSelect.Selected == "" {
		p.showInline("Please fill in all required fields")
		return
	}

	maxMembers, err := strconv.Atoi(p.maxMembersSelect.Selected)
	if err != nil {
		p.showInline("Max members must be a number")
		return
	}

	user := p.ui.store.User()
	if user == nil {
		p.ui.ShowLogin()
		return
	}

	p.inlineError.Hide()
	p.submitBtn.Disable()

	create := service.ProjectCreate{
		Title:              strings.TrimSpace(p.titleEntry.Text),
		Description:        strings.TrimSpace(p.descriptionEntry.Text),
		ModuleCode:         strings.TrimSpace(p.moduleCodeEntry.Text),
		ModuleName:         strings.TrimSpace(p.moduleNameEntry.Text),
		CreatorID:          user.ID,
		FrontendTechnology: p.frontendSelect.Selected,
		BackendTechnology:  p.backendSelect.Selected,
		MaxMembers:         maxMembers,
		Status:             model.ProjectStatusOpen,
	}

	go func() {
		result := p.ui.projects.Create(context.Background(), create)
		p.ui.post(p.gen, func() {
			p.submitBtn.Enable()
			if !result.Success {
				message := result.Message
				if message == "" {
					message = "Failed to create project"
				}
				p.showInline(message)
				return
			}
			p.ui.ShowProject(result.Data.ID)
			p.ui.messages.ShowSuccess("Project created!")
		})
	}()
}
