package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// welcomePage is the logged-out landing view with the two entry paths:
// create a project or browse existing ones.
type welcomePage struct {
	ui *RootUI
}

func newWelcomePage(ui *RootUI) *welcomePage {
	return &welcomePage{ui: ui}
}

func (p *welcomePage) build() fyne.CanvasObject {
	hero := widget.NewLabelWithStyle(
		"Find Your Perfect Project Team",
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	tagline := widget.NewLabelWithStyle(
		"Connect with talented students, discover exciting projects, and build amazing things together.",
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)
	tagline.Wrapping = fyne.TextWrapWord

	getStarted := widget.NewButton("Get Started", p.ui.ShowRegister)
	getStarted.Importance = widget.HighImportance
	explore := widget.NewButton("Explore Projects", p.ui.ShowBrowse)

	createCard := widget.NewCard("Have an Idea?",
		"Post your project and let skilled students find you.",
		widget.NewLabel("Define your project scope, pick the tech stack,\nand review join requests from interested students."))
	searchCard := widget.NewCard("Want to Contribute?",
		"Find opportunities that match your skills.",
		widget.NewLabel("Browse projects by module and technology,\nthen apply to join a team with one click."))

	return container.NewVBox(
		widget.NewLabel(""),
		hero,
		tagline,
		container.NewCenter(container.NewHBox(getStarted, explore)),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, createCard, searchCard),
	)
}
