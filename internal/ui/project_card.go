package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

const cardDescriptionLimit = 120

// newProjectCard renders one project in the browse grid. onOpen navigates
// to the detail page.
func newProjectCard(project model.Project, onOpen func()) fyne.CanvasObject {
	descriptionLabel := widget.NewLabel(truncateDescription(project.Description))
	descriptionLabel.Wrapping = fyne.TextWrapWord

	statusLabel := widget.NewLabel(project.Status.String())
	if project.Status.CanAcceptMembers() {
		statusLabel.Importance = widget.SuccessImportance
	} else {
		statusLabel.Importance = widget.MediumImportance
	}

	membersLabel := widget.NewLabel(fmt.Sprintf(MemberCountFormat, project.MemberCount(), project.MaxMembers))
	membersLabel.Importance = capacityImportance(project.FillPercent())

	techLabel := widget.NewLabel(techSummary(&project))

	viewBtn := widget.NewButton("View Project", onOpen)
	viewBtn.Importance = widget.HighImportance

	body := container.NewVBox(
		descriptionLabel,
		techLabel,
		container.NewBorder(nil, nil,
			container.NewHBox(membersLabel, statusLabel),
			viewBtn,
		),
	)

	card := widget.NewCard(project.Title, project.ModuleCode, body)
	return container.NewGridWrap(fyne.NewSize(CardMinWidth, CardMinHeight), card)
}

// truncateDescription caps card text at cardDescriptionLimit runes, not
// bytes, so multi-byte text never gets cut mid-character.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= cardDescriptionLimit {
		return description
	}
	return strings.TrimSpace(string(runes[:cardDescriptionLimit])) + "…"
}

// capacityImportance maps team occupancy to a label color: green while
// comfortable, amber when tight, red when (nearly) full.
func capacityImportance(fillPercent int) widget.Importance {
	switch {
	case fillPercent < CapacityComfortable:
		return widget.SuccessImportance
	case fillPercent < CapacityTight:
		return widget.WarningImportance
	default:
		return widget.DangerImportance
	}
}

func techSummary(project *model.Project) string {
	techs := []string{}
	if project.FrontendTechnology != "" {
		techs = append(techs, project.FrontendTechnology)
	}
	if project.BackendTechnology != "" {
		techs = append(techs, project.BackendTechnology)
	}
	if len(techs) == 0 {
		return "Tech stack not specified"
	}
	return strings.Join(techs, " · ")
}
