package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/membership"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
)

// projectDetailPage shows a single project: its fields, the team list,
// and the actions the current user's standing allows. Membership and
// leadership are derived fresh from every fetch, never stored, and local
// state only transitions when the corresponding service call succeeds.
type projectDetailPage struct {
	ui        *RootUI
	gen       int
	projectID int64

	project  *model.Project
	requests []model.JoinRequest

	body    *fyne.Container
	loading *widget.ProgressBarInfinite

	// per-action in-flight flags approximate at-most-one-in-flight
	joinInFlight    bool
	resolveInFlight bool
	removeInFlight  bool
}

func newProjectDetailPage(ui *RootUI, gen int, projectID int64) *projectDetailPage {
	return &projectDetailPage{
		ui:        ui,
		gen:       gen,
		projectID: projectID,
		body:      container.NewVBox(),
		loading:   widget.NewProgressBarInfinite(),
	}
}

func (p *projectDetailPage) build() fyne.CanvasObject {
	return container.NewVScroll(container.NewVBox(p.loading, p.body))
}

// load fetches the project and, for leaders, its join requests
func (p *projectDetailPage) load() {
	p.loading.Show()

	go func() {
		result := p.ui.projects.Get(context.Background(), p.projectID)
		p.ui.post(p.gen, func() {
			p.loading.Hide()
			if !result.Success {
				p.ui.messages.ShowError("Error fetching project data: " + result.Message)
				return
			}
			project := result.Data
			p.project = &project
			p.render()

			if membership.IsLeader(p.project, p.currentUserID()) {
				p.loadRequests()
			}
		})
	}()
}

func (p *projectDetailPage) loadRequests() {
	go func() {
		result := p.ui.members.JoinRequests(context.Background(), p.projectID)
		p.ui.post(p.gen, func() {
			if !result.Success {
				p.ui.messages.ShowError("Error fetching join requests: " + result.Message)
				return
			}
			p.requests = result.Data
			p.render()
		})
	}()
}

func (p *projectDetailPage) currentUserID() int64 {
	if user := p.ui.store.User(); user != nil {
		return user.ID
	}
	return 0
}

// render rebuilds the whole page from the current project snapshot
func (p *projectDetailPage) render() {
	if p.project == nil {
		return
	}
	project := p.project
	actions := membership.ActionsFor(project, p.currentUserID())

	p.body.RemoveAll()
	p.body.Add(p.headerSection(project, actions))
	p.body.Add(p.statsSection(project))
	p.body.Add(p.membersSection(project, actions))
	if actions.CanManageRequests {
		p.body.Add(p.requestsSection())
	}
	p.body.Refresh()
}

func (p *projectDetailPage) headerSection(project *model.Project, actions membership.Actions) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(project.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	module := widget.NewLabel(project.ModuleCode + " · " + project.ModuleName)

	statusLabel := widget.NewLabel(project.Status.String())
	if project.Status.CanAcceptMembers() {
		statusLabel.Importance = widget.SuccessImportance
	}

	controls := container.NewHBox()
	if actions.CanEdit {
		editBtn := widget.NewButton("Edit Project", p.showEditDialog)
		editBtn.Importance = widget.HighImportance
		controls.Add(editBtn)
	}
	if actions.CanJoin || actions.JoinBlocked {
		joinBtn := widget.NewButton("Request to Join", p.showJoinDialog)
		joinBtn.Importance = widget.HighImportance
		if actions.JoinBlocked || p.joinInFlight {
			joinBtn.Disable()
		}
		controls.Add(joinBtn)
		if actions.JoinBlocked {
			full := widget.NewLabel("Team is full")
			full.Importance = widget.DangerImportance
			controls.Add(full)
		}
	}
	if actions.CanLeave {
		leaveBtn := widget.NewButton("Leave Project", func() {
			p.confirmRemoval(p.currentUserID(), "Leave project?",
				"Are you sure you want to leave this project?")
		})
		leaveBtn.Importance = widget.DangerImportance
		if p.removeInFlight {
			leaveBtn.Disable()
		}
		controls.Add(leaveBtn)
	}

	description := widget.NewLabel(project.Description)
	description.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		container.NewBorder(nil, nil, container.NewVBox(title, module), controls),
		statusLabel,
		widget.NewSeparator(),
		description,
		widget.NewLabel(techSummary(project)),
	)
}

func (p *projectDetailPage) statsSection(project *model.Project) fyne.CanvasObject {
	membersLabel := widget.NewLabel(fmt.Sprintf(MemberCountFormat, project.MemberCount(), project.MaxMembers))
	membersLabel.Importance = capacityImportance(project.FillPercent())

	var spots string
	if membership.IsFull(project) {
		spots = "Team is full"
	} else {
		spots = fmt.Sprintf("%d spots remaining", project.SpotsRemaining())
	}

	return container.NewHBox(
		widget.NewLabel("Members:"), membersLabel,
		widget.NewLabel(spots),
		widget.NewLabel("Created "+project.FormatCreatedAt()),
	)
}

func (p *projectDetailPage) membersSection(project *model.Project, actions membership.Actions) fyne.CanvasObject {
	rows := container.NewVBox(
		widget.NewLabelWithStyle("Team Members", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	for _, member := range project.ProjectMembers {
		name := widget.NewLabel(member.DisplayName())
		role := widget.NewLabel(member.Role.String())
		if member.Role.IsLeader() {
			role.Importance = widget.HighImportance
		}

		row := container.NewHBox(name, role)
		if actions.CanRemoveMembers && membership.CanRemove(project, p.currentUserID(), member.MemberID) {
			memberID := member.MemberID
			memberName := member.DisplayName()
			removeBtn := widget.NewButton("Remove", func() {
				p.confirmRemoval(memberID, "Remove member?",
					fmt.Sprintf("Remove %s from the project?", memberName))
			})
			removeBtn.Importance = widget.DangerImportance
			if p.removeInFlight {
				removeBtn.Disable()
			}
			row = container.NewBorder(nil, nil, container.NewHBox(name, role), removeBtn)
		}
		rows.Add(row)
	}

	return container.NewVBox(widget.NewSeparator(), rows)
}

func (p *projectDetailPage) requestsSection() fyne.CanvasObject {
	rows := container.NewVBox(
		widget.NewLabelWithStyle("Join Requests", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	if len(p.requests) == 0 {
		rows.Add(widget.NewLabel("No join requests yet."))
	}

	for _, request := range p.requests {
		message := widget.NewLabel(request.Message)
		message.Wrapping = fyne.TextWrapWord

		status := widget.NewLabel(request.Status.String())
		switch request.Status {
		case model.RequestStatusPending:
			status.Importance = widget.WarningImportance
		case model.RequestStatusApproved:
			status.Importance = widget.SuccessImportance
		case model.RequestStatusRejected:
			status.Importance = widget.DangerImportance
		}

		controls := container.NewHBox(status)
		if request.Status == model.RequestStatusPending {
			requestID := request.ID
			approveBtn := widget.NewButton("Approve", func() {
				p.resolveRequest(requestID, model.RequestStatusApproved)
			})
			approveBtn.Importance = widget.SuccessImportance
			rejectBtn := widget.NewButton("Reject", func() {
				p.resolveRequest(requestID, model.RequestStatusRejected)
			})
			rejectBtn.Importance = widget.DangerImportance
			if p.resolveInFlight {
				approveBtn.Disable()
				rejectBtn.Disable()
			}
			controls.Add(approveBtn)
			controls.Add(rejectBtn)
		}

		rows.Add(container.NewBorder(nil, nil, nil, controls,
			container.NewVBox(message, widget.NewLabel("Requested by user #"+strconv.FormatInt(request.UserID, 10))),
		))
	}

	return container.NewVBox(widget.NewSeparator(), rows)
}

// validateJoinMessage returns the validation text for a join-request
// message, or "" when the message is sendable. Whitespace-only messages
// are rejected here so no request ever reaches the network.
func validateJoinMessage(message string) string {
	if strings.TrimSpace(message) == "" {
		return "Please enter a message before sending the join request."
	}
	return ""
}

// applyResolution returns the request list with the matching entry
// transitioned to status. A failed call leaves the list untouched, so a
// rejected-by-server resolution never shows as resolved locally.
func applyResolution(requests []model.JoinRequest, requestID int64, status model.RequestStatus, succeeded bool, at time.Time) []model.JoinRequest {
	if !succeeded {
		return requests
	}
	for i, request := range requests {
		if request.ID == requestID {
			requests[i] = request.Resolve(status, at)
		}
	}
	return requests
}

// showJoinDialog opens the join-request form pre-filled with the default
// message. A whitespace-only message is rejected locally without any
// network call.
func (p *projectDetailPage) showJoinDialog() {
	messageEntry := widget.NewMultiLineEntry()
	messageEntry.SetText(p.ui.settings.GetDefaultJoinMessage())
	messageEntry.SetMinRowsVisible(3)

	validation := widget.NewLabel("")
	validation.Importance = widget.DangerImportance
	validation.Hide()

	form := container.NewVBox(
		widget.NewLabel("Message to the project leader:"),
		messageEntry,
		validation,
	)

	var d dialog.Dialog
	send := widget.NewButton("Send Request", func() {
		if text := validateJoinMessage(messageEntry.Text); text != "" {
			validation.SetText(text)
			validation.Show()
			return
		}
		d.Hide()
		p.sendJoinRequest(strings.TrimSpace(messageEntry.Text))
	})
	send.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() { d.Hide() })

	content := container.NewVBox(form, container.NewHBox(cancel, send))
	d = dialog.NewCustomWithoutButtons("Join "+p.project.Title, content, p.ui.window)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight/2))
	d.Show()
}

func (p *projectDetailPage) sendJoinRequest(message string) {
	p.joinInFlight = true
	p.render()

	req := service.JoinRequestCreate{
		ProjectID: p.projectID,
		UserID:    p.currentUserID(),
		Message:   message,
		Status:    model.RequestStatusPending,
	}

	go func() {
		result := p.ui.members.SendJoinRequest(context.Background(), req)
		p.ui.post(p.gen, func() {
			p.joinInFlight = false
			p.render()
			if !result.Success {
				p.ui.messages.ShowError("Error sending join request: " + result.Message)
				return
			}
			// Membership changes only once a leader approves; the project
			// entity stays as fetched.
			p.ui.messages.ShowSuccess("Join request sent successfully!")
		})
	}()
}

// resolveRequest approves or rejects a pending request. The local list
// entry transitions only when the server confirms the resolution.
func (p *projectDetailPage) resolveRequest(requestID int64, status model.RequestStatus) {
	p.resolveInFlight = true
	p.render()

	go func() {
		result := p.ui.members.ResolveJoinRequest(context.Background(), requestID, status)
		p.ui.post(p.gen, func() {
			p.resolveInFlight = false
			p.requests = applyResolution(p.requests, requestID, status, result.Success, time.Now())
			if !result.Success {
				p.render()
				p.ui.messages.ShowError("Error handling join request: " + result.Message)
				return
			}
			p.render()

			if status == model.RequestStatusApproved {
				// Approval grows the team server-side; refetch for the
				// authoritative member list.
				p.load()
				p.ui.messages.ShowSuccess("Join request approved.")
			} else {
				p.ui.messages.ShowSuccess("Join request rejected.")
			}
		})
	}()
}

// confirmRemoval asks before removing a member (or the current user, for
// leave) and only mutates local state once the server confirms.
func (p *projectDetailPage) confirmRemoval(userID int64, title, text string) {
	dialog.ShowConfirm(title, text, func(confirmed bool) {
		if !confirmed {
			return
		}
		p.removeMember(userID)
	}, p.ui.window)
}

func (p *projectDetailPage) removeMember(userID int64) {
	p.removeInFlight = true
	p.render()
	leaving := userID == p.currentUserID()

	go func() {
		result := p.ui.members.RemoveMember(context.Background(), p.projectID, userID)
		p.ui.post(p.gen, func() {
			p.removeInFlight = false
			if !result.Success {
				p.render()
				p.ui.messages.ShowError("Error removing member: " + result.Message)
				return
			}

			kept := p.project.ProjectMembers[:0]
			for _, member := range p.project.ProjectMembers {
				if member.MemberID != userID {
					kept = append(kept, member)
				}
			}
			p.project.ProjectMembers = kept
			p.render()

			if leaving {
				p.ui.messages.ShowSuccess("You have left the project.")
			} else {
				p.ui.messages.ShowSuccess("Member removed successfully!")
			}
		})
	}()
}

// showEditDialog opens the leader-only project edit form
func (p *projectDetailPage) showEditDialog() {
	project := p.project

	titleEntry := widget.NewEntry()
	titleEntry.SetText(project.Title)
	descriptionEntry := widget.NewMultiLineEntry()
	descriptionEntry.SetText(project.Description)
	descriptionEntry.SetMinRowsVisible(3)
	moduleCodeEntry := widget.NewEntry()
	moduleCodeEntry.SetText(project.ModuleCode)
	moduleNameEntry := widget.NewEntry()
	moduleNameEntry.SetText(project.ModuleName)

	frontendSelect := widget.NewSelect(config.FrontendTechnologyOptions(), nil)
	frontendSelect.SetSelected(project.FrontendTechnology)
	backendSelect := widget.NewSelect(config.BackendTechnologyOptions(), nil)
	backendSelect.SetSelected(project.BackendTechnology)

	maxMembersEntry := widget.NewEntry()
	maxMembersEntry.SetText(strconv.Itoa(project.MaxMembers))

	statusOptions := []string{}
	for _, status := range model.ProjectStatusOptions() {
		statusOptions = append(statusOptions, status.String())
	}
	statusSelect := widget.NewSelect(statusOptions, nil)
	statusSelect.SetSelected(project.Status.String())

	form := container.NewVBox(
		widget.NewLabel("Title"), titleEntry,
		widget.NewLabel("Description"), descriptionEntry,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("Module Code"), moduleCodeEntry),
			container.NewVBox(widget.NewLabel("Module Name"), moduleNameEntry),
		),
		container.NewGridWithColumns(2, frontendSelect, backendSelect),
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("Max Members"), maxMembersEntry),
			container.NewVBox(widget.NewLabel("Status"), statusSelect),
		),
	)

	dialog.ShowCustomConfirm("Edit Project", "Save", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}

		maxMembers, err := strconv.Atoi(strings.TrimSpace(maxMembersEntry.Text))
		if err != nil || maxMembers < 1 {
			p.ui.messages.ShowError("Max members must be a positive number.")
			return
		}

		update := service.ProjectUpdate{
			Title:              strings.TrimSpace(titleEntry.Text),
			Description:        strings.TrimSpace(descriptionEntry.Text),
			ModuleCode:         strings.TrimSpace(moduleCodeEntry.Text),
			ModuleName:         strings.TrimSpace(moduleNameEntry.Text),
			FrontendTechnology: frontendSelect.Selected,
			BackendTechnology:  backendSelect.Selected,
			MaxMembers:         maxMembers,
			Status:             model.ProjectStatus(statusSelect.Selected),
		}
		p.updateProject(update)
	}, p.ui.window)
}

func (p *projectDetailPage) updateProject(update service.ProjectUpdate) {
	go func() {
		result := p.ui.projects.Update(context.Background(), p.projectID, p.currentUserID(), update)
		p.ui.post(p.gen, func() {
			if !result.Success {
				p.ui.messages.ShowError("Error updating project: " + result.Message)
				return
			}
			project := result.Data
			p.project = &project
			p.render()
			p.ui.messages.ShowSuccess("Project updated successfully!")
		})
	}()
}
