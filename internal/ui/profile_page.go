package ui

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/model"
)

// profilePage lets the current user view and edit their profile. Edits
// are staged locally and pushed in one request; the session store only
// picks up the server's confirmed view of the profile.
type profilePage struct {
	ui  *RootUI
	gen int

	firstNameEntry    *widget.Entry
	lastNameEntry     *widget.Entry
	emailEntry        *widget.Entry
	specializationSel *widget.Select
	yearEntry         *widget.Entry
	semesterEntry     *widget.Entry
	bioEntry          *widget.Entry
	githubEntry       *widget.Entry
	linkedinEntry     *widget.Entry
	skillEntry        *widget.Entry
	skills            []string
	skillsBox         *fyne.Container
	saveBtn           *widget.Button
	cancelBtn         *widget.Button
}

func newProfilePage(ui *RootUI, gen int) *profilePage {
	p := &profilePage{ui: ui, gen: gen}

	p.firstNameEntry = widget.NewEntry()
	p.lastNameEntry = widget.NewEntry()
	p.emailEntry = widget.NewEntry()
	p.specializationSel = widget.NewSelect(config.SpecializationOptions(), nil)
	p.yearEntry = widget.NewEntry()
	p.semesterEntry = widget.NewEntry()
	p.bioEntry = widget.NewMultiLineEntry()
	p.bioEntry.SetMinRowsVisible(3)
	p.githubEntry = widget.NewEntry()
	p.githubEntry.SetPlaceHolder("https://github.com/username")
	p.linkedinEntry = widget.NewEntry()
	p.linkedinEntry.SetPlaceHolder("https://linkedin.com/in/username")

	p.skillEntry = widget.NewEntry()
	p.skillEntry.SetPlaceHolder("Add a skill")
	p.skillEntry.OnSubmitted = func(string) { p.addSkill() }
	p.skillsBox = container.NewVBox()

	p.saveBtn = widget.NewButton("Save Changes", p.save)
	p.saveBtn.Importance = widget.HighImportance
	p.cancelBtn = widget.NewButton("Cancel", p.reset)

	p.reset()
	return p
}

func (p *profilePage) build() fyne.CanvasObject {
	user := p.ui.store.User()
	if user == nil {
		return widget.NewLabel("Please log in to view your profile.")
	}

	heading := widget.NewLabelWithStyle(user.FullName(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	username := widget.NewLabel("@" + user.Username)
	username.Importance = widget.LowImportance

	addSkillBtn := widget.NewButton("Add", p.addSkill)

	form := container.NewVBox(
		heading,
		username,
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("First Name"), p.firstNameEntry),
			container.NewVBox(widget.NewLabel("Last Name"), p.lastNameEntry),
		),
		widget.NewLabel("Email"), p.emailEntry,
		widget.NewLabel("Specialization"), p.specializationSel,
		container.NewGridWithColumns(2,
			container.NewVBox(widget.NewLabel("Year"), p.yearEntry),
			container.NewVBox(widget.NewLabel("Semester"), p.semesterEntry),
		),
		widget.NewLabel("Bio"), p.bioEntry,
		widget.NewLabel("GitHub"), p.githubEntry,
		widget.NewLabel("LinkedIn"), p.linkedinEntry,
		widget.NewLabel("Skills"),
		container.NewBorder(nil, nil, nil, addSkillBtn, p.skillEntry),
		p.skillsBox,
		widget.NewSeparator(),
		container.NewHBox(p.cancelBtn, p.saveBtn),
	)

	return container.NewVScroll(container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMaxWidth, form.MinSize().Height), form,
	)))
}

// reset discards staged edits and reloads fields from the session store
func (p *profilePage) reset() {
	user := p.ui.store.User()
	if user == nil {
		return
	}

	p.firstNameEntry.SetText(user.FirstName)
	p.lastNameEntry.SetText(user.LastName)
	p.emailEntry.SetText(user.Email)
	p.specializationSel.SetSelected(user.Specialization)
	p.yearEntry.SetText(formatOrEmpty(user.Year))
	p.semesterEntry.SetText(formatOrEmpty(user.Semester))
	p.bioEntry.SetText(user.Bio)
	p.githubEntry.SetText(user.Github)
	p.linkedinEntry.SetText(user.Linkedin)

	p.skills = append([]string(nil), user.Skills...)
	p.skillEntry.SetText("")
	p.renderSkills()
}

func formatOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// addSkill stages a new skill, skipping blanks and duplicates
func (p *profilePage) addSkill() {
	skill := strings.TrimSpace(p.skillEntry.Text)
	if skill == "" {
		return
	}
	staged := model.UserProfile{Skills: p.skills}
	if staged.HasSkill(skill) {
		p.ui.messages.ShowError("Skill already added.")
		return
	}
	p.skills = append(p.skills, skill)
	p.skillEntry.SetText("")
	p.renderSkills()
}

func (p *profilePage) removeSkill(skill string) {
	kept := p.skills[:0]
	for _, s := range p.skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	p.skills = kept
	p.renderSkills()
}

func (p *profilePage) renderSkills() {
	p.skillsBox.RemoveAll()
	if len(p.skills) == 0 {
		empty := widget.NewLabel("No skills added yet.")
		empty.Importance = widget.LowImportance
		p.skillsBox.Add(empty)
	}
	for _, skill := range p.skills {
		skill := skill
		removeBtn := widget.NewButton(IconClose, func() { p.removeSkill(skill) })
		removeBtn.Importance = widget.LowImportance
		p.skillsBox.Add(container.NewBorder(nil, nil, widget.NewLabel(skill), removeBtn))
	}
	p.skillsBox.Refresh()
}

// save pushes the staged profile. The session's cached user updates only
// from the server's response, never from the staged values.
func (p *profilePage) save() {
	user := p.ui.store.User()
	if user == nil {
		return
	}

	year, err := parseOptionalInt(p.yearEntry.Text)
	if err != nil {
		p.ui.messages.ShowError("Year must be a number.")
		return
	}
	semester, err := parseOptionalInt(p.semesterEntry.Text)
	if err != nil {
		p.ui.messages.ShowError("Semester must be a number.")
		return
	}

	profile := *user
	profile.FirstName = strings.TrimSpace(p.firstNameEntry.Text)
	profile.LastName = strings.TrimSpace(p.lastNameEntry.Text)
	profile.Email = strings.TrimSpace(p.emailEntry.Text)
	profile.Specialization = p.specializationSel.Selected
	profile.Year = year
	profile.Semester = semester
	profile.Bio = strings.TrimSpace(p.bioEntry.Text)
	profile.Github = strings.TrimSpace(p.githubEntry.Text)
	profile.Linkedin = strings.TrimSpace(p.linkedinEntry.Text)
	profile.Skills = append([]string(nil), p.skills...)

	p.saveBtn.Disable()

	go func() {
		result := p.ui.users.UpdateProfile(context.Background(), profile)
		p.ui.post(p.gen, func() {
			p.saveBtn.Enable()
			if !result.Success {
				p.ui.messages.ShowError(profileErrorText(result.Status))
				return
			}
			if err := p.ui.store.UserUpdate(result.Data); err != nil {
				p.ui.messages.ShowError("Could not update the signed-in session: " + err.Error())
				return
			}
			p.reset()
			p.ui.messages.ShowSuccess("Profile updated successfully!")
		})
	}()
}

func parseOptionalInt(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	return strconv.Atoi(text)
}

func profileErrorText(status int) string {
	if status == http.StatusNotFound {
		return "User not found!"
	}
	return "Network Error! Try Again"
}
