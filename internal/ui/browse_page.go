package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
	"github.com/groupfinder/groupfinder-desktop/internal/service"
)

// browsePage is the filtered, paginated project listing. Filters and the
// page cursor live only in this page's view state; every change refetches
// from the server.
type browsePage struct {
	ui  *RootUI
	gen int

	courseEntry    *widget.Entry
	frontendSelect *widget.Select
	backendSelect  *widget.Select
	applyBtn       *widget.Button
	clearBtn       *widget.Button

	grid      *fyne.Container
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	pageLabel *widget.Label
	empty     *widget.Label

	page       int
	totalPages int
}

func newBrowsePage(ui *RootUI, gen int) *browsePage {
	p := &browsePage{ui: ui, gen: gen}

	p.courseEntry = widget.NewEntry()
	p.courseEntry.SetPlaceHolder("Module code, e.g. SE3040")
	p.frontendSelect = widget.NewSelect(config.FrontendTechnologyOptions(), nil)
	p.frontendSelect.PlaceHolder = "Any frontend"
	p.backendSelect = widget.NewSelect(config.BackendTechnologyOptions(), nil)
	p.backendSelect.PlaceHolder = "Any backend"

	p.applyBtn = widget.NewButton("Apply Filters", func() {
		p.page = 0
		p.load()
	})
	p.applyBtn.Importance = widget.HighImportance
	p.clearBtn = widget.NewButton("Clear", func() {
		p.courseEntry.SetText("")
		p.frontendSelect.ClearSelected()
		p.backendSelect.ClearSelected()
		p.page = 0
		p.load()
	})

	p.grid = container.NewGridWrap(fyne.NewSize(CardMinWidth, CardMinHeight))
	p.pageLabel = widget.NewLabel("")
	p.prevBtn = widget.NewButton("← Previous", func() { p.turn(-1) })
	p.nextBtn = widget.NewButton("Next →", func() { p.turn(1) })
	p.empty = widget.NewLabel("No projects match your filters yet. Try widening them.")
	p.empty.Hide()

	return p
}

func (p *browsePage) build() fyne.CanvasObject {
	filters := container.NewBorder(nil, nil, nil,
		container.NewHBox(p.applyBtn, p.clearBtn),
		container.NewGridWithColumns(3, p.courseEntry, p.frontendSelect, p.backendSelect),
	)

	pager := container.NewCenter(container.NewHBox(p.prevBtn, p.pageLabel, p.nextBtn))

	return container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Browse Projects", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			filters,
		),
		pager,
		nil, nil,
		container.NewVScroll(container.NewVBox(p.empty, p.grid)),
	)
}

func (p *browsePage) filter() service.Filter {
	return service.Filter{
		CourseID:           strings.TrimSpace(p.courseEntry.Text),
		FrontendTechnology: p.frontendSelect.Selected,
		BackendTechnology:  p.backendSelect.Selected,
		Page:               p.page,
		Size:               p.ui.settings.GetBrowsePageSize(),
	}
}

func (p *browsePage) turn(delta int) {
	next := p.page + delta
	if next < 0 || (p.totalPages > 0 && next >= p.totalPages) {
		return
	}
	p.page = next
	p.load()
}

// load fetches the current page. Pagination controls stay disabled while
// the request is in flight so a double-click cannot skip pages.
func (p *browsePage) load() {
	p.applyBtn.Disable()
	p.prevBtn.Disable()
	p.nextBtn.Disable()
	filter := p.filter()

	go func() {
		result := p.ui.projects.Filter(context.Background(), filter)
		p.ui.post(p.gen, func() {
			p.applyBtn.Enable()
			if !result.Success {
				p.updatePager()
				p.ui.messages.ShowError("Error fetching projects: " + result.Message)
				return
			}

			page := result.Data
			p.totalPages = page.TotalPages

			p.grid.RemoveAll()
			for _, project := range page.Content {
				id := project.ID
				p.grid.Add(newProjectCard(project, func() { p.ui.ShowProject(id) }))
			}
			if len(page.Content) == 0 {
				p.empty.Show()
			} else {
				p.empty.Hide()
			}
			p.grid.Refresh()
			p.updatePager()
		})
	}()
}

func (p *browsePage) updatePager() {
	total := p.totalPages
	if total < 1 {
		total = 1
	}
	p.pageLabel.SetText(fmt.Sprintf("Page %d of %d", p.page+1, total))

	if p.page > 0 {
		p.prevBtn.Enable()
	} else {
		p.prevBtn.Disable()
	}
	if p.page+1 < p.totalPages {
		p.nextBtn.Enable()
	} else {
		p.nextBtn.Disable()
	}
}
