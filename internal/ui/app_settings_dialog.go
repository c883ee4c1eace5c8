package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/groupfinder/groupfinder-desktop/internal/config"
)

// AppSettingsDialog edits the client's local preferences. The API base
// URL takes effect on the next launch; the rest applies immediately.
type AppSettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	baseURLEntry     *widget.Entry
	pageSizeEntry    *widget.Entry
	joinMessageEntry *widget.Entry
}

// NewAppSettingsDialog creates the settings dialog
func NewAppSettingsDialog(settings *config.Settings, window fyne.Window) *AppSettingsDialog {
	sd := &AppSettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog with current values loaded
func (sd *AppSettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *AppSettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder("1-50")

	sd.joinMessageEntry = widget.NewMultiLineEntry()
	sd.joinMessageEntry.SetMinRowsVisible(2)
	sd.joinMessageEntry.SetPlaceHolder(config.DefaultJoinMessage)

	form := container.NewVBox(
		widget.NewLabel("Connection"),
		widget.NewSeparator(),

		widget.NewLabel("API Base URL (restart to apply):"),
		sd.baseURLEntry,

		widget.NewSeparator(),
		widget.NewLabel("Browsing"),
		widget.NewSeparator(),

		widget.NewLabel("Projects per page:"),
		sd.pageSizeEntry,

		widget.NewLabel("Default join request message:"),
		sd.joinMessageEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight*0.8))
}

func (sd *AppSettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetBrowsePageSize()))
	sd.joinMessageEntry.SetText(sd.settings.GetDefaultJoinMessage())
}

func (sd *AppSettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if url := sd.baseURLEntry.Text; url != "" {
		sd.settings.SetAPIBaseURL(url)
	}

	if sizeStr := sd.pageSizeEntry.Text; sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			sd.settings.SetBrowsePageSize(size)
		}
	}

	if message := sd.joinMessageEntry.Text; message != "" {
		sd.settings.SetDefaultJoinMessage(message)
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
