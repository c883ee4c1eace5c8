package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Messages renders transient error/success banners above the page
// content. Banners dismiss themselves after MessageAutoHide or on the
// close button; several may stack when actions fail in quick succession.
type Messages struct {
	box *fyne.Container
}

// NewMessages creates an empty banner area
func NewMessages() *Messages {
	return &Messages{box: container.NewVBox()}
}

// Container returns the banner area for embedding in the page layout
func (m *Messages) Container() *fyne.Container {
	return m.box
}

// ShowError displays a transient error banner. Must be called on the UI
// thread.
func (m *Messages) ShowError(text string) {
	m.show("❌ "+text, widget.DangerImportance)
}

// ShowSuccess displays a transient success banner. Must be called on the
// UI thread.
func (m *Messages) ShowSuccess(text string) {
	m.show("✅ "+text, widget.SuccessImportance)
}

// Clear removes all visible banners
func (m *Messages) Clear() {
	m.box.RemoveAll()
	m.box.Refresh()
}

func (m *Messages) show(text string, importance widget.Importance) {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance

	var banner *fyne.Container
	closeBtn := widget.NewButton(IconClose, func() {
		m.box.Remove(banner)
		m.box.Refresh()
	})
	closeBtn.Importance = widget.LowImportance

	banner = container.NewBorder(nil, nil, nil, closeBtn, label)
	m.box.Add(banner)
	m.box.Refresh()

	time.AfterFunc(MessageAutoHide, func() {
		fyne.Do(func() {
			m.box.Remove(banner)
			m.box.Refresh()
		})
	})
}
