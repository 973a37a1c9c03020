package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, icon fyne.Resource, onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon(text, icon, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileRowButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates an entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string, multiline bool) *widget.Entry {
	var entry *widget.Entry
	if multiline {
		entry = widget.NewMultiLineEntry()
		entry.SetMinRowsVisible(MultilineEntryRows)
		entry.Wrapping = fyne.TextWrapWord
	} else {
		entry = widget.NewEntry()
	}
	entry.SetPlaceHolder(placeholder)
	return entry
}

// TouchTarget pads obj to the minimum touch target height on mobile devices
func (m *MobileUI) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return obj
	}
	target := canvas.NewRectangle(color.Transparent)
	target.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	return container.NewStack(target, obj)
}
