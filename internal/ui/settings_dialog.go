package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiURLEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	refetchCheck   *widget.Check
	logLevelSelect *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Backend address
	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(api.DefaultBaseURL)

	// Request timeout
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0-300")

	sd.refetchCheck = widget.NewCheck(loc.GetText(KeyRefetchAfterSave), nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyAPIBaseURL)+":"),
		sd.apiURLEntry,

		widget.NewLabel(loc.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		sd.refetchCheck,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.refetchCheck.SetChecked(sd.settings.GetRefetchAfterSave())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// apply validates the inputs and stores them. Nothing is stored when an
// input is invalid.
func (sd *SettingsDialog) apply() error {
	baseURL, err := api.ValidateBaseURL(sd.apiURLEntry.Text)
	if err != nil {
		return errors.New(sd.localization.GetText(KeyInvalidURL) + ": " + err.Error())
	}

	timeout := sd.settings.GetRequestTimeoutSeconds()
	if text := strings.TrimSpace(sd.timeoutEntry.Text); text != "" {
		timeout, err = strconv.Atoi(text)
		if err != nil {
			return errors.New(sd.localization.GetText(KeyInvalidTimeout))
		}
	}

	sd.settings.SetAPIBaseURL(baseURL)
	sd.settings.SetRequestTimeoutSeconds(timeout)
	sd.settings.SetRefetchAfterSave(sd.refetchCheck.Checked)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
