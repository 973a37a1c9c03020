package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/config"
	"github.com/academia-admin/academia/internal/listing"
	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/navigation"
)

// screen is one routable view
type screen interface {
	Title() string
	Content() fyne.CanvasObject
	// Enter is called every time the route becomes current
	Enter(params navigation.Params)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          *zap.Logger

	client *api.Client
	nav    *navigation.Navigator

	// screens by route path; list screens survive a round trip to their form
	screens map[string]screen
	home    *homeScreen

	// background runs network work off the UI goroutine; onMain brings
	// results back to it
	background func(func())
	onMain     func(func())

	titleLabel  *widget.Label
	backBtn     *widget.Button
	settingsBtn *widget.Button
	body        *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, logger *zap.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		log:          logging.OrNop(logger).Named("ui"),
		nav:          navigation.NewNavigator(),
		screens:      make(map[string]screen),
		background:   func(fn func()) { go fn() },
		onMain:       fyne.Do,
	}

	ui.rebuildClient()

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.nav.SetChangeCallback(ui.onRouteChange)

	ui.setupUI()
	return ui
}

// rebuildClient creates the API client from the current settings. An
// invalid stored URL falls back to the platform default.
func (ui *RootUI) rebuildClient() {
	opts := api.Options{
		BaseURL: ui.settings.GetAPIBaseURL(),
		Timeout: ui.settings.GetRequestTimeout(),
		Logger:  ui.log,
	}
	client, err := api.NewClient(opts)
	if err != nil {
		ui.log.Warn("invalid API base URL, using default", zap.String("url", opts.BaseURL), zap.Error(err))
		opts.BaseURL = ""
		client, _ = api.NewClient(opts)
	}
	ui.client = client
	ui.log.Info("API client ready", zap.String("base_url", client.BaseURL()), zap.Duration("timeout", opts.Timeout))
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { ui.nav.Back() })
	ui.backBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, ui.backBtn, ui.settingsBtn, ui.titleLabel)

	ui.home = newHomeScreen(ui)
	ui.body = container.NewStack()

	ui.window.SetContent(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()), // top
		nil, // bottom
		nil, // left
		nil, // right
		ui.body,
	))

	ui.onRouteChange(ui.nav.Current())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.onRouteChange(ui.nav.Current())
}

// onRouteChange shows the screen of route. It runs on the UI goroutine.
func (ui *RootUI) onRouteChange(route navigation.Route) {
	var current screen = ui.home
	if route.Path != navigation.HomeRoute {
		s, ok := ui.screens[route.Path]
		if !ok {
			ui.log.Warn("no screen for route", zap.String("path", route.Path))
			ui.nav.Back()
			return
		}
		current = s
	}

	ui.titleLabel.SetText(current.Title())
	if ui.nav.Depth() > 1 {
		ui.backBtn.Show()
	} else {
		ui.backBtn.Hide()
	}

	ui.body.Objects = []fyne.CanvasObject{current.Content()}
	ui.body.Refresh()
	current.Enter(route.Params)
}

// openList mounts a fresh list screen for d and navigates to it
func (ui *RootUI) openList(d catalog.Descriptor) {
	meta := d.Meta()
	coll := d.NewCollection(ui.client,
		listing.WithLogger(ui.log),
		listing.WithRefetchAfterSave(ui.settings.GetRefetchAfterSave()))

	ls := newListScreen(ui, d, coll)
	ui.screens[meta.ListRoute()] = ls
	ui.nav.Push(meta.ListRoute(), nil)
	ls.load()
}

// openForm mounts a form screen for d. params carry the edited record, if any.
func (ui *RootUI) openForm(d catalog.Descriptor, params navigation.Params) {
	meta := d.Meta()
	fs := newFormScreen(ui, d, d.NewSaver(ui.client, ui.log), params)
	ui.screens[meta.FormRoute()] = fs
	ui.nav.Push(meta.FormRoute(), params)
}

// finishForm returns from a saved form to its list, handing back the result
func (ui *RootUI) finishForm(meta catalog.Meta, result navigation.Params) {
	delete(ui.screens, meta.FormRoute())
	ui.nav.Replace(meta.ListRoute(), result)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies new settings: the client is rebuilt and every
// mounted screen is dropped since it holds the old client.
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.rebuildClient()
	ui.screens = make(map[string]screen)
	ui.nav.Reset()
}

// Navigator exposes the route stack
func (ui *RootUI) Navigator() *navigation.Navigator {
	return ui.nav
}
