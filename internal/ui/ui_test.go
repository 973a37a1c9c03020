package ui

import (
	"context"
	"image/color"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/mockapi"
	"github.com/academia-admin/academia/internal/navigation"
)

func newTestRoot(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")
	return NewRootUI(window, app, nil)
}

// useBackend points root at an in-process backend
func useBackend(t *testing.T, root *RootUI, seed bool) {
	t.Helper()
	backend := mockapi.New(nil)
	if seed {
		if err := backend.Seed(); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	root.client = client
}

// runInline makes background work and UI callbacks run on the caller
func runInline(root *RootUI) {
	root.background = func(f func()) { f() }
	root.onMain = func(f func()) { f() }
}

func hasRow(rows []catalog.Row, title string) bool {
	for _, row := range rows {
		if row.Title == title {
			return true
		}
	}
	return false
}

// fakeSaver records submits
type fakeSaver struct {
	mu    sync.Mutex
	calls int
	busy  bool
}

func (f *fakeSaver) Submit(context.Context, int64, form.Values) (navigation.Params, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return navigation.Params{}, nil
}

func (f *fakeSaver) Busy() bool { return f.busy }

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText(KeyHomeTitle); got != "Gestión de Entidades" {
		t.Errorf("Expected Spanish home title, got %q", got)
	}

	l.SetLanguage("en")
	if got := l.GetText(KeyHomeTitle); got != "Entity Management" {
		t.Errorf("Expected English home title, got %q", got)
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "es" {
		t.Errorf("Expected system language to map to es, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "es" {
		t.Error("Unknown language should be ignored")
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestRootStartsOnHome(t *testing.T) {
	root := newTestRoot(t)

	if root.titleLabel.Text != "Gestión de Entidades" {
		t.Errorf("Expected home title, got %q", root.titleLabel.Text)
	}
	if root.backBtn.Visible() {
		t.Error("Back button should be hidden on home")
	}
	if n := root.home.list.Length(); n != 11 {
		t.Errorf("Expected 11 entities, got %d", n)
	}
}

func TestListScreenShowsRecords(t *testing.T) {
	root := newTestRoot(t)
	useBackend(t, root, true)

	coll := catalog.Facultades.NewCollection(root.client)
	ls := newListScreen(root, catalog.Facultades, coll)

	if !ls.loadingView.Visible() {
		t.Error("Loading view should be visible before the first load")
	}

	if err := coll.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	ls.refresh()

	if !ls.listView.Visible() || ls.emptyView.Visible() {
		t.Fatal("List view should be the only visible view")
	}
	if len(ls.rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ls.rows))
	}
	if ls.rows[0].Title != "Ingeniería" || ls.rows[0].Subtitle != "ingenieria@unah.edu" {
		t.Errorf("Unexpected first row %+v", ls.rows[0])
	}

	ls.query = "medicas"
	ls.refresh()
	if len(ls.rows) != 1 || ls.rows[0].Title != "Ciencias Médicas" {
		t.Errorf("Expected accent-insensitive match, got %+v", ls.rows)
	}

	ls.query = "zzz"
	ls.refresh()
	if !ls.noMatches.Visible() {
		t.Error("No matches label should be visible")
	}
}

func TestListScreenEmpty(t *testing.T) {
	root := newTestRoot(t)
	useBackend(t, root, false)

	coll := catalog.Municipios.NewCollection(root.client)
	ls := newListScreen(root, catalog.Municipios, coll)
	if err := coll.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	ls.refresh()

	if !ls.emptyView.Visible() || ls.listView.Visible() {
		t.Error("Empty view should be the only visible view")
	}
}

func TestListScreenLoadFailure(t *testing.T) {
	root := newTestRoot(t)
	srv := httptest.NewServer(mockapi.New(nil).Handler())
	client, err := api.NewClient(api.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	srv.Close()

	coll := catalog.Carreras.NewCollection(client)
	ls := newListScreen(root, catalog.Carreras, coll)
	if err := coll.Load(context.Background()); err == nil {
		t.Fatal("Expected load to fail against a closed server")
	}
	ls.refresh()

	if !ls.errorView.Visible() {
		t.Fatal("Error view should be visible")
	}
	if !strings.HasPrefix(ls.errorLabel.Text, ErrorPrefix) {
		t.Errorf("Error text should start with %q, got %q", ErrorPrefix, ls.errorLabel.Text)
	}
}

func TestFormScreenPrefillAndValidation(t *testing.T) {
	root := newTestRoot(t)
	saver := &fakeSaver{}
	params := navigation.Edit("Facultad", "1", []byte(`{"facultadid":1,"nombre":"Ingeniería","correo":"fi@unah.edu"}`))

	fs := newFormScreen(root, catalog.Facultades, saver, params)

	if fs.key != 1 {
		t.Errorf("Expected key 1, got %d", fs.key)
	}
	if fs.Title() != "Editar Facultad" {
		t.Errorf("Unexpected title %q", fs.Title())
	}
	if fs.entries["nombre"].Text != "Ingeniería" {
		t.Errorf("Expected nombre pre-filled, got %q", fs.entries["nombre"].Text)
	}

	fs.entries["nombre"].SetText("")
	fs.entries["correo"].SetText("no-es-correo")
	fs.onSave()

	if saver.calls != 0 {
		t.Error("Invalid form must not be submitted")
	}
	if fs.errLabels["nombre"].Text != "El nombre es obligatorio." {
		t.Errorf("Unexpected nombre error %q", fs.errLabels["nombre"].Text)
	}
	if fs.errLabels["correo"].Text != "El formato del correo no es válido." {
		t.Errorf("Unexpected correo error %q", fs.errLabels["correo"].Text)
	}
	if fs.formError.Text != form.FormErrorMessage {
		t.Errorf("Unexpected form error %q", fs.formError.Text)
	}

	fs.entries["nombre"].SetText("Ingeniería")
	if fs.errLabels["nombre"].Visible() {
		t.Error("Editing a field should clear its error")
	}
}

func TestFormScreenNewTitle(t *testing.T) {
	root := newTestRoot(t)
	fs := newFormScreen(root, catalog.Departamentos, &fakeSaver{}, nil)

	if fs.key != 0 {
		t.Errorf("Expected no key, got %d", fs.key)
	}
	if fs.Title() != "Nuevo Departamento" {
		t.Errorf("Unexpected title %q", fs.Title())
	}
}

func TestFormScreenBusyIgnoresSave(t *testing.T) {
	root := newTestRoot(t)
	saver := &fakeSaver{busy: true}
	fs := newFormScreen(root, catalog.Departamentos, saver, nil)

	fs.entries["nombre"].SetText("Olancho")
	fs.onSave()

	if fs.formError.Visible() {
		t.Error("A busy saver should leave the form untouched")
	}
}

func TestFormScreenFinish(t *testing.T) {
	root := newTestRoot(t)
	runInline(root)
	useBackend(t, root, true)
	meta := catalog.Departamentos.Meta()

	root.openList(catalog.Departamentos)
	root.openForm(catalog.Departamentos, nil)
	fs := root.screens[meta.FormRoute()].(*formScreen)

	fs.setSaving(true)
	if !fs.saveBtn.Disabled() || fs.saveBtn.Text != "Guardando..." {
		t.Error("Save button should be disabled while saving")
	}

	failure := &api.StatusError{StatusCode: 500, Body: "fallo"}
	fs.finish(nil, failure)
	if fs.saveBtn.Disabled() {
		t.Error("Save button should be enabled after a failure")
	}
	if fs.formError.Text != "Error HTTP: 500 - fallo" {
		t.Errorf("Unexpected form error %q", fs.formError.Text)
	}
	if root.nav.Current().Path != meta.FormRoute() {
		t.Error("A failed save should stay on the form")
	}

	result := navigation.Result(meta.Base, navigation.MutationNew, []byte(`{"departamentoid":9,"nombre":"Atlántida"}`))
	fs.finish(result, nil)

	current := root.nav.Current()
	if current.Path != meta.ListRoute() {
		t.Fatalf("Expected list route, got %s", current.Path)
	}
	if current.Params["newDepartamento"] == "" {
		t.Error("Expected the created record to be handed back")
	}
	if root.nav.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", root.nav.Depth())
	}
	if _, ok := root.screens[meta.FormRoute()]; ok {
		t.Error("Form screen should be unmounted after saving")
	}
	ls := root.screens[meta.ListRoute()].(*listScreen)
	if !hasRow(ls.rows, "Atlántida") {
		t.Errorf("Expected the handed back record in the list, got %+v", ls.rows)
	}
}

func TestFormScreenInFlightKeepsSaving(t *testing.T) {
	root := newTestRoot(t)
	fs := newFormScreen(root, catalog.Departamentos, &fakeSaver{}, nil)

	fs.setSaving(true)
	fs.finish(nil, form.ErrInFlight)

	if !fs.saveBtn.Disabled() {
		t.Error("Save button should stay disabled while another request is in flight")
	}
	if fs.formError.Visible() {
		t.Error("An in-flight rejection should not show an error")
	}
}

func TestSaveFromFormAppearsInList(t *testing.T) {
	root := newTestRoot(t)
	runInline(root)
	useBackend(t, root, true)
	meta := catalog.Departamentos.Meta()

	root.openList(catalog.Departamentos)
	ls := root.screens[meta.ListRoute()].(*listScreen)
	if len(ls.rows) != 2 {
		t.Fatalf("Expected 2 seeded rows, got %d", len(ls.rows))
	}

	root.openForm(catalog.Departamentos, nil)
	fs := root.screens[meta.FormRoute()].(*formScreen)
	fs.entries["nombre"].SetText("Olancho")
	fs.onSave()

	if root.nav.Current().Path != meta.ListRoute() {
		t.Fatalf("Expected to be back on the list, got %s", root.nav.Current().Path)
	}
	if len(ls.rows) != 3 || !hasRow(ls.rows, "Olancho") {
		t.Errorf("Expected the new record in the list, got %+v", ls.rows)
	}
	if !ls.listView.Visible() {
		t.Error("List view should be visible")
	}
}

func TestListScreenDeleteFailureShowsAlert(t *testing.T) {
	root := newTestRoot(t)
	runInline(root)
	useBackend(t, root, true)
	meta := catalog.Departamentos.Meta()

	root.openList(catalog.Departamentos)
	ls := root.screens[meta.ListRoute()].(*listScreen)
	if root.window.Canvas().Overlays().Top() != nil {
		t.Fatal("No dialog expected before deleting")
	}

	ls.delete(catalog.Row{Key: 99, Title: "Inexistente"})

	if root.window.Canvas().Overlays().Top() == nil {
		t.Error("Expected a failure alert after a rejected delete")
	}
	if len(ls.rows) != 2 {
		t.Errorf("A failed delete must keep the rows, got %d", len(ls.rows))
	}
}

func TestListScreenDeleteRemovesRow(t *testing.T) {
	root := newTestRoot(t)
	runInline(root)
	useBackend(t, root, true)
	meta := catalog.Departamentos.Meta()

	root.openList(catalog.Departamentos)
	ls := root.screens[meta.ListRoute()].(*listScreen)
	first := ls.rows[0]

	ls.delete(first)

	if len(ls.rows) != 1 || hasRow(ls.rows, first.Title) {
		t.Errorf("Expected %q to be removed, got %+v", first.Title, ls.rows)
	}
	if root.window.Canvas().Overlays().Top() != nil {
		t.Error("A successful delete should not show an alert")
	}
}

func TestButtonsOfUnwrapsTouchTargets(t *testing.T) {
	edit := widget.NewButton("edit", nil)
	del := widget.NewButton("delete", nil)
	padded := container.NewStack(canvas.NewRectangle(color.Transparent), del)
	row := container.NewBorder(nil, nil, nil, container.NewHBox(edit, padded), widget.NewLabel(""))

	buttons := buttonsOf(row)
	if len(buttons) != 2 || buttons[0] != edit || buttons[1] != del {
		t.Errorf("Expected edit then delete, got %v", buttons)
	}
}

func TestSettingsDialogApply(t *testing.T) {
	root := newTestRoot(t)
	sd := NewSettingsDialog(root.settings, root.localization, root.window, nil)
	sd.loadCurrentSettings()

	sd.apiURLEntry.SetText("ftp://backend")
	if err := sd.apply(); err == nil {
		t.Error("Expected invalid URL to be rejected")
	}

	sd.apiURLEntry.SetText("http://192.168.0.10:8000/")
	sd.timeoutEntry.SetText("abc")
	if err := sd.apply(); err == nil || !strings.Contains(err.Error(), "número") {
		t.Errorf("Expected timeout error, got %v", err)
	}

	sd.timeoutEntry.SetText("30")
	sd.refetchCheck.SetChecked(true)
	if err := sd.apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := root.settings.GetAPIBaseURL(); got != "http://192.168.0.10:8000" {
		t.Errorf("Unexpected stored URL %q", got)
	}
	if root.settings.GetRequestTimeoutSeconds() != 30 {
		t.Error("Expected timeout 30")
	}
	if !root.settings.GetRefetchAfterSave() {
		t.Error("Expected refetch enabled")
	}
}

func TestSettingsSavedResetsNavigation(t *testing.T) {
	root := newTestRoot(t)
	meta := catalog.Titulos.Meta()
	root.screens[meta.ListRoute()] = newFormScreen(root, catalog.Titulos, &fakeSaver{}, nil)
	root.nav.Push(meta.ListRoute(), nil)

	root.onSettingsSaved()

	if root.nav.Depth() != 1 || len(root.screens) != 0 {
		t.Error("Saving settings should return home and drop mounted screens")
	}
	if root.titleLabel.Text != root.localization.GetText(KeyHomeTitle) {
		t.Errorf("Unexpected title %q", root.titleLabel.Text)
	}
}
