package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/navigation"
)

// formScreen creates or edits one record
type formScreen struct {
	root  *RootUI
	meta  catalog.Meta
	saver catalog.Saver
	log   *zap.Logger

	// key is the server id of the edited record, 0 when creating
	key int64

	entries   map[string]*widget.Entry
	errLabels map[string]*widget.Label
	formError *widget.Label
	saveBtn   *widget.Button
	content   fyne.CanvasObject
}

func newFormScreen(root *RootUI, d catalog.Descriptor, saver catalog.Saver, params navigation.Params) *formScreen {
	meta := d.Meta()
	s := &formScreen{
		root:      root,
		meta:      meta,
		saver:     saver,
		log:       root.log.With(zap.String("entity", meta.Path)),
		entries:   make(map[string]*widget.Entry, len(meta.Fields)),
		errLabels: make(map[string]*widget.Label, len(meta.Fields)),
	}

	var initial form.Values
	if _, data, ok := params.Editing(meta.Base); ok {
		s.key = meta.KeyOf([]byte(data))
		values, err := form.Decode(meta.Fields, []byte(data))
		if err != nil {
			s.log.Warn("cannot pre-fill form", zap.Error(err))
		}
		initial = values
	}

	s.build(initial)
	return s
}

func (s *formScreen) build(initial form.Values) {
	loc := s.root.localization
	rows := container.NewVBox()

	for _, f := range s.meta.Fields {
		label := f.Label
		if f.Required {
			label += " " + IconRequired
		}

		entry := s.root.mobile.CreateMobileEntry(f.Placeholder, f.Kind == form.KindMultiline)
		entry.SetText(initial[f.Name])

		errLabel := widget.NewLabel("")
		errLabel.Importance = widget.DangerImportance
		errLabel.Wrapping = fyne.TextWrapWord
		errLabel.Hide()

		name := f.Name
		entry.OnChanged = func(string) { s.clearError(name) }

		s.entries[f.Name] = entry
		s.errLabels[f.Name] = errLabel
		rows.Add(widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		rows.Add(entry)
		rows.Add(errLabel)
	}

	s.formError = widget.NewLabel("")
	s.formError.Importance = widget.DangerImportance
	s.formError.Wrapping = fyne.TextWrapWord
	s.formError.Hide()

	s.saveBtn = s.root.mobile.CreateMobileButton(loc.GetText(KeySave), theme.DocumentSaveIcon(), s.onSave)
	s.saveBtn.Importance = widget.HighImportance

	hint := widget.NewLabel(loc.GetText(KeyRequired))
	hint.Importance = widget.LowImportance

	rows.Add(s.formError)
	rows.Add(s.saveBtn)
	rows.Add(hint)

	s.content = container.NewVScroll(container.NewPadded(rows))
}

func (s *formScreen) Title() string {
	return s.meta.FormTitle(s.key != 0)
}

func (s *formScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *formScreen) Enter(navigation.Params) {}

// values reads the current entry texts
func (s *formScreen) values() form.Values {
	values := make(form.Values, len(s.entries))
	for name, entry := range s.entries {
		values[name] = entry.Text
	}
	return values
}

func (s *formScreen) clearError(name string) {
	if l, ok := s.errLabels[name]; ok {
		l.SetText("")
		l.Hide()
	}
}

func (s *formScreen) showErrors(errs form.Errors) {
	for name, l := range s.errLabels {
		if msg, ok := errs[name]; ok {
			l.SetText(msg)
			l.Show()
		} else {
			l.SetText("")
			l.Hide()
		}
	}
}

func (s *formScreen) setFormError(msg string) {
	s.formError.SetText(msg)
	if msg == "" {
		s.formError.Hide()
	} else {
		s.formError.Show()
	}
}

func (s *formScreen) setSaving(saving bool) {
	if saving {
		s.saveBtn.SetText(s.root.localization.GetText(KeySaving))
		s.saveBtn.Disable()
		return
	}
	s.saveBtn.SetText(s.root.localization.GetText(KeySave))
	s.saveBtn.Enable()
}

// onSave validates on the UI goroutine and sends the request in the
// background. Nothing is sent while a previous save is in flight.
func (s *formScreen) onSave() {
	if s.saver.Busy() {
		return
	}

	values := s.values()
	if errs := form.Validate(s.meta.Fields, values); len(errs) > 0 {
		s.showErrors(errs)
		s.setFormError(form.FormErrorMessage)
		return
	}
	s.showErrors(nil)
	s.setFormError("")
	s.setSaving(true)

	s.root.background(func() {
		result, err := s.saver.Submit(context.Background(), s.key, values)
		s.root.onMain(func() { s.finish(result, err) })
	})
}

// finish handles the outcome of a submit. ErrInFlight means another request
// still owns the button, so the saving state is left alone.
func (s *formScreen) finish(result navigation.Params, err error) {
	var verr *form.ValidationError
	switch {
	case errors.Is(err, form.ErrInFlight):
		return
	case err == nil:
		s.setSaving(false)
		s.root.finishForm(s.meta, result)
	case errors.As(err, &verr):
		s.setSaving(false)
		s.showErrors(verr.Errors)
		s.setFormError(form.FormErrorMessage)
	default:
		s.setSaving(false)
		s.setFormError(err.Error())
		dialog.ShowError(err, s.root.window)
	}
}
