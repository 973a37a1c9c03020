package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/model"
	"github.com/academia-admin/academia/internal/navigation"
)

// listScreen shows the records of one entity
type listScreen struct {
	root *RootUI
	desc catalog.Descriptor
	meta catalog.Meta
	coll catalog.Collection
	log  *zap.Logger

	mu    sync.Mutex
	query string
	rows  []catalog.Row
	timer *time.Timer

	// views, one visible at a time
	loadingView *fyne.Container
	errorView   *fyne.Container
	emptyView   *fyne.Container
	listView    *fyne.Container

	errorLabel  *widget.Label
	noMatches   *widget.Label
	searchEntry *widget.Entry
	list        *widget.List
	content     *fyne.Container
}

func newListScreen(root *RootUI, d catalog.Descriptor, coll catalog.Collection) *listScreen {
	meta := d.Meta()
	s := &listScreen{
		root: root,
		desc: d,
		meta: meta,
		coll: coll,
		log:  root.log.With(zap.String("entity", meta.Path)),
	}
	s.build()

	coll.SetUpdateCallback(func() {
		root.onMain(s.refresh)
	})
	return s
}

func (s *listScreen) build() {
	loc := s.root.localization

	spinner := widget.NewProgressBarInfinite()
	s.loadingView = container.NewCenter(container.NewVBox(
		spinner,
		widget.NewLabelWithStyle(s.meta.LoadingText(), fyne.TextAlignCenter, fyne.TextStyle{}),
	))

	s.errorLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Importance = widget.DangerImportance
	retry := s.root.mobile.CreateMobileButton(loc.GetText(KeyRetry), theme.ViewRefreshIcon(), s.load)
	s.errorView = container.NewCenter(container.NewVBox(s.errorLabel, retry))

	addFirst := s.root.mobile.CreateMobileButton(s.meta.AddFirstText(), theme.ContentAddIcon(), s.onAdd)
	addFirst.Importance = widget.HighImportance
	s.emptyView = container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(s.meta.EmptyText(), fyne.TextAlignCenter, fyne.TextStyle{}),
		addFirst,
	))

	s.searchEntry = s.root.mobile.CreateMobileEntry(loc.GetText(KeySearch), false)
	s.searchEntry.OnChanged = s.onSearchChanged

	add := s.root.mobile.CreateMobileButton(s.meta.AddText(), theme.ContentAddIcon(), s.onAdd)
	add.Importance = widget.HighImportance

	s.noMatches = widget.NewLabelWithStyle(loc.GetText(KeyNoMatches), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.noMatches.Hide()

	s.list = widget.NewList(
		func() int {
			s.mu.Lock()
			defer s.mu.Unlock()
			return len(s.rows)
		},
		s.createRow,
		s.updateRow,
	)

	s.listView = container.NewBorder(
		container.NewVBox(s.searchEntry, add), // top
		nil,                                   // bottom
		nil,                                   // left
		nil,                                   // right
		container.NewStack(s.list, container.NewCenter(s.noMatches)),
	)

	s.content = container.NewStack(s.loadingView, s.errorView, s.emptyView, s.listView)
	s.refresh()
}

// createRow builds a row template: title and subtitle on the left, edit
// and delete buttons on the right.
func (s *listScreen) createRow() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis
	subtitle := widget.NewLabel("")
	subtitle.Truncation = fyne.TextTruncateEllipsis
	subtitle.Importance = widget.LowImportance

	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
	edit.Importance = widget.LowImportance
	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	del.Importance = widget.DangerImportance

	// center object first
	return container.NewBorder(nil, nil, nil,
		container.NewHBox(s.root.mobile.TouchTarget(edit), s.root.mobile.TouchTarget(del)),
		container.NewVBox(title, subtitle),
	)
}

// buttonsOf collects the buttons below obj in layout order
func buttonsOf(obj fyne.CanvasObject) []*widget.Button {
	switch o := obj.(type) {
	case *widget.Button:
		return []*widget.Button{o}
	case *fyne.Container:
		var found []*widget.Button
		for _, child := range o.Objects {
			found = append(found, buttonsOf(child)...)
		}
		return found
	}
	return nil
}

func (s *listScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := s.rowAt(id)
	if !ok {
		return
	}

	c := obj.(*fyne.Container)
	texts := c.Objects[0].(*fyne.Container)
	buttons := c.Objects[1].(*fyne.Container)

	texts.Objects[0].(*widget.Label).SetText(row.Title)
	subtitle := texts.Objects[1].(*widget.Label)
	subtitle.SetText(row.Subtitle)
	if row.Subtitle == "" {
		subtitle.Hide()
	} else {
		subtitle.Show()
	}

	if btns := buttonsOf(buttons); len(btns) == 2 {
		btns[0].OnTapped = func() { s.onEdit(row) }
		btns[1].OnTapped = func() { s.onDelete(row) }
	}
}

func (s *listScreen) rowAt(id widget.ListItemID) (catalog.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.rows) {
		return catalog.Row{}, false
	}
	return s.rows[id], true
}

func (s *listScreen) Title() string {
	return s.meta.Name
}

func (s *listScreen) Content() fyne.CanvasObject {
	return s.content
}

// Enter applies the parameters a form hands back on return.
func (s *listScreen) Enter(params navigation.Params) {
	if len(params) == 0 {
		return
	}
	s.root.background(func() {
		if err := s.coll.Sync(context.Background(), params); err != nil {
			s.log.Warn("refetch after save failed", zap.Error(err))
		}
	})
}

// load fetches the collection in the background
func (s *listScreen) load() {
	if s.coll.State().IsActive() {
		return
	}
	s.root.background(func() {
		if err := s.coll.Load(context.Background()); err != nil {
			s.log.Warn("load failed", zap.Error(err))
		}
	})
}

// refresh redraws the screen from the collection state. It runs on the UI goroutine.
func (s *listScreen) refresh() {
	s.mu.Lock()
	s.rows = s.coll.Rows(s.query)
	filtered := s.query != ""
	matched := len(s.rows)
	s.mu.Unlock()

	var visible fyne.CanvasObject
	switch state := s.coll.State(); {
	case state == model.LoadStateFailed:
		msg := s.meta.LoadFailedText()
		if err := s.coll.Err(); err != nil {
			msg = err.Error()
		}
		s.errorLabel.SetText(ErrorPrefix + msg)
		visible = s.errorView
	case !state.IsFinished() && s.coll.Len() == 0:
		visible = s.loadingView
	case s.coll.Empty():
		visible = s.emptyView
	default:
		visible = s.listView
	}

	for _, view := range []fyne.CanvasObject{s.loadingView, s.errorView, s.emptyView, s.listView} {
		if view == visible {
			view.Show()
		} else {
			view.Hide()
		}
	}

	if filtered && matched == 0 {
		s.noMatches.Show()
	} else {
		s.noMatches.Hide()
	}
	s.list.Refresh()
}

// onSearchChanged debounces the filter while typing
func (s *listScreen) onSearchChanged(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(SearchDebounce, func() {
		s.mu.Lock()
		s.query = text
		s.mu.Unlock()
		s.root.onMain(s.refresh)
	})
}

func (s *listScreen) onAdd() {
	s.root.openForm(s.desc, nil)
}

func (s *listScreen) onEdit(row catalog.Row) {
	s.root.openForm(s.desc, navigation.Edit(s.meta.Base, row.ID, row.Data))
}

// onDelete asks for confirmation, then deletes the record. The row is
// removed only once the server accepted the delete.
func (s *listScreen) onDelete(row catalog.Row) {
	loc := s.root.localization
	dialog.ShowConfirm(
		loc.GetText(KeyConfirmDelete),
		fmt.Sprintf(loc.GetText(KeyConfirmDeleteText), row.Title),
		func(ok bool) {
			if !ok {
				return
			}
			s.root.background(func() { s.delete(row) })
		},
		s.root.window,
	)
}

func (s *listScreen) delete(row catalog.Row) {
	if err := s.coll.Delete(context.Background(), row.Key); err != nil {
		s.log.Error("delete failed", zap.Int64("id", row.Key), zap.Error(err))
		s.root.onMain(func() {
			dialog.ShowInformation(s.root.localization.GetText(KeyError), s.meta.DeleteFailedText(), s.root.window)
		})
	}
}
