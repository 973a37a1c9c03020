package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/navigation"
)

// homeScreen lists the managed entities
type homeScreen struct {
	root     *RootUI
	entities []catalog.Descriptor
	list     *widget.List
}

func newHomeScreen(root *RootUI) *homeScreen {
	h := &homeScreen{root: root, entities: catalog.All()}

	h.list = widget.NewList(
		func() int { return len(h.entities) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			chevron := widget.NewLabel(IconChevron)
			// center object first
			return container.NewBorder(nil, nil, widget.NewIcon(theme.FolderIcon()), chevron, name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*fyne.Container).Objects[0].(*widget.Label).SetText(h.entities[id].Meta().Name)
		},
	)
	h.list.OnSelected = func(id widget.ListItemID) {
		h.list.UnselectAll()
		h.root.openList(h.entities[id])
	}
	return h
}

func (h *homeScreen) Title() string {
	return h.root.localization.GetText(KeyHomeTitle)
}

func (h *homeScreen) Content() fyne.CanvasObject {
	return h.list
}

func (h *homeScreen) Enter(navigation.Params) {}
