package ui

// Package ui contains the Fyne user interface for the application. It shows
// the entity home list, a list screen and a form screen per entity, and the
// settings dialog. All chrome strings are localized via Localization.
