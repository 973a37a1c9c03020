// Package catalog describes the eleven managed entities and binds each one to
// its list store and form submitter.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/navigation"
)

// Meta is the schema of one entity: names, API path and form fields.
type Meta struct {
	// Base is the navigation base, e.g. "Facultad" for newFacultad.
	Base string
	// Path is the API collection path without slashes.
	Path string
	// IDField is the JSON member holding the server id.
	IDField string
	// Name is the home screen title.
	Name string
	// Noun and NounPlural are used in list texts, e.g. "Facultad"/"facultades".
	// Join entities use "Relación".
	Noun       string
	NounPlural string
	Feminine   bool
	// Article precedes the lower-cased noun when it differs from the
	// gender default ("el área científica").
	Article string
	Fields  []form.Field
}

// ListRoute returns the list screen route.
func (m Meta) ListRoute() string { return navigation.ListRoute(m.Path) }

// FormRoute returns the form screen route.
func (m Meta) FormRoute() string { return navigation.FormRoute(m.Path) }

// EmptyText is shown when the collection has no records.
func (m Meta) EmptyText() string {
	return fmt.Sprintf("No hay %s %s.", strings.ToLower(m.NounPlural), m.gendered("registradas", "registrados"))
}

// AddFirstText labels the call to action of an empty list.
func (m Meta) AddFirstText() string {
	return fmt.Sprintf("Agregar %s %s", m.gendered("Primera", "Primer"), m.Noun)
}

// AddText labels the add button of a populated list.
func (m Meta) AddText() string {
	return "Agregar " + m.Noun
}

// LoadingText is shown while the list is fetched.
func (m Meta) LoadingText() string {
	return fmt.Sprintf("Cargando %s...", strings.ToLower(m.NounPlural))
}

// LoadFailedText is the fallback when a failed load carries no message.
func (m Meta) LoadFailedText() string {
	return fmt.Sprintf("No se pudieron cargar %s %s.", m.gendered("las", "los"), strings.ToLower(m.NounPlural))
}

// DeleteFailedText is the alert shown when a delete request fails.
func (m Meta) DeleteFailedText() string {
	article := m.Article
	if article == "" {
		article = m.gendered("la", "el")
	}
	return fmt.Sprintf("No se pudo eliminar %s %s.", article, strings.ToLower(m.Noun))
}

// FormTitle is the title of the form screen.
func (m Meta) FormTitle(editing bool) string {
	if editing {
		return "Editar " + m.Noun
	}
	return m.gendered("Nueva ", "Nuevo ") + m.Noun
}

// Field returns the field named name.
func (m Meta) Field(name string) (form.Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return form.Field{}, false
}

// KeyOf reads the server id from a JSON record. It returns 0 when the
// record has none.
func (m Meta) KeyOf(data []byte) int64 {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return 0
	}
	var key int64
	if err := json.Unmarshal(members[m.IDField], &key); err != nil {
		return 0
	}
	return key
}

func (m Meta) gendered(feminine, masculine string) string {
	if m.Feminine {
		return feminine
	}
	return masculine
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.Trim(a, "/ "), b)
}
