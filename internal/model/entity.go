package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is rendered in place of joined fields the server did not send.
const NotAvailable = "N/A"

// Entity is a flat record managed by one list/form screen pair.
type Entity interface {
	// Key returns the server-assigned identifier, 0 until the first successful create.
	Key() int64
	// Label returns the display name. It only reads the record's own fields.
	Label() string
	// Subtitle returns the secondary line shown under the label in lists.
	Subtitle() string
}

// Display is an entity decorated for rendering: a string id (stringified key,
// or a placeholder for records the server has not confirmed) and a display name.
type Display[T Entity] struct {
	ID          string
	DisplayName string
	Record      T
}

// Decorate builds the display record for rec. now is only used when the
// record has no key yet.
func Decorate[T Entity](rec T, now time.Time) Display[T] {
	id := PlaceholderID(now)
	if key := rec.Key(); key != 0 {
		id = strconv.FormatInt(key, 10)
	}
	return Display[T]{
		ID:          id,
		DisplayName: rec.Label(),
		Record:      rec,
	}
}

// PlaceholderID returns the timestamp-derived id given to records without a key.
func PlaceholderID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// MarshalJSON flattens the record and adds the id and displayName members,
// which is the shape handed to the form screen when editing.
func (d Display[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(d.Record)
	if err != nil {
		return nil, err
	}

	members := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("record is not a JSON object: %w", err)
	}

	id, _ := json.Marshal(d.ID)
	name, _ := json.Marshal(d.DisplayName)
	members["id"] = id
	members["displayName"] = name

	return json.Marshal(members)
}

// UnmarshalJSON reads the flattened shape written by MarshalJSON.
func (d *Display[T]) UnmarshalJSON(data []byte) error {
	var meta struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	d.ID = meta.ID
	d.DisplayName = meta.DisplayName
	d.Record = rec
	return nil
}

// orNA returns s, or NotAvailable when s is blank.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// fullName joins given names and surnames, substituting NotAvailable for blanks.
func fullName(nombres, apellidos string) string {
	return orNA(nombres) + " " + orNA(apellidos)
}

// FormatDate renders a YYYY-MM-DD (or RFC 3339) date as DD/MM/YYYY.
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return NotAvailable
	}
	if len(iso) > len(time.DateOnly) {
		iso = iso[:len(time.DateOnly)]
	}

	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return "Fecha inválida"
	}
	return t.Format("02/01/2006")
}
