// Package navigation carries results between screens as string parameters
// and keeps the route stack of the application.
package navigation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Params are the string parameters attached to a route.
type Params map[string]string

// MutationKind tells whether a form created or updated a record.
type MutationKind int

const (
	MutationNone MutationKind = iota
	MutationNew
	MutationUpdated
)

// String returns the parameter prefix used for the kind.
func (k MutationKind) String() string {
	switch k {
	case MutationNew:
		return "new"
	case MutationUpdated:
		return "updated"
	default:
		return "none"
	}
}

// Mutation is the payload a form hands back to its list.
type Mutation struct {
	Kind MutationKind
	Raw  string
}

// NewKey returns the "created" parameter name for base, e.g. newPersona.
func NewKey(base string) string { return "new" + base }

// UpdatedKey returns the "updated" parameter name for base, e.g. updatedPersona.
func UpdatedKey(base string) string { return "updated" + base }

// IDKey returns the edited-record id parameter name for base, e.g. personaId.
func IDKey(base string) string { return lowerFirst(base) + "Id" }

// DataKey returns the edited-record payload parameter name for base, e.g. personaData.
func DataKey(base string) string { return lowerFirst(base) + "Data" }

// Result builds the parameters a form returns after a successful save.
func Result(base string, kind MutationKind, raw []byte) Params {
	switch kind {
	case MutationNew:
		return Params{NewKey(base): string(raw)}
	case MutationUpdated:
		return Params{UpdatedKey(base): string(raw)}
	}
	return Params{}
}

// Edit builds the parameters that open a form on an existing record.
func Edit(base, id string, data []byte) Params {
	return Params{
		IDKey(base):   id,
		DataKey(base): string(data),
	}
}

// Mutation reads back a pending mutation for base. A "new" payload wins over
// an "updated" one when both are present.
func (p Params) Mutation(base string) (Mutation, bool) {
	if raw, ok := p[NewKey(base)]; ok && strings.TrimSpace(raw) != "" {
		return Mutation{Kind: MutationNew, Raw: raw}, true
	}
	if raw, ok := p[UpdatedKey(base)]; ok && strings.TrimSpace(raw) != "" {
		return Mutation{Kind: MutationUpdated, Raw: raw}, true
	}
	return Mutation{}, false
}

// Editing returns the id and payload of the record a form was opened on.
func (p Params) Editing(base string) (id, data string, ok bool) {
	data = p[DataKey(base)]
	if strings.TrimSpace(data) == "" {
		return "", "", false
	}
	return p[IDKey(base)], data, true
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
