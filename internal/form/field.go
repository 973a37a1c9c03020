package form

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind selects the input widget and the format check of a field.
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindEmail
	KindDate
	KindInteger
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultiline:
		return "multiline"
	case KindEmail:
		return "email"
	case KindDate:
		return "date"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Field describes one input of a form. Name is the JSON member it fills.
type Field struct {
	Name            string
	Label           string
	Kind            Kind
	Required        bool
	RequiredMessage string
	FormatMessage   string
	Placeholder     string
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Values are the raw strings typed into a form, keyed by field name.
type Values map[string]string

// Errors maps field names to the message shown under the field.
type Errors map[string]string

// Fields returns the names of the fields in error, sorted.
func (e Errors) Fields() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every field and returns all violations. Format checks only
// run on non-empty values.
func Validate(fields []Field, values Values) Errors {
	errs := make(Errors)
	for _, f := range fields {
		if msg := f.check(strings.TrimSpace(values[f.Name])); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

func (f Field) check(value string) string {
	if value == "" {
		if f.Required {
			return f.requiredMessage()
		}
		return ""
	}

	switch f.Kind {
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return f.formatMessage("El formato del correo no es válido.")
		}
	case KindDate:
		if !datePattern.MatchString(value) {
			return f.formatMessage("Formato de fecha debe ser YYYY-MM-DD.")
		}
	case KindInteger:
		if _, err := strconv.Atoi(value); err != nil {
			return f.formatMessage(fmt.Sprintf("%s debe ser un número.", f.Label))
		}
	}
	return ""
}

func (f Field) requiredMessage() string {
	if f.RequiredMessage != "" {
		return f.RequiredMessage
	}
	return fmt.Sprintf("%s es obligatorio.", f.Label)
}

func (f Field) formatMessage(fallback string) string {
	if f.FormatMessage != "" {
		return f.FormatMessage
	}
	return fallback
}
