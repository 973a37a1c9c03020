package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Encode builds the request payload from validated values. Strings are
// trimmed, integers parsed and empty optional values left out.
func Encode[T any](fields []Field, values Values) (T, error) {
	var payload T

	members := make(map[string]any, len(fields))
	for _, f := range fields {
		value := strings.TrimSpace(values[f.Name])
		if value == "" {
			continue
		}
		if f.Kind == KindInteger {
			n, err := strconv.Atoi(value)
			if err != nil {
				return payload, fmt.Errorf("field %s: %w", f.Name, err)
			}
			members[f.Name] = n
			continue
		}
		members[f.Name] = value
	}

	raw, err := json.Marshal(members)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("build payload: %w", err)
	}
	return payload, nil
}

// Decode pre-fills form values from a JSON record, typically the data a list
// screen passes when opening a record for editing. Members that are not
// form fields are ignored.
func Decode(fields []Field, data []byte) (Values, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var members map[string]any
	if err := dec.Decode(&members); err != nil {
		return nil, err
	}

	values := make(Values, len(fields))
	for _, f := range fields {
		var text string
		switch v := members[f.Name].(type) {
		case string:
			text = v
		case json.Number:
			text = v.String()
		case bool:
			text = strconv.FormatBool(v)
		}
		if f.Kind == KindDate && len(text) > len("2006-01-02") && datePattern.MatchString(text[:10]) {
			text = text[:10]
		}
		values[f.Name] = text
	}
	return values, nil
}
