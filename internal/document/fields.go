package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field is one labeled value of a card document. Order is visually meaningful,
// so fields travel as a slice, never a map.
type Field struct {
	Key   string
	Value string
}

// FieldsFromJSON decodes a JSON object into fields preserving the author's key
// order. Falsy values (null, false, 0, "") decode to an empty display value,
// which the renderer skips.
func FieldsFromJSON(raw []byte) ([]Field, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding form data: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("form data is not a JSON object")
	}

	var fields []Field

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding form data key: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("form data key is not a string")
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("decoding form data value for %q: %w", key, err)
		}

		fields = append(fields, Field{Key: key, Value: displayValue(val)})
	}

	return fields, nil
}

func displayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}

		return "true"
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}

		return t.String()
	default:
		// Nested objects/arrays are not part of any card template, but a
		// permissive formData contract means they can arrive anyway.
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}

		return string(b)
	}
}
