package entities

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/agentstation/entitymap/pkg/errors"
)

// Dashboard is the envelope returned by GET /dashboard/{keypass}.
type Dashboard struct {
	Entities    []Record `json:"entities"`
	EntityTotal int      `json:"entityTotal"`
}

// Decode reads entity records from r. It accepts a dashboard envelope, a
// bare array of objects, or a single object.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "entities", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.NewParseError("json", "", "empty input", nil)
	}

	switch trimmed[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return records, nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		if raw, ok := probe["entities"]; ok && len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '[' {
			var d Dashboard
			if err := json.Unmarshal(trimmed, &d); err != nil {
				return nil, errors.WrapParse("json", "", err)
			}
			return d.Entities, nil
		}
		var rec Record
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return []Record{rec}, nil
	default:
		return nil, errors.NewParseError("json", "", "expected an object or an array of objects", nil)
	}
}
