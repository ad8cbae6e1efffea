// Package entities holds the decoded entity records delivered by the
// dashboard API. A Record is an immutable snapshot of one JSON object whose
// keys are not known in advance; values are coerced on read to the kind the
// caller asks for, and anything that cannot be coerced counts as absent.
package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/entitymap/pkg/errors"
)

// Record is one entity as returned by the API. The zero value is an empty
// record. Records are never mutated after construction and are safe for
// concurrent reads.
type Record struct {
	values map[string]any // string or json.Number
}

// NewRecord builds a record from a map of scalars. Strings, integers and
// floats are kept; nil and every other type are dropped. The input map is
// copied.
func NewRecord(values map[string]any) Record {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if s, ok := normalize(v); ok {
			out[k] = s
		}
	}
	return Record{values: out}
}

// normalize keeps only scalars the resolver can coerce.
func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x, true
	case int:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(x), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(x, 10)), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false
		}
		return json.Number(strconv.FormatFloat(x, 'f', -1, 64)), true
	}
	return nil, false
}

// UnmarshalJSON decodes a JSON object. Non-scalar and null values are
// dropped rather than rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return errors.WrapParse("json", "", err)
	}
	*r = NewRecord(raw)
	return nil
}

// MarshalJSON encodes the retained scalars.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.values)
}

// Has reports whether key holds any scalar.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Text returns the value of key as a string. JSON strings are returned
// verbatim and numbers in their JSON spelling.
func (r Record) Text(key string) (string, bool) {
	switch v := r.values[key].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// Int returns the value of key as an integer. Integral numbers and strings
// holding a base-10 integer are accepted.
func (r Record) Int(key string) (int64, bool) {
	switch v := r.values[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		if f, err := v.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			return int64(f), true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Keys returns the populated keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of populated keys.
func (r Record) Len() int {
	return len(r.values)
}
