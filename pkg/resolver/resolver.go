// Package resolver derives stable display values from entity records of
// unpredictable shape.
//
// Every method is a pure function of its record: no I/O, no shared mutable
// state, no errors. A Resolver may be used from any number of goroutines.
package resolver

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/entitymap/pkg/attributes"
	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/entities"
)

// descriptionPriority is the order in which narrative attributes are
// consulted for the description. It differs from the inventory order.
var descriptionPriority = []string{
	attributes.KeyDescription,
	attributes.KeyContent,
	attributes.KeyDetails,
	attributes.KeyText,
}

// Resolver resolves records against an attribute registry.
type Resolver struct {
	registry *attributes.Registry
}

// New creates a resolver over registry. A nil registry selects the built-in one.
func New(registry *attributes.Registry) *Resolver {
	if registry == nil {
		registry = attributes.Default()
	}
	return &Resolver{registry: registry}
}

var defaultResolver = New(nil)

// Default returns a resolver over the built-in registry.
func Default() *Resolver {
	return defaultResolver
}

// Registry returns the registry the resolver reads.
func (r *Resolver) Registry() *attributes.Registry {
	return r.registry
}

// Resolve computes the complete display for one record.
func (r *Resolver) Resolve(rec entities.Record) Display {
	values := r.CollectValues(rec)
	return Display{
		Primary:     valueAt(values, 0, constants.NoPrimaryValue),
		Secondary:   valueAt(values, 1, constants.NoSecondaryValue),
		Description: r.ResolveDescription(rec),
		Fields:      r.ListFields(rec),
	}
}

// Primary returns the first collected value, or "No data available".
func (r *Resolver) Primary(rec entities.Record) string {
	return valueAt(r.CollectValues(rec), 0, constants.NoPrimaryValue)
}

// Secondary returns the second collected value, or "No second value available".
func (r *Resolver) Secondary(rec entities.Record) string {
	return valueAt(r.CollectValues(rec), 1, constants.NoSecondaryValue)
}

func valueAt(values []string, i int, fallback string) string {
	if i < len(values) {
		return values[i]
	}
	return fallback
}

// ResolveDescription returns the first non-blank of description, content,
// details and text, or "No description available".
func (r *Resolver) ResolveDescription(rec entities.Record) string {
	if _, value, ok := firstNarrative(rec); ok {
		return value
	}
	return constants.NoDescription
}

// firstNarrative finds the highest priority populated narrative attribute.
func firstNarrative(rec entities.Record) (key, value string, ok bool) {
	for _, key := range descriptionPriority {
		if v, ok := nonBlank(rec, key); ok {
			return key, v, true
		}
	}
	return "", "", false
}

// CollectValues returns every usable regular value in registry order,
// filtered and deduplicated, with at most one fallback value appended when
// exactly one genuine value was found.
//
// A value is dropped when its lower-cased form contains "id", when it equals
// the resolved description or the raw details value, or when it is
// MaxValueLength characters or longer. The "id" test looks at the value, not
// the key, so a name such as "Leonid" is dropped too.
func (r *Resolver) CollectValues(rec entities.Record) []string {
	description := r.ResolveDescription(rec)
	details, hasDetails := rec.Text(attributes.KeyDetails)

	var values []string
	seen := make(map[string]struct{})
	for _, def := range r.registry.Regular() {
		v, ok := regularValue(rec, def)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), "id") ||
			v == description ||
			(hasDetails && v == details) ||
			utf8.RuneCountInString(v) >= constants.MaxValueLength {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	if len(values) == 1 {
		if extra, ok := fallback(rec); ok {
			values = append(values, extra)
		}
	}
	return values
}

// fallback manufactures a second display value. The steps are tried in
// order and the first that applies wins.
func fallback(rec entities.Record) (string, bool) {
	if id, ok := nonBlank(rec, attributes.KeyID); ok && !strings.Contains(strings.ToLower(id), "null") {
		return "ID: " + id, true
	}

	if desc, ok := nonBlank(rec, attributes.KeyDescription); ok {
		words := strings.Fields(desc)
		if len(words) > constants.TypeHintWords {
			words = words[:constants.TypeHintWords]
		}
		hint := strings.Join(words, " ")
		if strings.TrimSpace(hint) != "" && utf8.RuneCountInString(hint) < constants.MaxTypeHintLength {
			return "Type: " + hint + "...", true
		}
	}

	if content, ok := nonBlank(rec, attributes.KeyContent); ok && utf8.RuneCountInString(content) < constants.MaxInfoLength {
		return "Info: " + content, true
	}

	if text, ok := nonBlank(rec, attributes.KeyText); ok && utf8.RuneCountInString(text) < constants.MaxInfoLength {
		return "Detail: " + text, true
	}

	return "", false
}

// ListFields returns every populated attribute with its label: regular
// attributes in registry order, then the narrative attributes in the fixed
// description, content, text, details order whatever order the registry
// lists them in. Values are not deduplicated.
func (r *Resolver) ListFields(rec entities.Record) []Field {
	fields := r.RegularFields(rec)
	for _, key := range attributes.NarrativeKeys {
		v, ok := nonBlank(rec, key)
		if !ok {
			continue
		}
		label := attributes.FormatLabel(key)
		if def, found := r.registry.Lookup(key); found {
			label = def.Label
		}
		fields = append(fields, Field{Label: label, Value: v})
	}
	return fields
}

// RegularFields returns the populated regular attributes with their labels.
func (r *Resolver) RegularFields(rec entities.Record) []Field {
	var fields []Field
	for _, def := range r.registry.Regular() {
		if v, ok := regularValue(rec, def); ok {
			fields = append(fields, Field{Label: def.Label, Value: v})
		}
	}
	return fields
}

// FirstField returns the first populated regular attribute.
func (r *Resolver) FirstField(rec entities.Record) (Field, bool) {
	return fieldAt(r.RegularFields(rec), 0)
}

// SecondField returns the second populated regular attribute.
func (r *Resolver) SecondField(rec entities.Record) (Field, bool) {
	return fieldAt(r.RegularFields(rec), 1)
}

// LabeledFields returns the first and second regular attributes and the
// description field, skipping any that are absent. Detail views show these
// when the full inventory is not requested.
func (r *Resolver) LabeledFields(rec entities.Record) []Field {
	var fields []Field
	for _, get := range []func(entities.Record) (Field, bool){r.FirstField, r.SecondField, r.DescriptionField} {
		if f, ok := get(rec); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

func fieldAt(fields []Field, i int) (Field, bool) {
	if i < len(fields) {
		return fields[i], true
	}
	return Field{}, false
}

// DescriptionField returns the description with its label. Without any
// narrative attribute it falls back to the longest regular field, the
// earliest one winning ties.
func (r *Resolver) DescriptionField(rec entities.Record) (Field, bool) {
	if key, value, ok := firstNarrative(rec); ok {
		label := attributes.FormatLabel(key)
		if def, found := r.registry.Lookup(key); found {
			label = def.Label
		}
		return Field{Label: label, Value: value}, true
	}

	var (
		best    Field
		bestLen = -1
	)
	for _, f := range r.RegularFields(rec) {
		if n := utf8.RuneCountInString(f.Value); n > bestLen {
			best, bestLen = f, n
		}
	}
	return best, bestLen >= 0
}

// regularValue returns the display form of a regular attribute: non-blank
// text verbatim, or a positive integer in decimal.
func regularValue(rec entities.Record, def attributes.Definition) (string, bool) {
	switch def.Kind {
	case attributes.KindInteger:
		n, ok := rec.Int(def.Key)
		if !ok || n <= 0 {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	default:
		return nonBlank(rec, def.Key)
	}
}

// nonBlank returns the text value of key when it has non-whitespace content.
func nonBlank(rec entities.Record, key string) (string, bool) {
	v, ok := rec.Text(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
