package attributes

import (
	"fmt"
	"slices"

	"github.com/agentstation/entitymap/pkg/errors"
)

// Registry is an immutable, ordered set of attribute definitions.
// It is safe for concurrent use.
type Registry struct {
	defs      []Definition
	index     map[string]int
	regular   []Definition
	narrative []Definition
}

// New validates defs and builds a registry preserving their order.
// Every problem found is reported in a single *errors.ConfigError.
func New(defs []Definition) (*Registry, error) {
	if problems := validate(defs); len(problems) > 0 {
		return nil, errors.NewConfigProblems("attribute registry", problems)
	}

	r := &Registry{
		defs:  slices.Clone(defs),
		index: make(map[string]int, len(defs)),
	}
	for i, d := range r.defs {
		r.index[d.Key] = i
		switch d.Category {
		case CategoryRegular:
			r.regular = append(r.regular, d)
		case CategoryNarrative:
			r.narrative = append(r.narrative, d)
		}
	}
	return r, nil
}

// MustNew is like New but panics on an invalid registry.
// It is meant for registries declared in code.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Definitions returns every definition in registry order.
func (r *Registry) Definitions() []Definition {
	return slices.Clone(r.defs)
}

// Regular returns the regular definitions in registry order.
func (r *Registry) Regular() []Definition {
	return slices.Clone(r.regular)
}

// Narrative returns the narrative definitions in registry order.
func (r *Registry) Narrative() []Definition {
	return slices.Clone(r.narrative)
}

// Lookup returns the definition registered under key.
func (r *Registry) Lookup(key string) (Definition, bool) {
	i, ok := r.index[key]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Filter returns the definitions of the given category in registry order.
func (r *Registry) Filter(category Category) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// validate collects every structural problem in defs.
func validate(defs []Definition) []string {
	var problems []string
	seen := make(map[string]int, len(defs))

	for i, d := range defs {
		if d.Key == "" {
			problems = append(problems, fmt.Sprintf("definition %d has an empty key", i))
			continue
		}
		if first, dup := seen[d.Key]; dup {
			problems = append(problems, fmt.Sprintf("duplicate key %q at positions %d and %d", d.Key, first, i))
			continue
		}
		seen[d.Key] = i

		if d.Label == "" {
			problems = append(problems, fmt.Sprintf("key %q has an empty label", d.Key))
		}
		if !d.Category.Valid() {
			problems = append(problems, fmt.Sprintf("key %q has unknown category %q", d.Key, d.Category))
		}
		if !d.Kind.Valid() {
			problems = append(problems, fmt.Sprintf("key %q has unknown kind %q", d.Key, d.Kind))
		}
	}

	for _, key := range NarrativeKeys {
		i, ok := seen[key]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("narrative key %q is not defined", key))
		case defs[i].Category != CategoryNarrative:
			problems = append(problems, fmt.Sprintf("narrative key %q is marked %s", key, defs[i].Category))
		case defs[i].Kind != KindText:
			problems = append(problems, fmt.Sprintf("narrative key %q must be text, not %s", key, defs[i].Kind))
		}
	}

	i, ok := seen[KeyID]
	switch {
	case !ok:
		problems = append(problems, fmt.Sprintf("identifier key %q is not defined", KeyID))
	case defs[i].Category != CategoryIdentifier:
		problems = append(problems, fmt.Sprintf("identifier key %q is marked %s", KeyID, defs[i].Category))
	case defs[i].Kind != KindText:
		problems = append(problems, fmt.Sprintf("identifier key %q must be text, not %s", KeyID, defs[i].Kind))
	}

	return problems
}
