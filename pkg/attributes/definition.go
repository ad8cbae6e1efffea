// Package attributes defines the attribute registry: the ordered catalog of
// every entity attribute the resolver recognizes, with its display label,
// category and value kind.
//
// Registry order is significant. It is the iteration order of every resolver
// algorithm and therefore the tie-break for which value becomes the primary
// display value: explicit numbered properties first, then names, titles and
// types, then long-tail domain fields. Narrative attributes come last.
package attributes

import (
	"fmt"
	"strings"
)

// Category classifies how the resolver may use an attribute.
type Category string

const (
	// CategoryRegular marks short-form fields eligible for primary/secondary values.
	CategoryRegular Category = "regular"
	// CategoryNarrative marks long-form fields eligible only for the description.
	CategoryNarrative Category = "narrative"
	// CategoryIdentifier marks record identifiers. They are never displayed
	// directly and only feed the "ID:" fallback.
	CategoryIdentifier Category = "identifier"
)

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryRegular, CategoryNarrative, CategoryIdentifier:
		return true
	}
	return false
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q: must be one of: regular, narrative, identifier", s)
	}
	return c, nil
}

// Kind is the scalar type an attribute value is coerced to.
type Kind string

const (
	// KindText values are strings; blank strings count as absent.
	KindText Kind = "text"
	// KindInteger values are integers; zero and negatives count as absent.
	KindInteger Kind = "integer"
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindText || k == KindInteger
}

// Definition describes one recognized attribute.
type Definition struct {
	Key      string   `json:"key" yaml:"key"`
	Label    string   `json:"label" yaml:"label"`
	Category Category `json:"category" yaml:"category"`
	Kind     Kind     `json:"kind" yaml:"kind"`
}

// IsRegular reports whether the attribute is a display value candidate.
func (d Definition) IsRegular() bool {
	return d.Category == CategoryRegular
}

// IsNarrative reports whether the attribute is a description candidate.
func (d Definition) IsNarrative() bool {
	return d.Category == CategoryNarrative
}

// text declares a regular text attribute.
func text(key, label string) Definition {
	return Definition{Key: key, Label: label, Category: CategoryRegular, Kind: KindText}
}

// integer declares a regular integer attribute.
func integer(key, label string) Definition {
	return Definition{Key: key, Label: label, Category: CategoryRegular, Kind: KindInteger}
}

// narrative declares a narrative text attribute.
func narrative(key, label string) Definition {
	return Definition{Key: key, Label: label, Category: CategoryNarrative, Kind: KindText}
}

// identifier declares an identifier text attribute.
func identifier(key, label string) Definition {
	return Definition{Key: key, Label: label, Category: CategoryIdentifier, Kind: KindText}
}
