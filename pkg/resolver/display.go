package resolver

import "fmt"

// Field is one labeled value of the field inventory.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// String renders the field as "Label: Value".
func (f Field) String() string {
	return f.Label + ": " + f.Value
}

// Display is everything presentation needs to render one entity.
type Display struct {
	Primary     string  `json:"primary" yaml:"primary"`
	Secondary   string  `json:"secondary" yaml:"secondary"`
	Description string  `json:"description" yaml:"description"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// PropertyLines returns the two list-row lines,
// "Property 1: {primary}" and "Property 2: {secondary}".
func (d Display) PropertyLines() (string, string) {
	return fmt.Sprintf("Property 1: %s", d.Primary), fmt.Sprintf("Property 2: %s", d.Secondary)
}
