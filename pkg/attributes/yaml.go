package attributes

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/entitymap/pkg/errors"
)

// document is the on-disk shape of a registry.
//
//	attributes:
//	  - key: albumTitle
//	    label: Album Title   # optional, derived from the key
//	    category: regular    # optional, defaults to regular
//	    kind: text           # optional, defaults to text
type document struct {
	Attributes []entry `yaml:"attributes"`
}

type entry struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label,omitempty"`
	Category string `yaml:"category,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
}

// LoadYAML reads a registry document from r. The resulting registry keeps
// the document order and is validated exactly like New.
func LoadYAML(r io.Reader) (*Registry, error) {
	var doc document
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&doc); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}

	defs := make([]Definition, 0, len(doc.Attributes))
	for _, e := range doc.Attributes {
		d := Definition{
			Key:      strings.TrimSpace(e.Key),
			Label:    strings.TrimSpace(e.Label),
			Category: CategoryRegular,
			Kind:     KindText,
		}
		if d.Label == "" && d.Key != "" {
			d.Label = FormatLabel(d.Key)
		}
		if e.Category != "" {
			d.Category = Category(strings.ToLower(strings.TrimSpace(e.Category)))
		}
		if e.Kind != "" {
			d.Kind = Kind(strings.ToLower(strings.TrimSpace(e.Kind)))
		}
		defs = append(defs, d)
	}

	return New(defs)
}

// LoadFile reads a registry document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r, err := LoadYAML(f)
	if err != nil {
		return nil, errors.NewConfigError("registry file "+path, "cannot load attribute registry", err)
	}
	return r, nil
}

// MarshalYAML encodes the registry in the document shape read by LoadYAML.
func (r *Registry) MarshalYAML() ([]byte, error) {
	doc := document{Attributes: make([]entry, 0, len(r.defs))}
	for _, d := range r.defs {
		doc.Attributes = append(doc.Attributes, entry{
			Key:      d.Key,
			Label:    d.Label,
			Category: d.Category.String(),
			Kind:     d.Kind.String(),
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
