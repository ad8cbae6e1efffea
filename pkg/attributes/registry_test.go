package attributes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/pkg/errors"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	require.NotNil(t, r)

	t.Run("keys are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, d := range r.Definitions() {
			assert.False(t, seen[d.Key], "duplicate key %q", d.Key)
			seen[d.Key] = true
		}
	})

	t.Run("narrative attributes in inventory order", func(t *testing.T) {
		var keys []string
		for _, d := range r.Narrative() {
			keys = append(keys, d.Key)
		}
		assert.Equal(t, []string{"description", "content", "text", "details"}, keys)
	})

	t.Run("numbered properties lead", func(t *testing.T) {
		regular := r.Regular()
		require.GreaterOrEqual(t, len(regular), 5)
		assert.Equal(t, "property1", regular[0].Key)
		assert.Equal(t, "property4", regular[3].Key)
		assert.Equal(t, "name", regular[4].Key)
	})

	t.Run("id is an identifier", func(t *testing.T) {
		d, ok := r.Lookup(KeyID)
		require.True(t, ok)
		assert.Equal(t, CategoryIdentifier, d.Category)
		for _, reg := range r.Regular() {
			assert.NotEqual(t, KeyID, reg.Key)
		}
	})

	t.Run("integer attributes", func(t *testing.T) {
		for _, key := range []string{"year", "releaseYear"} {
			d, ok := r.Lookup(key)
			require.True(t, ok, key)
			assert.Equal(t, KindInteger, d.Kind, key)
		}
	})

	t.Run("sub-lists cover every non-identifier", func(t *testing.T) {
		assert.Equal(t, r.Len(), len(r.Regular())+len(r.Narrative())+len(r.Filter(CategoryIdentifier)))
	})
}

func TestDefinitionsReturnsCopy(t *testing.T) {
	r := Default()
	defs := r.Definitions()
	defs[0].Label = "mutated"

	d, ok := r.Lookup(defs[0].Key)
	require.True(t, ok)
	assert.Equal(t, "Property 1", d.Label)
}

func TestNewValidation(t *testing.T) {
	base := func() []Definition {
		return []Definition{
			text("name", "Name"),
			identifier(KeyID, "ID"),
			narrative(KeyDescription, "Description"),
			narrative(KeyContent, "Content"),
			narrative(KeyText, "Text"),
			narrative(KeyDetails, "Details"),
		}
	}

	t.Run("valid", func(t *testing.T) {
		r, err := New(base())
		require.NoError(t, err)
		assert.Equal(t, 6, r.Len())
	})

	tests := []struct {
		name   string
		mutate func([]Definition) []Definition
		want   string
	}{
		{
			name:   "duplicate key",
			mutate: func(d []Definition) []Definition { return append(d, text("name", "Other Name")) },
			want:   `duplicate key "name"`,
		},
		{
			name:   "empty key",
			mutate: func(d []Definition) []Definition { return append(d, text("", "Blank")) },
			want:   "empty key",
		},
		{
			name:   "empty label",
			mutate: func(d []Definition) []Definition { return append(d, text("genre", "")) },
			want:   `key "genre" has an empty label`,
		},
		{
			name: "narrative marked regular",
			mutate: func(d []Definition) []Definition {
				d[3] = text(KeyContent, "Content")
				return d
			},
			want: `narrative key "content" is marked regular`,
		},
		{
			name:   "missing narrative",
			mutate: func(d []Definition) []Definition { return d[:5] },
			want:   `narrative key "details" is not defined`,
		},
		{
			name: "identifier marked regular",
			mutate: func(d []Definition) []Definition {
				d[1] = text(KeyID, "ID")
				return d
			},
			want: `identifier key "id" is marked regular`,
		},
		{
			name: "missing identifier",
			mutate: func(d []Definition) []Definition {
				return append(d[:1], d[2:]...)
			},
			want: `identifier key "id" is not defined`,
		},
		{
			name: "unknown kind",
			mutate: func(d []Definition) []Definition {
				return append(d, Definition{Key: "rating", Label: "Rating", Category: CategoryRegular, Kind: "float"})
			},
			want: `unknown kind "float"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.mutate(base()))
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.IsConfigError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("all problems reported", func(t *testing.T) {
		defs := append(base(), text("name", "Again"), text("genre", ""))
		_, err := New(defs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")
		assert.Contains(t, err.Error(), "empty label")
	})

	t.Run("MustNew panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(nil) })
	})
}

func TestFormatLabel(t *testing.T) {
	tests := map[string]string{
		"albumTitle":   "Album Title",
		"artistName":   "Artist Name",
		"releaseYear":  "Release Year",
		"name":         "Name",
		"release_year": "Release Year",
		"property1":    "Property1",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatLabel(in), "FormatLabel(%q)", in)
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
attributes:
  - key: albumTitle
  - key: year
    kind: integer
  - key: id
    label: ID
    category: identifier
  - key: description
    category: narrative
  - key: content
    category: Narrative
  - key: text
    category: narrative
  - key: details
    category: narrative
`
	r, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	want := []Definition{
		text("albumTitle", "Album Title"),
		integer("year", "Year"),
		identifier("id", "ID"),
		narrative("description", "Description"),
		narrative("content", "Content"),
		narrative("text", "Text"),
		narrative("details", "Details"),
	}
	if diff := cmp.Diff(want, r.Definitions()); diff != "" {
		t.Errorf("LoadYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("attributes: [\n"))
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("invalid registry", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("attributes:\n  - key: name\n"))
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	data, err := Default().MarshalYAML()
	require.NoError(t, err)

	r, err := LoadYAML(strings.NewReader(string(data)))
	require.NoError(t, err)

	if diff := cmp.Diff(Default().Definitions(), r.Definitions()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
