// Package table converts entitymap values into rows for tabular CLI output.
package table

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/pkg/attributes"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/resolver"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// descriptionWidth caps the description column of list views.
const descriptionWidth = 60

// ItemsToTableData renders the dashboard list: one row per entity with the
// two property lines and the description. Wide adds the field count.
func ItemsToTableData(items []entitymap.Item, wide bool) Data {
	headers := []string{"#", "Property 1", "Property 2", "Description"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Fields")
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		description := item.Display.Description
		if !wide {
			description = Truncate(description, descriptionWidth)
		}
		row := []string{
			strconv.Itoa(item.Index),
			item.Display.Primary,
			item.Display.Secondary,
			description,
		}
		if wide {
			row = append(row, strconv.Itoa(len(item.Display.Fields)))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// FieldsToTableData renders a field inventory as label/value rows.
func FieldsToTableData(fields []resolver.Field) Data {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Label, f.Value})
	}
	return Data{
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}
}

// DisplayToTableData renders the detail view of one entity.
func DisplayToTableData(d resolver.Display) Data {
	p1, p2 := d.PropertyLines()
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Property 1", strings.TrimPrefix(p1, "Property 1: ")},
			{"Property 2", strings.TrimPrefix(p2, "Property 2: ")},
			{"Description", d.Description},
		},
	}
}

// DefinitionsToTableData renders registry definitions in registry order.
func DefinitionsToTableData(defs []attributes.Definition) Data {
	rows := make([][]string, 0, len(defs))
	for i, d := range defs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.Key,
			d.Label,
			d.Category.String(),
			d.Kind.String(),
		})
	}
	return Data{
		Headers:         []string{"#", "Key", "Label", "Category", "Kind"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
}

// ProbeToTableData renders a probe report, marking the working path.
func ProbeToTableData(report *dashboard.ProbeReport) Data {
	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		status := "-"
		if r.Status != 0 {
			status = strconv.Itoa(r.Status)
		}
		result := r.Error
		if r.OK {
			result = "ok"
			if r.Path == report.Working {
				result = "ok (selected)"
			}
		}
		rows = append(rows, []string{"/" + r.Path, status, result})
	}
	return Data{
		Headers:         []string{"Path", "Status", "Result"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// Truncate shortens s to at most width characters, ending in "...".
func Truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width || width < 4 {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
