package output

import (
	"io"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/internal/cmd/table"
	"github.com/agentstation/entitymap/pkg/attributes"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/resolver"
)

// Items writes the dashboard list. Tables show the property lines; JSON
// and YAML carry every resolved value.
func Items(w io.Writer, format Format, items []entitymap.Item) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.ItemsToTableData(items, format == FormatWide))
	}
	return NewFormatter(format).Format(w, items)
}

// Detail writes the detail view of one entity. Tables follow the property
// lines with either the full field inventory, when fields is set, or the
// labeled first, second and description attributes taken from r.
func Detail(w io.Writer, format Format, item entitymap.Item, r *resolver.Resolver, fields bool) error {
	if !format.IsTable() {
		return NewFormatter(format).Format(w, item)
	}
	f := NewFormatter(format)
	if err := f.Format(w, table.DisplayToTableData(item.Display)); err != nil {
		return err
	}
	if fields {
		return f.Format(w, table.FieldsToTableData(item.Display.Fields))
	}
	if r == nil {
		r = resolver.Default()
	}
	labeled := r.LabeledFields(item.Record)
	if len(labeled) == 0 {
		return nil
	}
	return f.Format(w, table.FieldsToTableData(labeled))
}

// Fields writes a field inventory.
func Fields(w io.Writer, format Format, fields []resolver.Field) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.FieldsToTableData(fields))
	}
	return NewFormatter(format).Format(w, fields)
}

// Definitions writes registry definitions.
func Definitions(w io.Writer, format Format, defs []attributes.Definition) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.DefinitionsToTableData(defs))
	}
	return NewFormatter(format).Format(w, defs)
}

// Probe writes a probe report.
func Probe(w io.Writer, format Format, report *dashboard.ProbeReport) error {
	if format.IsTable() {
		return NewFormatter(format).Format(w, table.ProbeToTableData(report))
	}
	return NewFormatter(format).Format(w, report)
}

// Any writes data in format.
func Any(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}
