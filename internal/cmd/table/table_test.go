package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap"
	"github.com/agentstation/entitymap/pkg/attributes"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/entities"
)

func sampleItems() []entitymap.Item {
	return entitymap.ResolveAll(nil, []entities.Record{
		entities.NewRecord(map[string]any{"name": "Apollo", "id": "apollo001"}),
		entities.NewRecord(map[string]any{
			"albumTitle":  "OK Computer",
			"artistName":  "Radiohead",
			"description": strings.Repeat("Great album from the 90s. ", 5),
		}),
	})
}

func TestItemsToTableData(t *testing.T) {
	data := ItemsToTableData(sampleItems(), false)

	assert.Equal(t, []string{"#", "Property 1", "Property 2", "Description"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"1", "Apollo", "ID: apollo001", "No description available"}, data.Rows[0])
	assert.Equal(t, "OK Computer", data.Rows[1][1])
	assert.Len(t, []rune(data.Rows[1][3]), descriptionWidth)
	assert.True(t, strings.HasSuffix(data.Rows[1][3], "..."))
}

func TestItemsToTableDataWide(t *testing.T) {
	data := ItemsToTableData(sampleItems(), true)

	assert.Equal(t, "Fields", data.Headers[4])
	assert.Equal(t, "1", data.Rows[0][4])
	assert.Equal(t, "3", data.Rows[1][4])
	assert.Greater(t, len(data.Rows[1][3]), descriptionWidth)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestFieldsAndDisplay(t *testing.T) {
	item := sampleItems()[0]

	fields := FieldsToTableData(item.Display.Fields)
	assert.Equal(t, [][]string{{"Name", "Apollo"}}, fields.Rows)

	detail := DisplayToTableData(item.Display)
	assert.Equal(t, [][]string{
		{"Property 1", "Apollo"},
		{"Property 2", "ID: apollo001"},
		{"Description", "No description available"},
	}, detail.Rows)
}

func TestDefinitionsToTableData(t *testing.T) {
	defs := attributes.Default().Filter(attributes.CategoryNarrative)
	data := DefinitionsToTableData(defs)

	require.Len(t, data.Rows, 4)
	assert.Equal(t, []string{"1", "description", "Description", "narrative", "text"}, data.Rows[0])
}

func TestProbeToTableData(t *testing.T) {
	data := ProbeToTableData(&dashboard.ProbeReport{
		Working: "sydney/auth",
		Results: []dashboard.ProbeResult{
			{Path: "auth", Status: 404, Error: dashboard.HintNotFound},
			{Path: "sydney/auth", OK: true, Status: 200},
			{Path: "footscray/auth", OK: true, Status: 200},
			{Path: "login", Error: "Network error: boom"},
		},
	})

	assert.Equal(t, []string{"/auth", "404", dashboard.HintNotFound}, data.Rows[0])
	assert.Equal(t, "ok (selected)", data.Rows[1][2])
	assert.Equal(t, "ok", data.Rows[2][2])
	assert.Equal(t, "-", data.Rows[3][1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", Truncate("éééééééé", 6))
	assert.Equal(t, "abcdef", Truncate("abcdef", 3))
}
