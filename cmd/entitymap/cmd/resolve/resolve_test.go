package resolve

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/internal/cmd/cmdtest"
	"github.com/agentstation/entitymap/pkg/errors"
)

type resolved struct {
	Index   int `json:"index"`
	Display struct {
		Primary     string `json:"primary"`
		Secondary   string `json:"secondary"`
		Description string `json:"description"`
	} `json:"display"`
}

func TestResolveStdin(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "json")
	in := strings.NewReader(`[{"name":"Apollo","id":"apollo001"},{"title":"Iliad","author":"Homer"}]`)

	out, err := cmdtest.Run(NewCommand(app), in, "-")
	require.NoError(t, err)

	var items []resolved
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Apollo", items[0].Display.Primary)
	assert.Equal(t, "ID: apollo001", items[0].Display.Secondary)
	assert.Equal(t, 2, items[1].Index)
	assert.Equal(t, "Iliad", items[1].Display.Primary)
	assert.Equal(t, "Homer", items[1].Display.Secondary)
}

func TestResolveFile(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "json")

	out, err := cmdtest.Run(NewCommand(app), nil, filepath.Join("..", "..", "..", "..", "pkg", "entities", "testdata", "dashboard.json"))
	require.NoError(t, err)

	var items []resolved
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.NotEmpty(t, items)
}

func TestResolveSingleRecordFields(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "table")
	in := strings.NewReader(`{"albumTitle":"OK Computer","artistName":"Radiohead","releaseYear":1997}`)

	out, err := cmdtest.Run(NewCommand(app), in, "--fields")
	require.NoError(t, err)
	assert.Contains(t, out, "Album Title")
	assert.Contains(t, out, "Release Year")
}

func TestResolveMalformed(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "json")

	_, err := cmdtest.Run(NewCommand(app), strings.NewReader(`{"name":`))
	require.Error(t, err)

	var perr *errors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "stdin", perr.File)
}

func TestResolveMissingFile(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "json")

	_, err := cmdtest.Run(NewCommand(app), nil, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
