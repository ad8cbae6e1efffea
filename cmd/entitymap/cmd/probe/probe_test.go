package probe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/internal/cmd/cmdtest"
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/errors"
)

func creds() dashboard.Credentials {
	return dashboard.Credentials{Username: "Sabin", Password: "s8087644"}
}

func TestProbeTable(t *testing.T) {
	client := &cmdtest.Client{Report: &dashboard.ProbeReport{
		Results: []dashboard.ProbeResult{
			{Path: "auth", Status: 404, Error: "not found"},
			{Path: "sydney/auth", OK: true, Status: 200, Keypass: "mythology"},
			{Path: "footscray/auth", OK: true, Status: 200, Keypass: "mythology"},
			{Path: "login", Error: "timeout"},
		},
		Working: "sydney/auth",
	}}
	app := cmdtest.App(client, "table")
	app.CredentialsFunc = creds

	out, err := cmdtest.Run(NewCommand(app), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "/sydney/auth")
	assert.Contains(t, out, "ok (selected)")
	assert.Contains(t, out, "not found")
}

func TestProbeJSONNothingWorks(t *testing.T) {
	client := &cmdtest.Client{Report: &dashboard.ProbeReport{
		Results: []dashboard.ProbeResult{{Path: "auth", Status: 401, Error: "unauthorized"}},
	}}
	app := cmdtest.App(client, "json")
	app.CredentialsFunc = creds

	out, err := cmdtest.Run(NewCommand(app), nil)
	require.NoError(t, err)

	var report dashboard.ProbeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.Working)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 401, report.Results[0].Status)
}

func TestProbeBlankCredentials(t *testing.T) {
	app := cmdtest.App(&cmdtest.Client{}, "table")

	_, err := cmdtest.Run(NewCommand(app), nil)
	require.Error(t, err)

	var verr *errors.ValidationError
	assert.True(t, errors.As(err, &verr))
}
