package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/pkg/errors"
)

func TestProbe(t *testing.T) {
	api := newFakeAPI(t)
	api.loginPaths["/footscray/auth"] = true
	c := newTestClient(t, api)

	report, err := c.Probe(context.Background(), Credentials{Username: "Sabin", Password: "s8087644"})
	require.NoError(t, err)

	require.Len(t, report.Results, len(ProbePaths))
	// The first accepted path in preference order wins, whatever finished first.
	assert.Equal(t, "sydney/auth", report.Working)

	byPath := map[string]ProbeResult{}
	for i, r := range report.Results {
		assert.Equal(t, ProbePaths[i], r.Path)
		byPath[r.Path] = r
	}
	assert.False(t, byPath["auth"].OK)
	assert.Equal(t, 404, byPath["auth"].Status)
	assert.Equal(t, HintNotFound, byPath["auth"].Error)
	assert.True(t, byPath["footscray/auth"].OK)
	assert.Equal(t, "mythology", byPath["footscray/auth"].Keypass)
	assert.False(t, byPath["login"].OK)
}

func TestProbeNothingWorks(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))

	report, err := c.Probe(context.Background(), Credentials{Username: "Sabin", Password: "wrong"})
	require.NoError(t, err)
	assert.Empty(t, report.Working)
	for _, r := range report.Results {
		assert.False(t, r.OK)
	}
}

func TestProbeInvalid(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))

	_, err := c.Probe(context.Background(), Credentials{})
	assert.True(t, errors.IsValidationError(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Probe(ctx, Credentials{Username: "Sabin", Password: "s8087644"})
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err) || errors.Is(err, context.Canceled))
}
