package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/errors"
	"github.com/agentstation/entitymap/pkg/logging"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, constants.DefaultHTTPTimeout, c.Timeout())

	c = New(WithTimeout(3*time.Second), WithTimeout(0))
	assert.Equal(t, 3*time.Second, c.Timeout())
}

func TestWithHTTPClientLeavesCallerClientUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	shared := &http.Client{}
	c := New(WithHTTPClient(shared), WithTimeout(5*time.Second))

	assert.Equal(t, 5*time.Second, c.Timeout())
	assert.Zero(t, shared.Timeout)

	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Zero(t, shared.Timeout)

	other := New(WithHTTPClient(shared))
	assert.Zero(t, other.Timeout())
}

func TestGetSetsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		assert.Equal(t, "entitymap-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tl := logging.NewTestLogger(t)
	c := New(WithUserAgent("entitymap-test"), WithLogger(tl.Logger))

	resp, err := c.Get(context.Background(), srv.URL+"/ping")
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, DecodeResponse(resp, &out))
	assert.True(t, out.OK)
	tl.AssertContains(t, "request completed")
	tl.AssertContains(t, `"path":"/ping"`)
}

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		_, _ = w.Write([]byte(`{"keypass":"k1"}`))
	}))
	defer srv.Close()

	resp, err := New().PostJSON(context.Background(), srv.URL+"/sydney/auth", map[string]string{"username": "alice"})
	require.NoError(t, err)

	var out struct {
		Keypass string `json:"keypass"`
	}
	require.NoError(t, DecodeResponse(resp, &out))
	assert.Equal(t, "k1", out.Keypass)
}

func TestDecodeResponseStatus(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, errors.IsUnauthorized},
		{http.StatusNotFound, errors.IsNotFound},
		{http.StatusInternalServerError, errors.IsServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			resp, err := New().Get(context.Background(), srv.URL+"/dashboard/x")
			require.NoError(t, err)

			err = DecodeResponse(resp, &struct{}{})
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/dashboard/x", apiErr.Endpoint)
			assert.Equal(t, "nope", apiErr.Message)
		})
	}
}

func TestDecodeResponseMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"entities":`))
	}))
	defer srv.Close()

	resp, err := New().Get(context.Background(), srv.URL)
	require.NoError(t, err)

	err = DecodeResponse(resp, &map[string]any{})
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "json", parseErr.Format)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(WithTimeout(50*time.Millisecond)).Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err))
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Get(ctx, "http://127.0.0.1:1/never")
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New().Get(context.Background(), url)
	require.Error(t, err)

	var resErr *errors.ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.False(t, errors.IsTimeout(err))
}
