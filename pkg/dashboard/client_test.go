package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/entitymap/internal/transport"
	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/errors"
	"github.com/agentstation/entitymap/pkg/logging"
)

// fakeAPI serves the login and dashboard endpoints.
type fakeAPI struct {
	loginPaths map[string]bool
	dashboard  []byte
	fetches    atomic.Int32
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	data, err := os.ReadFile("../entities/testdata/dashboard.json")
	require.NoError(t, err)
	return &fakeAPI{
		loginPaths: map[string]bool{"/sydney/auth": true},
		dashboard:  data,
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && f.loginPaths[r.URL.Path]:
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if creds.Username != "Sabin" || creds.Password != "s8087644" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"keypass": "mythology"})
	case r.Method == http.MethodGet && r.URL.Path == "/dashboard/mythology":
		f.fetches.Add(1)
		_, _ = w.Write(f.dashboard)
	case r.Method == http.MethodGet && r.URL.Path == "/dashboard/broken":
		http.Error(w, "boom", http.StatusInternalServerError)
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return New(transport.New(transport.WithTimeout(5*time.Second)), append([]Option{WithBaseURL(srv.URL + "/")}, opts...)...)
}

func TestNewDefaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, constants.DefaultBaseURL, c.BaseURL())
	assert.Equal(t, constants.DefaultCampus, c.Campus())
	assert.Equal(t, "sydney/auth", c.LoginPath())

	c = New(nil, WithCampus("/footscray/"), WithBaseURL("https://example.com/"))
	assert.Equal(t, "footscray/auth", c.LoginPath())
	assert.Equal(t, "https://example.com", c.BaseURL())
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))

	keypass, err := c.Login(context.Background(), Credentials{Username: " Sabin ", Password: "s8087644"})
	require.NoError(t, err)
	assert.Equal(t, "mythology", keypass)
}

func TestLoginLogsRedactedKeypass(t *testing.T) {
	tl := logging.NewTestLogger(t)
	c := newTestClient(t, newFakeAPI(t), WithLogger(tl.Logger))

	_, err := c.Login(context.Background(), Credentials{Username: "Sabin", Password: "s8087644"})
	require.NoError(t, err)

	e, ok := tl.Event("Login succeeded")
	require.True(t, ok)
	assert.Equal(t, "login", e["operation"])
	assert.Equal(t, "my***", e["keypass"])
	assert.NotContains(t, tl.Output(), "mythology")
	assert.NotContains(t, tl.Output(), "s8087644")

	// The transport logs through the same context logger.
	req, ok := tl.Event("request completed")
	require.True(t, ok)
	assert.Equal(t, "login", req["operation"])
}

func TestLoginFailures(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))
	ctx := context.Background()

	t.Run("blank", func(t *testing.T) {
		_, err := c.Login(ctx, Credentials{Username: "  ", Password: "x"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, HintBlankCredentials, Describe(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := c.Login(ctx, Credentials{Username: "Sabin", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorized(err))
		assert.Equal(t, HintUnauthorized, Describe(err))
	})

	t.Run("unknown campus", func(t *testing.T) {
		other := newTestClient(t, newFakeAPI(t), WithCampus("melbourne"))
		_, err := other.Login(ctx, Credentials{Username: "Sabin", Password: "s8087644"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, HintNotFound, Describe(err))
	})

	t.Run("empty keypass", func(t *testing.T) {
		empty := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"keypass":""}`))
		}))
		_, err := empty.Login(ctx, Credentials{Username: "Sabin", Password: "s8087644"})
		require.Error(t, err)
		var resErr *errors.ResourceError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "keypass", resErr.Resource)
	})
}

func TestDashboard(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))

	d, err := c.Dashboard(context.Background(), "mythology")
	require.NoError(t, err)
	assert.Equal(t, 2, d.EntityTotal)
	require.Len(t, d.Entities, 2)

	title, ok := d.Entities[0].Text("albumTitle")
	assert.True(t, ok)
	assert.Equal(t, "OK Computer", title)
}

func TestDashboardErrors(t *testing.T) {
	c := newTestClient(t, newFakeAPI(t))
	ctx := context.Background()

	_, err := c.Dashboard(ctx, "  ")
	assert.True(t, errors.IsValidationError(err))

	_, err = c.Dashboard(ctx, "broken")
	assert.True(t, errors.IsServerUnavailable(err))
	assert.Equal(t, HintServerError, Describe(err))

	_, err = c.Dashboard(ctx, "unknown")
	assert.True(t, errors.IsNotFound(err))
}

func TestDashboardCache(t *testing.T) {
	api := newFakeAPI(t)
	ctx := context.Background()

	uncached := newTestClient(t, api)
	for range 2 {
		_, err := uncached.Dashboard(ctx, "mythology")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), api.fetches.Load())

	api.fetches.Store(0)
	cached := newTestClient(t, api, WithCacheTTL(time.Minute))
	for range 3 {
		_, err := cached.Dashboard(ctx, "mythology")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), api.fetches.Load())

	cached.Invalidate("mythology")
	_, err := cached.Dashboard(ctx, "mythology")
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.fetches.Load())
}

func TestCredentials(t *testing.T) {
	c := Credentials{Username: "Sabin", Password: "s8087644"}
	assert.NoError(t, c.Validate())
	assert.Equal(t, "Sabin:****", c.String())

	err := Credentials{Username: "Sabin", Password: " \t"}.Validate()
	var v *errors.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "password", v.Field)
}
