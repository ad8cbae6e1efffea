package dashboard

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/entitymap/pkg/constants"
	"github.com/agentstation/entitymap/pkg/errors"
	"github.com/agentstation/entitymap/pkg/logging"
)

// ProbePaths are the login paths tried by Probe, in preference order.
var ProbePaths = []string{"auth", "sydney/auth", "footscray/auth", "login"}

// ProbeResult is the outcome of one login attempt.
type ProbeResult struct {
	Path    string `json:"path" yaml:"path"`
	OK      bool   `json:"ok" yaml:"ok"`
	Status  int    `json:"status,omitempty" yaml:"status,omitempty"`
	Keypass string `json:"keypass,omitempty" yaml:"keypass,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ProbeReport collects the results of a probe in ProbePaths order.
type ProbeReport struct {
	Results []ProbeResult `json:"results" yaml:"results"`
	// Working is the first path that accepted the credentials, or empty.
	Working string `json:"working,omitempty" yaml:"working,omitempty"`
}

// Probe tries every candidate login path concurrently and reports which
// ones accept creds. Individual failures are recorded in the report; an
// error is returned only for invalid credentials or a canceled context.
func (c *Client) Probe(ctx context.Context, creds Credentials) (*ProbeReport, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	creds = creds.Normalize()

	ctx = c.withOperation(ctx, "probe")
	logger := logging.FromContext(ctx)

	results := make([]ProbeResult, len(ProbePaths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range ProbePaths {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, constants.ProbeTimeout)
			defer cancel()

			res := ProbeResult{Path: path}
			keypass, err := c.login(pctx, path, creds)
			switch {
			case err == nil:
				res.OK = true
				res.Status = http.StatusOK
				res.Keypass = keypass
			default:
				var apiErr *errors.APIError
				if errors.As(err, &apiErr) {
					res.Status = apiErr.StatusCode
				}
				res.Error = Describe(err)
				logger.Debug().Str("path", path).Err(err).Msg("Probe failed")
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.NewResourceError("probe", "login paths", "", err)
	}

	report := &ProbeReport{Results: results}
	for _, r := range results {
		if r.OK {
			report.Working = r.Path
			break
		}
	}
	return report, nil
}
