package cmdutil

import (
	"github.com/agentstation/entitymap/pkg/dashboard"
	"github.com/agentstation/entitymap/pkg/errors"
)

// Message renders err for the terminal. Failures talking to the dashboard
// API get the matching user hint followed by the underlying error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if !isAPIFailure(err) {
		return "Error: " + err.Error()
	}
	return "Error: " + dashboard.Describe(err) + "\n  " + err.Error()
}

func isAPIFailure(err error) bool {
	var (
		apiErr   *errors.APIError
		resErr   *errors.ResourceError
		parseErr *errors.ParseError
	)
	return errors.As(err, &apiErr) ||
		errors.IsTimeout(err) ||
		errors.IsValidationError(err) ||
		(errors.As(err, &resErr) && resErr.Operation != "create") ||
		errors.As(err, &parseErr)
}
