package dashboard

import (
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/agentstation/entitymap/pkg/errors"
)

// User-facing hints for the failures a login or dashboard fetch can hit.
const (
	HintBlankCredentials = "Please enter both username and password"
	HintUnauthorized     = "Invalid credentials. Check your first name and student ID format (s12345678)"
	HintNotFound         = "API endpoint not found. Please try again later"
	HintServerError      = "Server error. Please try again later"
	HintTimeout          = "Connection timeout. The server might be slow. Please try again."
	HintUnresolvedHost   = "Network connection error. Check your internet connection and try again."
	HintRefused          = "Cannot connect to server. Please check your internet connection."
	HintCanceled         = "Request canceled"
)

// Describe turns an error from this package into a one-line hint for
// the user. It returns "" for a nil error.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	if errors.IsValidationError(err) {
		var v *errors.ValidationError
		if errors.As(err, &v) && v.Field == "keypass" {
			return "No keypass received. Log in first"
		}
		return HintBlankCredentials
	}

	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			return HintUnauthorized
		case apiErr.StatusCode == http.StatusNotFound:
			return HintNotFound
		case apiErr.StatusCode >= http.StatusInternalServerError:
			return HintServerError
		default:
			return fmt.Sprintf("Request failed (%d). Please check your credentials.", apiErr.StatusCode)
		}
	}

	if errors.IsTimeout(err) {
		return HintTimeout
	}
	if errors.IsCanceled(err) {
		return HintCanceled
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return HintUnresolvedHost
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return HintRefused
	}

	var resErr *errors.ResourceError
	if errors.As(err, &resErr) && resErr.Resource == "keypass" {
		return "Login succeeded but the server returned no keypass"
	}

	var parseErr *errors.ParseError
	if errors.As(err, &parseErr) {
		return "Unexpected response from server: " + parseErr.Message
	}

	return "Network error: " + err.Error()
}
