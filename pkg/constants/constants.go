// Package constants provides shared constants used throughout the entitymap codebase.
// This includes timeouts, resolver thresholds, display defaults and other
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the timeout for requests to the dashboard API.
	// The hosted API can take over a minute to wake from idle.
	DefaultHTTPTimeout = 120 * time.Second

	// ProbeTimeout bounds a single auth endpoint probe
	ProbeTimeout = 30 * time.Second

	// ShutdownTimeout is how long shutdown hooks may run after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached dashboard responses
	CacheTTL = 5 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 10 * time.Minute
)

// Resolver thresholds
const (
	// MaxValueLength excludes collected values of this many characters or more
	MaxValueLength = 150

	// MaxTypeHintLength bounds the "Type: ..." fallback built from a description
	MaxTypeHintLength = 50

	// MaxInfoLength bounds the "Info:" and "Detail:" fallbacks
	MaxInfoLength = 100

	// TypeHintWords is how many description words the "Type:" fallback uses
	TypeHintWords = 3
)

// Display defaults returned when an entity has nothing to show
const (
	// NoPrimaryValue is returned when no value was collected
	NoPrimaryValue = "No data available"

	// NoSecondaryValue is returned when fewer than two values were collected
	NoSecondaryValue = "No second value available"

	// NoDescription is returned when no narrative attribute is populated
	NoDescription = "No description available"
)

// Dashboard API defaults
const (
	// DefaultBaseURL is the hosted dashboard API
	DefaultBaseURL = "https://nit3213api.onrender.com"

	// DefaultCampus selects the "{campus}/auth" login path
	DefaultCampus = "sydney"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".entitymap"

	// EnvPrefix prefixes every environment variable read by viper
	EnvPrefix = "ENTITYMAP"
)
