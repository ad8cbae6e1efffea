package constants_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agentstation/entitymap/pkg/constants"
)

// Example_timeouts demonstrates timeout constants
func Example_timeouts() {
	// HTTP client with default timeout
	client := &http.Client{
		Timeout: constants.DefaultHTTPTimeout,
	}
	fmt.Printf("HTTP timeout: %v\n", client.Timeout)

	// Context bounding a single probe
	ctx, cancel := context.WithTimeout(context.Background(), constants.ProbeTimeout)
	defer cancel()
	_ = ctx

	fmt.Printf("Probe timeout: %v\n", constants.ProbeTimeout)
	// Output:
	// HTTP timeout: 2m0s
	// Probe timeout: 30s
}

// Example_defaults demonstrates the display defaults
func Example_defaults() {
	fmt.Println(constants.NoPrimaryValue)
	fmt.Println(constants.NoSecondaryValue)
	fmt.Println(constants.NoDescription)
	// Output:
	// No data available
	// No second value available
	// No description available
}
