// Package constants provides shared constants used throughout speakerdir.
// This includes server defaults, timeouts, truncation limits and the
// fallback strings used when shaping speaker records.
package constants

import "time"

// Server defaults
const (
	// DefaultPort is the port used when PORT is not set
	DefaultPort = 5000

	// DefaultHost binds all interfaces
	DefaultHost = "0.0.0.0"

	// DefaultDBFile is the SQLite file name, resolved next to the executable
	DefaultDBFile = "prelegenci.db"

	// IndexFile is served for GET /
	IndexFile = "index.html"
)

// Timeout constants
const (
	// ReadTimeout is the HTTP server read timeout
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the HTTP server write timeout
	WriteTimeout = 30 * time.Second

	// IdleTimeout is the HTTP server keep-alive timeout
	IdleTimeout = 120 * time.Second

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout = 5 * time.Second
)

// Limits
const (
	// MaxOpportunities caps the parsed opportunity list
	MaxOpportunities = 5

	// HookSampleLimit is how many hook samples /api/debug/info returns
	HookSampleLimit = 3

	// HookSamplePreview is the truncation length for hook samples
	HookSamplePreview = 100

	// HookRowPreview is the truncation length for /api/debug/sample previews
	HookRowPreview = 200

	// MaxRequestBody bounds the search request body (1 MiB)
	MaxRequestBody = 1 << 20
)

// Fallback strings used when shaping speaker records.
const (
	// FallbackCompany replaces a NULL or empty company
	FallbackCompany = "Independent expert"

	// DescriptionPrefix precedes the topic when a speaker has no hook
	DescriptionPrefix = "Expert in the field: "

	// Ellipsis marks truncated previews
	Ellipsis = "..."
)

// DefaultOpportunities is returned when the opportunities column is empty.
var DefaultOpportunities = []string{"IT consulting", "System implementations", "Software development"}

// BlankOpportunities is returned when the opportunities column holds only delimiters and whitespace.
var BlankOpportunities = []string{"IT consulting", "System implementations"}
