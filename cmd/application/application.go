// Package application provides the application interface for speakerdir commands.
//
// The Application interface is the contract between the application layer and
// command and server implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            store, err := app.OpenStore(cmd.Context())
//	            if err != nil {
//	                return err
//	            }
//	            defer store.Close()
//	            // ... query store
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{DBPathValue: speakers.NewTestDB(t, speakers.SampleFixtures()...)}
//	cmd := NewCommand(mock)
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/speakerdir/internal/speakers"
)

// Application provides what commands and the HTTP server need from the app.
// The App struct from cmd/speakerdir/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// OpenStore opens a fresh read-only handle on the speaker database.
	// Callers own the returned store and must close it.
	OpenStore(ctx context.Context) (*speakers.Store, error)

	// DBPath returns the resolved database path.
	DBPath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
