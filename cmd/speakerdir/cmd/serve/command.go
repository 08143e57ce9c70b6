// Package serve provides the serve command that runs the speaker directory
// HTTP API and static frontend.
package serve

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/speakerdir/cmd/application"
	"github.com/agentstation/speakerdir/internal/server"
)

// NewCommand creates the serve command. cfgFn supplies the configured
// server settings; flags set on the command line override them.
func NewCommand(app application.Application, cfgFn func() server.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Short:   "Serve the speaker API and frontend",
		Long: `Start the HTTP server for the speaker directory.

Endpoints:
  GET  /                         - index.html from the static directory
  POST /api/speakers/search      - search by free text and filters
  GET  /api/speakers/all         - every speaker, ordered by name
  GET  /api/debug/info           - database statistics
  GET  /api/debug/sample/{id}    - raw record and hook diagnostics
  GET  /api/test                 - schema probe
  GET  /health                   - health check
  GET  /api/openapi.json         - OpenAPI document

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  # Start on the configured port (default 5000)
  speakerdir serve

  # Custom port and database
  speakerdir serve --port 8080 --db ./prelegenci.db

  # Cache search responses for a minute
  speakerdir serve --cache-ttl 1m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := applyFlags(cmd, cfgFn())
			if err != nil {
				return err
			}
			return run(cmd, app, cfg)
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Server port (default from PORT or 5000)")
	cmd.Flags().String("host", "", "Bind address (default 0.0.0.0)")
	cmd.Flags().String("static-dir", "", "Directory holding index.html and assets")
	cmd.Flags().Duration("cache-ttl", 0, "Cache TTL for speaker responses (0 disables)")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated, default any)")
	cmd.Flags().Duration("read-timeout", 0, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", 0, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", 0, "HTTP idle timeout")
	cmd.Flags().Duration("shutdown-timeout", 0, "Graceful shutdown timeout")

	return cmd
}

// applyFlags overrides cfg with the flags that were set explicitly.
func applyFlags(cmd *cobra.Command, cfg server.Config) (server.Config, error) {
	fs := cmd.Flags()

	if fs.Changed("port") {
		cfg.Port, _ = fs.GetInt("port")
	}
	if fs.Changed("host") {
		cfg.Host, _ = fs.GetString("host")
	}
	if fs.Changed("static-dir") {
		cfg.StaticDir, _ = fs.GetString("static-dir")
	}
	if fs.Changed("cache-ttl") {
		cfg.CacheTTL, _ = fs.GetDuration("cache-ttl")
	}
	if fs.Changed("cors-origins") {
		cfg.CORSOrigins, _ = fs.GetStringSlice("cors-origins")
	}

	durations := map[string]*time.Duration{
		"read-timeout":     &cfg.ReadTimeout,
		"write-timeout":    &cfg.WriteTimeout,
		"idle-timeout":     &cfg.IdleTimeout,
		"shutdown-timeout": &cfg.ShutdownTimeout,
	}
	for name, dst := range durations {
		if fs.Changed(name) {
			*dst, _ = fs.GetDuration(name)
		}
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, app application.Application, cfg server.Config) error {
	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🚀 Speaker directory on http://%s\n", cfg.Addr())
	fmt.Fprintf(out, "  📂 Static files: %s\n", cfg.StaticDir)
	fmt.Fprintf(out, "  🗄  Database:     %s\n", app.DBPath())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := srv.Run(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ Server stopped gracefully")
	return nil
}
