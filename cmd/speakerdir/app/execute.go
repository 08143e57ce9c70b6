package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/speakerdir/internal/cmd/output"
)

// flags holds the persistent flag values until setupCommand applies them.
type flags struct {
	configFile string
	verbose    bool
	quiet      bool
	noColor    bool
	format     string
	logLevel   string
	dbPath     string
}

// Execute runs the speakerdir CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     "speakerdir",
		Short:   "Conference speaker directory",
		Version: a.version,
		Long: `Speakerdir serves a searchable directory of conference speakers
from a read-only SQLite database.

Run "speakerdir serve" to start the HTTP API and frontend, or use
"speakerdir speakers" to query the directory from the terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupCommand(cmd, f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (default is $HOME/.speakerdir.yaml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	pf.StringVarP(&f.format, "format", "o", "", "output format: table, json, yaml, wide")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.StringVar(&f.dbPath, "db", "", "path to the speaker database (default prelegenci.db next to the executable)")

	rootCmd.SetVersionTemplate("speakerdir {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, f *flags) error {
	if f.configFile != "" {
		config, err := loadConfig(viper.New(), f.configFile, a.config.BaseDir)
		if err != nil {
			return err
		}
		a.config = config
	}

	if _, err := output.ParseFormat(f.format); err != nil {
		return err
	}

	if err := a.config.UpdateFromFlags(f.verbose, f.quiet, f.noColor, f.format, f.logLevel, f.dbPath); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("db_path", a.config.DBPath).
		Str("config_file", a.config.ConfigFile).
		Msg("Configuration loaded")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
