package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/speakerdir/cmd/speakerdir/cmd/serve"
	"github.com/agentstation/speakerdir/cmd/speakerdir/cmd/speakers"
	"github.com/agentstation/speakerdir/internal/server"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateServeCommand())
	rootCmd.AddCommand(a.CreateSpeakersCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateServeCommand creates the serve command with app dependencies.
// The server config is read lazily so flags parsed by the root command apply.
func (a *App) CreateServeCommand() *cobra.Command {
	return serve.NewCommand(a, func() server.Config {
		return a.config.ServerConfig()
	})
}

// CreateSpeakersCommand creates the speakers command with app dependencies.
func (a *App) CreateSpeakersCommand() *cobra.Command {
	return speakers.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for speakerdir.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "speakerdir version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
