// Package speakers provides the speakers command for querying the
// directory from the terminal.
package speakers

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/speakerdir/cmd/application"
	"github.com/agentstation/speakerdir/internal/cmd/output"
	"github.com/agentstation/speakerdir/internal/speakers"
)

// NewCommand creates the speakers command with its list and search subcommands.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "speakers",
		GroupID: "core",
		Short:   "Query the speaker directory",
		Long: `Query the speaker database directly, without starting the server.

Available subcommands:
  list     - every speaker, ordered by name
  search   - speakers matching a query and filters`,
		Example: `  speakerdir speakers list
  speakerdir speakers search cloud --filter Acme -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newSearchCommand(app))

	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every speaker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, app, func(ctx context.Context, s *speakers.Store) ([]speakers.Speaker, error) {
				return s.All(ctx)
			})
		},
	}
}

func newSearchCommand(app application.Application) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search speakers by text and filters",
		Long: `Search matches the query against name, company, topic and hook,
case-insensitively. Each --filter names a company; results are limited to
those companies. With no query and no filters the full list is returned.`,
		Example: `  speakerdir speakers search "data mesh"
  speakerdir speakers search cloud --filter Acme --filter Globex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := speakers.NewCriteria(strings.Join(args, " "), filters)
			app.Logger().Debug().
				Str("query", criteria.Query).
				Strs("filters", criteria.Filters).
				Msg("Searching speakers")

			return render(cmd, app, func(ctx context.Context, s *speakers.Store) ([]speakers.Speaker, error) {
				return s.Search(ctx, criteria)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Restrict results to this company (repeatable)")

	return cmd
}

// render opens the store, runs fetch and writes the result in the configured format.
func render(cmd *cobra.Command, app application.Application, fetch func(context.Context, *speakers.Store) ([]speakers.Speaker, error)) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := app.OpenStore(ctx)
	if err != nil {
		return err
	}
	list, err := fetch(ctx, store)
	_ = store.Close()
	if err != nil {
		return err
	}

	return output.FormatSpeakers(cmd.OutOrStdout(), list, output.DetectFormat(string(format)))
}
