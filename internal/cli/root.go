package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"football-client/internal/config"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is stamped at build time.
var Version = "dev"

// App holds the state shared by the command tree of one invocation.
type App struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	root       rootOptions
}

// NewApp builds an App that writes results to stdout and diagnostics to stderr.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
	}
}

// NewRootCmd creates the root command with the get and all subcommands.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "football",
		Short: "Query football leagues and countries with local caching",
		Long: `football retrieves league and country reference data from API-Football.

Results are cached under the data directory (JSON, always) and also written in the
requested output format. Later runs are served from the cache without network access.

Examples:
  football get league 39
  football get league "Premier League" --serializer tsv
  football get country GB
  football all countries --serializer yaml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	a.root.bind(cmd.PersistentFlags())
	cmd.AddCommand(a.newGetCmd(), a.newAllCmd())
	return cmd
}

// Run executes the command tree with args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd := a.NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// Execute runs the CLI against the process arguments and standard streams.
func Execute(ctx context.Context) int {
	return NewApp(os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
}
