package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todocli/internal/api"
	"todocli/internal/config"
	"todocli/internal/tui"
	"todocli/internal/ui"
)

// ErrUsage marks a malformed invocation (bad flag, bad argument,
// unknown subcommand). main exits 2 for these and 1 for everything
// else, so scripts can tell operator mistakes from backend failures.
var ErrUsage = errors.New("usage error")

// usageArgs folds cobra's positional validation into ErrUsage and
// surfaces it in the house style.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			ui.Fail(cmd.CommandPath() + ": " + err.Error())
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}

// App carries settings resolved from flags, env and .env.
type App struct {
	APIURL string
}

func (a *App) client() *api.Client { return api.New(a.APIURL) }

func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Todo list over a REST backend (CLI + TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "Buy milk"
  todo ls --group
  todo done 2
  todo rm 3

  # Run the bundled mock backend
  todo serve
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return tui.Run(app.client())
		},
	}

	// Anything that is not a known subcommand is a usage mistake.
	cmd.Args = func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}
		ui.Fail("unknown subcommand: " + args[0])
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		ui.Fail(c.CommandPath() + ": " + err.Error())
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", cfg.APIURL,
		"base URL of the todo backend")

	cmd.AddCommand(
		newLsCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newEditCmd(app),
		newRmCmd(app),
		newServeCmd(cfg),
	)
	return cmd
}
