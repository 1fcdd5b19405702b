package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"todocli/internal/api"
	"todocli/internal/model"
	"todocli/internal/ui"
)

func newLsCmd(app *App) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.client().List(cmd.Context())
			if err != nil {
				ui.Fail("ls: " + err.Error())
				return err
			}
			printList(items, group)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new item (title can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				ui.Fail("add: empty title")
				return ErrUsage
			}
			created, err := app.client().Create(cmd.Context(), title)
			if err != nil {
				ui.Fail("add: " + err.Error())
				return err
			}
			ui.OK("added " + created.ID.String())
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for item at 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveIndex(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			completed := !it.Completed
			if _, err := app.client().Update(cmd.Context(), it.ID, api.Patch{Completed: &completed}); err != nil {
				ui.Fail("done: " + err.Error())
				return err
			}
			ui.OK("toggled")
			return nil
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <title...>",
		Short: "Rename item at 1-based index",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveIndex(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			title := strings.TrimSpace(strings.Join(args[1:], " "))
			if title == "" {
				ui.Fail("edit: empty title")
				return ErrUsage
			}
			if title == it.Title {
				ui.OK("unchanged")
				return nil
			}
			if _, err := app.client().Update(cmd.Context(), it.ID, api.Patch{Title: &title}); err != nil {
				ui.Fail("edit: " + err.Error())
				return err
			}
			ui.OK("renamed")
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove item at 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := resolveIndex(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.client().Remove(cmd.Context(), it.ID); err != nil {
				ui.Fail("rm: " + err.Error())
				return err
			}
			ui.OK("removed")
			return nil
		},
	}
}

// resolveIndex maps a user-facing 1-based list position to the record
// behind it. The index is only as fresh as the List round trip it rides
// on, which is fine for a human at a prompt.
func resolveIndex(ctx context.Context, app *App, arg string) (model.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail("not a number: " + arg)
		return model.Item{}, ErrUsage
	}
	items, err := app.client().List(ctx)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return model.Item{}, err
	}
	if n < 1 || n > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), n))
		ui.Hint("Hint: run `todo ls` to see valid indexes")
		return model.Item{}, ErrUsage
	}
	return items[n-1], nil
}
