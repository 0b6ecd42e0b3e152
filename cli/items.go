package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/ui"
	"todolist/listclient"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			entries, err := c.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(strings.Join(renderLines(entries), "\n")))
			return nil
		},
	}
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add an item (words are joined with spaces)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			if err := c.KeyPress(cmd.Context(), "enter", strings.Join(args, " ")); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index|uuid>",
		Short: "Toggle the done flag of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEntry(cmd, app, args[0], func(c *listclient.Client, e listclient.Entry) error {
				if err := c.ToggleDone(cmd.Context(), e); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "toggled")
				return nil
			})
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index|uuid>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEntry(cmd, app, args[0], func(c *listclient.Client, e listclient.Entry) error {
				if err := c.RemoveItem(cmd.Context(), e); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "removed")
				return nil
			})
		},
	}
}

// withEntry loads the list, resolves ref and hands the entry to fn.
func withEntry(cmd *cobra.Command, app *App, ref string, fn func(*listclient.Client, listclient.Entry) error) error {
	c, err := app.client()
	if err != nil {
		return err
	}
	if _, err := c.Load(cmd.Context()); err != nil {
		return err
	}
	e, err := c.Find(ref)
	if err != nil {
		return err
	}
	if err := fn(c, e); err != nil {
		return err
	}
	return nil
}

func renderLines(entries []listclient.Entry) []string {
	done := 0
	for _, e := range entries {
		if e.Item.Done {
			done++
		}
	}

	lines := []string{
		ui.Header(done, len(entries)-done),
		ui.MutedStyle.Render(ui.ProgressBar(done, len(entries), 28)),
		"",
	}
	if len(entries) == 0 {
		return append(lines, ui.MutedStyle.Render("no items"))
	}

	for _, e := range entries {
		box, name := ui.MutedStyle.Render(ui.BoxUnchecked), e.Item.Name
		if e.Class() == "done" {
			box, name = ui.SuccessStyle.Render(ui.BoxChecked), ui.DoneStyle.Render(name)
		}
		if !e.HasDoneControl {
			box = " "
		}
		lines = append(lines, fmt.Sprintf("%2d. %s %s  %s", e.Index, box, name, ui.MutedStyle.Render(e.Item.UUID)))
	}
	return lines
}
