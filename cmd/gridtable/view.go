package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/domonda/go-gridtable/termtable"
	"github.com/domonda/go-gridtable/tui"
)

func newViewCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the table interactively and sort by activating headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				return fmt.Errorf("view needs a terminal, use render for redirected output")
			}
			ctx := cmd.Context()
			engine, err := opts.loadEngine(ctx)
			if err != nil {
				return err
			}
			noColor := !opts.colorEnabled(os.Stdout)
			engine = engine.WithStatusRenderer(termtable.BadgeStatusRenderer{NoColor: noColor})
			model := tui.New(ctx, engine, termtable.NewWriter().WithNoColor(noColor))

			var progOpts []tea.ProgramOption
			if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
				progOpts = append(progOpts, tea.WithWindowSize(w, h))
			}
			return tui.Run(ctx, model, progOpts...)
		},
	}
	opts.addTableFlags(cmd.Flags())
	return cmd
}
