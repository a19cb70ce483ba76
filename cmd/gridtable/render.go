package main

import (
	"github.com/spf13/cobra"

	"github.com/domonda/go-gridtable/csvtable"
	"github.com/domonda/go-gridtable/htmltable"
	"github.com/domonda/go-gridtable/termtable"
)

func newRenderCmd(opts *options) *cobra.Command {
	var caption string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the table as text, HTML or CSV to stdout",
		Example: "  gridtable render -c transactions.yaml -d transactions.json --sort amount_cents\n" +
			"  gridtable render -c transactions.yaml -d export.csv --encoding 'Windows 1252' --format html",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseFormat(opts.format)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			engine, err := opts.loadEngine(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case "html":
				engine = engine.WithStatusRenderer(htmltable.BadgeStatusRenderer{})
				return htmltable.NewWriter().
					WithCaption(caption).
					Write(ctx, out, engine)

			case "csv":
				return csvtable.NewWriter().Write(ctx, out, engine)

			default:
				noColor := !opts.colorEnabled(out)
				engine = engine.WithStatusRenderer(termtable.BadgeStatusRenderer{NoColor: noColor})
				return termtable.NewWriter().
					WithNoColor(noColor).
					WithMaxWidth(opts.maxWidth).
					Write(ctx, out, engine)
			}
		},
	}
	opts.addTableFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text|html|csv")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "truncate text cells wider than this, 0 disables")
	cmd.Flags().StringVar(&caption, "caption", "", "HTML table caption")
	return cmd
}
