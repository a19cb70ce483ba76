package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	fs "github.com/ungerik/go-fs"
	"golang.org/x/term"

	gridtable "github.com/domonda/go-gridtable"
	"github.com/domonda/go-gridtable/config"
	"github.com/domonda/go-gridtable/internal/logger"
	"github.com/domonda/go-gridtable/sqltable"
)

type options struct {
	columnsFile string
	dataFile    string
	encoding    string
	query       string
	postgres    string
	format      string
	sort        []string
	noColor     bool
	maxWidth    int
	logLevel    string
}

func (o *options) addTableFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.columnsFile, "columns", "c", "", "YAML file with the table configuration (required)")
	flags.StringVarP(&o.dataFile, "data", "d", "", "rows as JSON or YAML array of objects or as CSV with header line, by file extension")
	flags.StringVar(&o.encoding, "encoding", "", "character encoding of CSV data, detected if empty")
	flags.StringVarP(&o.query, "query", "q", "", "SELECT query for the rows, on table \"data\" of --data rows unless --postgres is set")
	flags.StringVar(&o.postgres, "postgres", "", "PostgreSQL URL the --query is run on, default from $GRIDTABLE_POSTGRES")
	flags.StringArrayVarP(&o.sort, "sort", "s", nil, "activate the header of a column key, repeat to cycle the direction")
	flags.BoolVar(&o.noColor, "no-color", false, "disable color output")
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:           "gridtable",
		Short:         "Render sortable tables from row data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			lgr := logger.Get(level)
			withValues := lgr.WithValues(logger.CommandKey, cmd.Name())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithLogger(ctx, &withValues))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "minimum level of JSON logs written to stderr: debug|info|warn|error")
	root.AddCommand(newRenderCmd(opts), newViewCmd(opts))
	return root
}

// loadEngine loads the table configuration and rows
// and applies the --sort activations in order.
func (o *options) loadEngine(ctx context.Context) (*gridtable.Engine, error) {
	if o.columnsFile == "" {
		return nil, fmt.Errorf("missing --columns file")
	}
	log := logger.FromContext(ctx)

	table, err := config.Load(ctx, fs.File(o.columnsFile))
	if err != nil {
		return nil, err
	}
	rows, err := o.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	engine, err := table.Engine(rows)
	if err != nil {
		return nil, err
	}
	engine = engine.WithLogger(log.WithName("engine"))
	for _, key := range o.sort {
		before := engine.SortState()
		after := engine.Activate(key)
		if before == after {
			log.Info("ignored --sort of unknown or not sortable column", "key", key)
		}
	}
	log.V(1).Info("loaded table", "rows", engine.NumRows(), "sort", engine.SortState().String())
	return engine, nil
}

func (o *options) loadRows(ctx context.Context) (rows []gridtable.Row, err error) {
	if o.dataFile != "" {
		rows, err = loadRows(ctx, fs.File(o.dataFile), o.encoding)
		if err != nil {
			return nil, err
		}
	}
	if o.query == "" {
		return rows, nil
	}

	postgres := o.postgres
	if postgres == "" {
		postgres = os.Getenv("GRIDTABLE_POSTGRES")
	}
	if postgres == "" {
		db := sqltable.NewTableDB("data", sqltable.NewTable(rows))
		defer db.Close()
		return sqltable.Query(ctx, db, o.query)
	}
	if o.dataFile != "" {
		return nil, fmt.Errorf("--data can't be combined with --postgres")
	}
	db, err := sqltable.OpenPostgres(ctx, postgres)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqltable.Query(ctx, db.DB, o.query)
}

// colorEnabled returns if ANSI styles should be written to out.
func (o *options) colorEnabled(out io.Writer) bool {
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "text", "html", "csv":
		return f, nil
	}
	return "", fmt.Errorf("invalid --format %q, expected text|html|csv", format)
}
