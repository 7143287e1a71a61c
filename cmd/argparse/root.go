package main

import (
	"errors"

	"github.com/andrewpillar/args"
	"github.com/andrewpillar/args/internal/log"
	"github.com/andrewpillar/args/keyword"
	"github.com/spf13/cobra"
)

type options struct {
	table    string
	logLevel string
	logFile  string

	logger *log.Logger
}

func (o *options) setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(o.logLevel)

	if err != nil {
		return err
	}

	o.logger = log.NewFile("argparse", level, o.logFile, log.DefaultRotation)
	return nil
}

// parser returns a parser reporting errors through the logger.
func (o *options) parser() *args.Parser {
	logger := o.logger.Named("parse")

	return args.NewParser(args.ErrorHandler(func(arg int, msg string) {
		logger.Debug("arg %d - %s", arg, msg)
	}))
}

func (o *options) keywords() (*keyword.Table, error) {
	if o.table == "" {
		return nil, errors.New("no keyword table given, use --table")
	}

	t, err := keyword.Load(o.table, o.parser())

	if err != nil {
		return nil, err
	}

	o.logger.Debug("loaded %d keyword(s) from %s", t.Len(), o.table)
	return t, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "argparse",
		Short: "Parse typed argument lists",
		Long: `argparse parses comma separated argument lists against a type
descriptor, either given directly as a signature such as "2:uint,uint,uint"
or looked up by keyword in a YAML or TOML keyword table.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	root.PersistentFlags().StringVar(&opts.table, "table", "", "keyword table file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write logs to the given file")

	root.AddCommand(newParseCmd(opts), newKeywordsCmd(opts), newMaskCmd(opts))
	return root
}
