package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/andrewpillar/args"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	var (
		sig string
		kw  string
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] <input>",
		Short: "Parse an argument list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			if (sig == "") == (kw == "") {
				return errors.New("exactly one of --sig or --keyword is required")
			}

			var (
				d args.Descriptor
				l *args.List
			)

			if kw != "" {
				t, err := opts.keywords()

				if err != nil {
					return err
				}

				e, ok := t.Lookup(kw)

				if !ok {
					return fmt.Errorf("unknown keyword %s", kw)
				}

				d = e.Descriptor

				if l, err = t.Parse(kw, argv[0]); err != nil {
					return err
				}
			} else {
				var err error

				if d, err = args.ParseSignature(sig); err != nil {
					return err
				}

				if l, err = opts.parser().Parse(argv[0], d); err != nil {
					return err
				}
			}

			opts.logger.Info("parsed %d/%d argument(s) against %s", l.N, d.Max(), d)

			printList(cmd.OutOrStdout(), d, l)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sig, "sig", "s", "", "argument signature, for example 1:uint,time")
	cmd.Flags().StringVarP(&kw, "keyword", "k", "", "keyword to look up in the table")
	return cmd
}

// describe renders the value of a parsed argument in terms of the type that
// was declared for it.
func describe(declared args.Type, a args.Arg) string {
	switch declared {
	case args.Time:
		return fmt.Sprintf("%d (%s)", a.Uint, time.Duration(a.Uint)*time.Millisecond)
	case args.Size:
		return fmt.Sprintf("%d (%s)", a.Uint, humanize.IBytes(a.Uint))
	}

	if a.Type == args.Str || declared.Deferred() {
		return fmt.Sprintf("%q", a.Str)
	}
	return a.String()
}

func printList(w io.Writer, d args.Descriptor, l *args.List) {
	for i, a := range l.Valid() {
		declared := d.TypeAt(i)

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, declared, a.Type, describe(declared, a))
	}

	for i := l.N; i < d.Max(); i++ {
		fmt.Fprintf(w, "%d\t%s\t-\t(absent)\n", i, d.TypeAt(i))
	}
}
