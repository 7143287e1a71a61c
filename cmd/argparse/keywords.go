package main

import (
	"fmt"

	"github.com/andrewpillar/args/keyword"
	"github.com/spf13/cobra"
)

func newKeywordsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := opts.keywords()

			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			t.Each(func(e keyword.Entry) bool {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Descriptor, e.Help)
				return true
			})
			return nil
		},
	}
}
