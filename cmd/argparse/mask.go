package main

import (
	"fmt"

	"github.com/andrewpillar/args"
	"github.com/spf13/cobra"
)

func newMaskCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mask <signature>",
		Short: "Convert between signatures and packed masks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			d, err := args.ParseSignature(argv[0])

			if err != nil {
				return err
			}

			m, err := d.Mask()

			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "mask\t%s\n", m)
			fmt.Fprintf(w, "signature\t%s\n", d)

			for i, typ := range d.Types {
				req := "optional"

				if i < d.Min {
					req = "mandatory"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, typ, req)
			}
			return nil
		},
	}
}
