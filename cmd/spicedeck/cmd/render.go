package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicedeck/internal/ctxlog"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <deck.hcl>",
		Short: "Render a deck as a SPICE netlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := loadDeck(ctx, flags, args[0], false)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = c.WriteTo(cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if _, err := c.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			ctxlog.FromContext(ctx).Info("Netlist written.", "path", output)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
