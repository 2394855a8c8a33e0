package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicedeck/internal/bom"
	"github.com/edp1096/spicedeck/internal/ctxlog"
)

func newBOMCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "bom <deck.hcl>",
		Short: "Export the element list of a deck as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := loadDeck(ctx, flags, args[0], false)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := bom.Write(f, c); err != nil {
				f.Close()
				return err
			}
			ctxlog.FromContext(ctx).Info("BOM written.", "path", output, "rows", len(bom.Rows(c)))
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "xlsx output file")
	cmd.MarkFlagRequired("output")
	return cmd
}
