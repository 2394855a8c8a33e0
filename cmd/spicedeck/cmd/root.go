package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicedeck/internal/ctxlog"
)

type globalFlags struct {
	logLevel  string
	logFormat string
	library   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "spicedeck",
		Short: "Build SPICE netlists from HCL circuit decks",
		Long: `spicedeck loads circuit descriptions written in HCL, renders them as
SPICE netlists and keeps a searchable library of device models.

Examples:
  spicedeck render amp.hcl -o amp.cir
  spicedeck check amp.hcl
  spicedeck bom amp.hcl -o amp.xlsx
  spicedeck model add bc547 npn bf=330 is=1.8e-14 --description "small signal"
  spicedeck model search switching`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(flags.logLevel, flags.logFormat, cmd.ErrOrStderr())
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format (text, json)")
	root.PersistentFlags().StringVar(&flags.library, "library", "spicedeck.db", "model library database")

	root.AddCommand(
		newRenderCmd(flags),
		newCheckCmd(flags),
		newBOMCmd(flags),
		newModelCmd(flags),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
