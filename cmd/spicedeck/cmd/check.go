package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicedeck/pkg/netlist"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <deck.hcl>",
		Short: "Load a deck strictly and print its node summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadDeck(cmd.Context(), flags, args[0], true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, sub := range c.SubCircuits() {
				fmt.Fprintf(out, "subckt %s (%s)\n", sub.Name(), strings.Join(sub.ExternalNodes(), " "))
				printNodes(cmd, sub.Netlist)
			}
			fmt.Fprintf(out, "circuit %s\n", c.Title())
			printNodes(cmd, c.Netlist)
			return nil
		},
	}
}

func printNodes(cmd *cobra.Command, n *netlist.Netlist) {
	out := cmd.OutOrStdout()
	for _, node := range n.Nodes() {
		marker := ""
		if node.Name() == n.Ground() {
			marker = " (ground)"
		}
		fmt.Fprintf(out, "  %-12s %s%s\n", node.Name(), strings.Join(node.Elements(), " "), marker)
	}
}
