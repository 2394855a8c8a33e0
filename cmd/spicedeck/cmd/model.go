package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicedeck/internal/modellib"
	"github.com/edp1096/spicedeck/pkg/unit"
	"github.com/edp1096/spicedeck/pkg/util"
)

func newModelCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the device model library",
	}
	cmd.AddCommand(
		newModelAddCmd(flags),
		newModelListCmd(flags),
		newModelSearchCmd(flags),
		newModelRmCmd(flags),
	)
	return cmd
}

// withLibrary opens the library for the duration of fn.
func withLibrary(cmd *cobra.Command, flags *globalFlags, fn func(lib *modellib.Library) error) error {
	lib, err := modellib.Open(cmd.Context(), flags.library)
	if err != nil {
		return err
	}
	defer lib.Close()
	return fn(lib)
}

func newModelAddCmd(flags *globalFlags) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name> <type> [key=value...]",
		Short: "Add or replace a model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseAssignments(args[2:])
			if err != nil {
				return err
			}
			r := modellib.Record{
				Name:        args[0],
				Type:        args[1],
				Description: description,
				Params:      params,
			}
			return withLibrary(cmd, flags, func(lib *modellib.Library) error {
				return lib.Put(r)
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "free text used by search")
	return cmd
}

func newModelListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, flags, func(lib *modellib.Library) error {
				records, err := lib.List()
				if err != nil {
					return err
				}
				printRecords(cmd, records)
				return nil
			})
		},
	}
}

func newModelSearchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over names, types, descriptions and parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, flags, func(lib *modellib.Library) error {
				records, err := lib.Search(strings.Join(args, " "))
				if err != nil {
					return err
				}
				printRecords(cmd, records)
				return nil
			})
		},
	}
}

func newModelRmCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>...",
		Short: "Delete models",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, flags, func(lib *modellib.Library) error {
				for _, name := range args {
					if err := lib.Delete(name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func printRecords(cmd *cobra.Command, records []modellib.Record) {
	out := cmd.OutOrStdout()
	for _, r := range records {
		fmt.Fprintf(out, "%-12s %-5s %s\n", r.Name, r.Type, util.JoinDict(r.Params))
		if r.Description != "" {
			fmt.Fprintf(out, "%-12s %-5s %s\n", "", "", r.Description)
		}
	}
}

// parseAssignments reads key=value pairs. Plain numbers are stored as
// float64, SPICE literals such as 1k keep their text.
func parseAssignments(args []string) (map[string]any, error) {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", arg)
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			params[key] = f
			continue
		}
		u, err := unit.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", key, err)
		}
		params[key] = u.String()
	}
	return params, nil
}
