package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/objectid/version"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered object types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tNAME\tKIND")
			for _, def := range a.codec.Registry().Definitions() {
				kind := "immutable"
				if def.Mutable {
					kind = "mutable"
				}
				fmt.Fprintf(w, "0x%02x\t%s\t%s\n", uint8(def.Tag), def.Name, kind)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		// Needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			if info.GoVersion != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info.GoVersion)
			}
		},
	}
}
