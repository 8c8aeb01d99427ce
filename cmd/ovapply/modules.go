package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oneview-community/ovapply/internal/module"
)

func newModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the registered configuration modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range module.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}
