package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oneview-community/ovapply/internal/config"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a playbook without contacting the appliance",
		RunE: func(cmd *cobra.Command, args []string) error {
			playbook, err := loadLocalPlaybook(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Playbook %q is valid (%d tasks).\n",
				playbook.Name, len(playbook.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to playbook file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func loadLocalPlaybook(path string) (*config.Playbook, error) {
	playbook, err := config.ParsePlaybook(path)
	if err != nil {
		return nil, err
	}
	if err := config.ValidatePlaybook(playbook); err != nil {
		return nil, err
	}
	return playbook, nil
}
