package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print the sample configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return nil
		},
	})

	var initPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample configuration to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteSample(initPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initPath)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&initPath, "output", "o", "gridreplay.toml", "Destination path")
	cmd.AddCommand(initCmd)

	return cmd
}
