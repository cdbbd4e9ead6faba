package main

import (
	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/log"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:           "gridreplay",
		Short:         "Racing league replay viewer",
		Long:          "Replays round podium finishes and season points progressions from league result exports.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag {
				log.InitDevelopmentLogger()
			}
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newRaceCommand(&cfg))
	rootCmd.AddCommand(newSeasonCommand(&cfg))
	rootCmd.AddCommand(newStandingsCommand(&cfg))
	rootCmd.AddCommand(newAvatarsCommand(&cfg))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
