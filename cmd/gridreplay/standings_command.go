package main

import (
	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/data"
	"github.com/paddockhq/gridreplay/pkg/log"
)

func newStandingsCommand(cfg *config.Config) *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the season standings without animating",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, series, err := data.LoadSeason(inputFlag, log.Named("standings"))
			if err != nil {
				return err
			}
			printStandings(cmd.OutOrStdout(), series)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "assets/season.json", "Season export file")
	return cmd
}
