package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/data"
	"github.com/paddockhq/gridreplay/pkg/game"
	"github.com/paddockhq/gridreplay/pkg/log"
	"github.com/paddockhq/gridreplay/pkg/ui"
)

func newRaceCommand(cfg *config.Config) *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "race",
		Short: "Replay a round's podium finish",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Named("race")
			export, finishers, err := data.LoadRace(inputFlag, logger)
			if err != nil {
				return err
			}

			title := export.Name
			if title == "" {
				title = fmt.Sprintf("Round %d", export.Round)
			}
			screen := ui.NewRaceScreen(*cfg, title, finishers, logger)
			defer screen.Dispose()

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title + " — " + title)
			if err := ebiten.RunGame(game.NewGame(cfg.Window.Width, cfg.Window.Height, screen)); err != nil {
				return err
			}

			printClassification(cmd.OutOrStdout(), screen.Handle().Classification())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "assets/race.json", "Race export file")
	return cmd
}
