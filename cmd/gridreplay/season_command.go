package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/data"
	"github.com/paddockhq/gridreplay/pkg/game"
	"github.com/paddockhq/gridreplay/pkg/log"
	"github.com/paddockhq/gridreplay/pkg/ui"
)

func newSeasonCommand(cfg *config.Config) *cobra.Command {
	var inputFlag string
	var showPhotosFlag bool

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Replay a season's points progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Named("season")
			export, series, err := data.LoadSeason(inputFlag, logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("show-photos") {
				cfg.Display.ShowPhotos = showPhotosFlag
			}

			title := "Season " + export.Season
			screen := ui.NewSeasonScreen(*cfg, title, series, logger)
			defer screen.Dispose()

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title + " — " + title)
			if err := ebiten.RunGame(game.NewGame(cfg.Window.Width, cfg.Window.Height, screen)); err != nil {
				return err
			}

			printStandings(cmd.OutOrStdout(), series)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "assets/season.json", "Season export file")
	cmd.Flags().BoolVar(&showPhotosFlag, "show-photos", false, "Render driver photos on markers")
	return cmd
}
