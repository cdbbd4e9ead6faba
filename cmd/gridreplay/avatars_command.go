package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/data"
	"github.com/paddockhq/gridreplay/pkg/log"
	"github.com/paddockhq/gridreplay/pkg/render"
)

func newAvatarsCommand(cfg *config.Config) *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "avatars",
		Short: "Generate placeholder portraits for drivers without photos",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, series, err := data.LoadSeason(inputFlag, log.Named("avatars"))
			if err != nil {
				return err
			}
			names := make([]string, 0, len(series))
			for _, s := range series {
				names = append(names, s.Name)
			}
			written, err := render.WriteHeadshots(cfg.Display.AvatarDir, names)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d portraits to %s\n", len(written), cfg.Display.AvatarDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "assets/season.json", "Season export file")
	return cmd
}
