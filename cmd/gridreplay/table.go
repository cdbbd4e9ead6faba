package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/paddockhq/gridreplay/pkg/model"
	"github.com/paddockhq/gridreplay/pkg/race"
)

// printClassification renders the final replay order with sector and
// total times.
func printClassification(w io.Writer, entrants []race.Entrant) {
	if len(entrants) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Pos", "Driver", "S1", "S2", "S3", "Total"})
	for i, e := range entrants {
		tw.AppendRow(table.Row{
			i + 1,
			e.Name,
			formatSeconds(e.Sector1),
			formatSeconds(e.Sector2),
			formatSeconds(e.Sector3),
			formatSeconds(e.TotalTime),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	tw.Render()
}

// printStandings renders the season standings by final total.
func printStandings(w io.Writer, series []model.DriverSeries) {
	if len(series) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Pos", "Driver", "Points"})
	for i, s := range series {
		tw.AppendRow(table.Row{i + 1, s.Name, fmt.Sprintf("%.0f", s.Total())})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	tw.Render()
}

func formatSeconds(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
