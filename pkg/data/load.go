// Package data reads league result exports from disk and normalizes
// them into replay inputs. It stands in for the site's data-access
// layer: read-only, no caching, malformed rows dropped with a warning
// before they can reach a shared scale.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/paddockhq/gridreplay/pkg/model"
)

var ErrNoFinishers = errors.New("no finishers in race export")

// RaceExport is the on-disk shape of a single round's podium export.
type RaceExport struct {
	Round     int           `json:"round"`
	Name      string        `json:"name"`
	Finishers []FinisherRow `json:"finishers"`
}

// FinisherRow is one exported podium entry.
type FinisherRow struct {
	DriverName string  `json:"driverName"`
	Sector1    float64 `json:"sector1"`
	Sector2    float64 `json:"sector2"`
	Sector3    float64 `json:"sector3"`
	Position   int     `json:"position"`
	Avatar     string  `json:"avatar"`
	Number     int     `json:"number"`
}

// SeasonExport is the on-disk shape of a season's points export.
type SeasonExport struct {
	Season  string      `json:"season"`
	Rounds  int         `json:"rounds"`
	Results []ScoreRow  `json:"results"`
	Drivers []DriverRow `json:"drivers"`
}

// ScoreRow is one driver's points for one round.
type ScoreRow struct {
	DriverName string  `json:"driverName"`
	Round      int     `json:"round"`
	Points     float64 `json:"points"`
}

// DriverRow carries per-driver presentation data.
type DriverRow struct {
	DriverName string `json:"driverName"`
	Avatar     string `json:"avatar"`
}

// LoadRace reads a race export and returns the normalized finisher
// list in export order. Rows with non-finite or negative sectors are
// dropped with a warning rather than propagated.
func LoadRace(path string, logger *zap.Logger) (RaceExport, []model.Finisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var export RaceExport
	raw, err := os.ReadFile(path)
	if err != nil {
		return export, nil, fmt.Errorf("read race export %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &export); err != nil {
		return export, nil, fmt.Errorf("parse race export %s: %w", path, err)
	}
	if len(export.Finishers) == 0 {
		return export, nil, ErrNoFinishers
	}

	finishers := make([]model.Finisher, 0, len(export.Finishers))
	for i, row := range export.Finishers {
		f := model.NewFinisher(row.DriverName, row.Sector1, row.Sector2, row.Sector3, row.Position, i)
		f.AvatarRef = row.Avatar
		if row.Number != 0 {
			f.Number = row.Number
		}
		if !f.Valid() {
			logger.Warn("dropping finisher with malformed sector times",
				zap.String("driver", row.DriverName),
				zap.Int("round", export.Round))
			continue
		}
		finishers = append(finishers, f)
	}
	return export, finishers, nil
}

// LoadSeason reads a season export and folds it into cumulative series
// ordered by final standing. Avatar references from the driver rows are
// attached by name.
func LoadSeason(path string, logger *zap.Logger) (SeasonExport, []model.DriverSeries, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var export SeasonExport
	raw, err := os.ReadFile(path)
	if err != nil {
		return export, nil, fmt.Errorf("read season export %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &export); err != nil {
		return export, nil, fmt.Errorf("parse season export %s: %w", path, err)
	}

	scores := make([]model.RoundScore, 0, len(export.Results))
	for _, row := range export.Results {
		if math.IsNaN(row.Points) || math.IsInf(row.Points, 0) {
			logger.Warn("dropping score with non-finite points",
				zap.String("driver", row.DriverName),
				zap.Int("round", row.Round))
			continue
		}
		scores = append(scores, model.RoundScore{
			DriverName: row.DriverName,
			Round:      row.Round,
			Points:     row.Points,
		})
	}

	series := model.BuildSeries(scores, export.Rounds)

	avatars := lo.SliceToMap(export.Drivers, func(d DriverRow) (string, string) {
		return d.DriverName, d.Avatar
	})
	for i := range series {
		series[i].AvatarRef = avatars[series[i].Name]
	}
	return export, series, nil
}
