package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRace(t *testing.T) {
	path := writeFile(t, "race.json", `{
		"round": 4,
		"name": "Round 4",
		"finishers": [
			{"driverName": "A", "sector1": 10, "sector2": 10, "sector3": 10, "position": 1, "number": 7},
			{"driverName": "B", "sector1": 9, "sector2": 10, "sector3": 11, "position": 2}
		]
	}`)

	export, finishers, err := LoadRace(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, export.Round)
	require.Len(t, finishers, 2)
	assert.Equal(t, "A", finishers[0].Name)
	assert.Equal(t, 7, finishers[0].Number)
	assert.Equal(t, 30.0, finishers[0].TotalTime)
	// Missing number falls back to the classified position.
	assert.Equal(t, 2, finishers[1].Number)
}

func TestLoadRaceDropsMalformedRows(t *testing.T) {
	path := writeFile(t, "race.json", `{
		"round": 1,
		"finishers": [
			{"driverName": "ok", "sector1": 10, "sector2": 10, "sector3": 10, "position": 1},
			{"driverName": "bad", "sector1": -1, "sector2": 10, "sector3": 10, "position": 2}
		]
	}`)

	_, finishers, err := LoadRace(path, nil)
	require.NoError(t, err)
	require.Len(t, finishers, 1)
	assert.Equal(t, "ok", finishers[0].Name)
}

func TestLoadRaceEmpty(t *testing.T) {
	path := writeFile(t, "race.json", `{"round": 1, "finishers": []}`)
	_, _, err := LoadRace(path, nil)
	assert.ErrorIs(t, err, ErrNoFinishers)
}

func TestLoadRaceMissingFile(t *testing.T) {
	_, _, err := LoadRace(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Error(t, err)
}

func TestLoadSeason(t *testing.T) {
	path := writeFile(t, "season.json", `{
		"season": "2026",
		"rounds": 2,
		"results": [
			{"driverName": "X", "round": 1, "points": 25},
			{"driverName": "X", "round": 2, "points": 18},
			{"driverName": "Y", "round": 1, "points": 10}
		],
		"drivers": [
			{"driverName": "X", "avatar": "x.png"}
		]
	}`)

	export, series, err := LoadSeason(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026", export.Season)
	require.Len(t, series, 2)
	assert.Equal(t, "X", series[0].Name)
	assert.Equal(t, []float64{0, 25, 43}, series[0].Cumulative)
	assert.Equal(t, "x.png", series[0].AvatarRef)
	assert.Equal(t, []float64{0, 10, 10}, series[1].Cumulative)
	assert.Empty(t, series[1].AvatarRef)
}

func TestLoadSeasonParseError(t *testing.T) {
	path := writeFile(t, "season.json", `{not json`)
	_, _, err := LoadSeason(path, nil)
	assert.Error(t, err)
}
