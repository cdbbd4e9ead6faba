package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/model"
	"github.com/paddockhq/gridreplay/pkg/render"
	"github.com/paddockhq/gridreplay/pkg/replay"
)

var (
	pageBgColor   = color.RGBA{18, 18, 24, 255}
	headingColor  = color.RGBA{240, 240, 240, 255}
	subTextColor  = color.RGBA{150, 150, 160, 255}
	surfaceBg     = color.RGBA{28, 28, 36, 255}
)

// RaceScreen is the round results page with the podium replay surface
// embedded partway down, so the replay animates the first time it is
// scrolled into view. R restarts playback.
type RaceScreen struct {
	cfg      config.Config
	title    string
	handle   *replay.RaceHandle
	page     *Page
	layout   render.TrackLayout
	surfaceY float64
	logger   *zap.Logger
}

// NewRaceScreen mounts the replay over the given finishers.
func NewRaceScreen(cfg config.Config, title string, finishers []model.Finisher, logger *zap.Logger) *RaceScreen {
	surfaceW := float64(cfg.Window.Width) - 120
	surfaceH := 70.0 * 3
	surfaceY := float64(cfg.Window.Height) - 80 // starts mostly below the fold

	rs := &RaceScreen{
		cfg:      cfg,
		title:    title,
		surfaceY: surfaceY,
		page:     NewPage(cfg.Window.Width, cfg.Window.Height, surfaceY+surfaceH+220),
		logger:   logger,
	}
	rs.handle = replay.MountRace(finishers, replay.Options{
		Duration:     time.Duration(cfg.Race.DurationMs) * time.Millisecond,
		LaneStep:     cfg.Race.LaneStep,
		VisibleRatio: cfg.Race.VisibleRatio,
		Logger:       logger,
	})
	rs.layout = render.TrackLayout{
		X:     60,
		W:     surfaceW,
		H:     surfaceH,
		Lanes: rs.handle.Lanes(),
	}
	return rs
}

// Update scrolls the page, feeds surface visibility to the trigger and
// advances the active playback.
func (rs *RaceScreen) Update() error {
	rs.page.Update()

	if !rs.handle.Hidden() {
		ratio := rs.page.VisibleRatio(rs.surfaceY, rs.layout.H)
		rs.handle.Observe(ratio)
		rs.handle.Tick()

		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			rs.handle.Replay()
		}
	}
	return nil
}

// Draw renders the page chrome and, unless hidden, the replay surface.
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	screen.Fill(pageBgColor)

	render.DrawLabel(screen, rs.title, 60, rs.page.ScreenY(40), 2, headingColor)
	render.DrawLabel(screen, "Top 3 finish — scroll down to watch the replay", 60, rs.page.ScreenY(80), 1, subTextColor)

	if rs.handle.Hidden() {
		render.DrawLabel(screen, "No timed finishers for this round.", 60, rs.page.ScreenY(140), 1, subTextColor)
		return
	}

	layout := rs.layout
	layout.Y = rs.page.ScreenY(rs.surfaceY)

	// Surface backdrop slightly larger than the track band
	pad := 16.0
	backdrop := ebiten.NewImage(int(layout.W+2*pad), int(layout.H+2*pad))
	backdrop.Fill(surfaceBg)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(layout.X-pad, layout.Y-pad)
	screen.DrawImage(backdrop, op)

	render.DrawRaceFrame(screen, layout, rs.handle.Frame())

	hint := "press R to replay"
	if rs.handle.Playing() {
		hint = ""
	}
	if hint != "" {
		render.DrawLabel(screen, hint, layout.X, layout.Y+layout.H+24, 1, subTextColor)
	}
}

// Dispose releases the replay surface.
func (rs *RaceScreen) Dispose() {
	rs.handle.Dispose()
}

// Handle exposes the mounted replay for the command layer.
func (rs *RaceScreen) Handle() *replay.RaceHandle {
	return rs.handle
}
