package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/paddockhq/gridreplay/pkg/config"
	"github.com/paddockhq/gridreplay/pkg/model"
	"github.com/paddockhq/gridreplay/pkg/playback"
	"github.com/paddockhq/gridreplay/pkg/points"
	"github.com/paddockhq/gridreplay/pkg/render"
	"github.com/paddockhq/gridreplay/pkg/replay"
)

// SeasonScreen is the championship page with the cumulative points
// chart embedded below the fold. While the progression animates, hover
// highlighting is suppressed; once it settles, pointing at a marker
// emphasizes that driver's line.
type SeasonScreen struct {
	cfg      config.Config
	title    string
	handle   *replay.PointsHandle
	chart    *points.Chart
	page     *Page
	avatars  *render.AvatarStore
	surfaceY float64
	surfaceH float64
	hover    string
	logger   *zap.Logger
}

// NewSeasonScreen mounts the progression over the given series.
func NewSeasonScreen(cfg config.Config, title string, series []model.DriverSeries, logger *zap.Logger) *SeasonScreen {
	surfaceW := float64(cfg.Window.Width) - 160
	surfaceH := 360.0
	surfaceY := float64(cfg.Window.Height) - 60

	roundCount := 0
	if len(series) > 0 {
		roundCount = len(series[0].Cumulative) - 1
	}
	chart := points.NewChart(points.Rect{X: 100, W: surfaceW, H: surfaceH}, roundCount, model.MaxTotal(series))

	ss := &SeasonScreen{
		cfg:      cfg,
		title:    title,
		chart:    chart,
		page:     NewPage(cfg.Window.Width, cfg.Window.Height, surfaceY+surfaceH+220),
		avatars:  render.NewAvatarStore(),
		surfaceY: surfaceY,
		surfaceH: surfaceH,
		logger:   logger,
	}
	ss.handle = replay.MountPoints(series, chart, replay.Options{
		Duration:     time.Duration(cfg.Points.DurationMs) * time.Millisecond,
		VisibleRatio: cfg.Points.VisibleRatio,
		Logger:       logger,
	})
	return ss
}

// Update scrolls the page, drives the playback, and resolves the hover
// target once the chart has settled.
func (ss *SeasonScreen) Update() error {
	ss.page.Update()

	if ss.handle.Hidden() {
		return nil
	}
	ratio := ss.page.VisibleRatio(ss.surfaceY, ss.surfaceH)
	ss.handle.Observe(ratio)
	ss.handle.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ss.hover = ""
		ss.handle.Replay()
	}

	ss.hover = ""
	if ss.handle.State() == playback.StateDone {
		mx, my := ebiten.CursorPosition()
		ss.hover = ss.markerAt(float64(mx), float64(my))
	}
	return nil
}

// markerAt returns the driver whose settled marker sits within reach of
// the cursor, in viewport coordinates.
func (ss *SeasonScreen) markerAt(x, y float64) string {
	offsetY := ss.page.ScreenY(ss.surfaceY) - ss.chart.Rect().Y
	const reach = 14.0
	for _, m := range ss.handle.SettledFrame().Markers {
		dx := m.At.X - x
		dy := m.At.Y + offsetY - y
		if math.Sqrt(dx*dx+dy*dy) <= reach {
			return m.Name
		}
	}
	return ""
}

// Draw renders the page chrome and the chart surface.
func (ss *SeasonScreen) Draw(screen *ebiten.Image) {
	screen.Fill(pageBgColor)

	render.DrawLabel(screen, ss.title, 60, ss.page.ScreenY(40), 2, headingColor)
	render.DrawLabel(screen, "Season progression — scroll down to watch the points race", 60, ss.page.ScreenY(80), 1, subTextColor)

	if ss.handle.Hidden() {
		render.DrawLabel(screen, "No scored rounds this season.", 60, ss.page.ScreenY(140), 1, subTextColor)
		return
	}

	// The chart was built in surface-local coordinates; shift to the
	// scrolled position by drawing into an offscreen surface.
	surface := ebiten.NewImage(ss.cfg.Window.Width, int(ss.surfaceH)+40)
	frame := ss.handle.Frame()
	if ss.handle.State() == playback.StateDone {
		frame = ss.handle.SettledFrame()
	}
	render.DrawPointsFrame(surface, frame, ss.chart, ss.avatars, ss.cfg.Display.ShowPhotos, ss.hover)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, ss.page.ScreenY(ss.surfaceY)-ss.chart.Rect().Y)
	screen.DrawImage(surface, op)

	if !ss.handle.Playing() {
		render.DrawLabel(screen, "press R to replay", 100, ss.page.ScreenY(ss.surfaceY+ss.surfaceH+48), 1, subTextColor)
	}
}

// Dispose releases the chart surface.
func (ss *SeasonScreen) Dispose() {
	ss.handle.Dispose()
}

// Handle exposes the mounted progression for the command layer.
func (ss *SeasonScreen) Handle() *replay.PointsHandle {
	return ss.handle
}
