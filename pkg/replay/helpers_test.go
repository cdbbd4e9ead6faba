package replay

import (
	"github.com/paddockhq/gridreplay/pkg/points"
)

func pointsChart() *points.Chart {
	return points.NewChart(points.Rect{W: 400, H: 200}, 1, 25)
}
