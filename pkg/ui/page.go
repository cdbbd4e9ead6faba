package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Page is a vertically scrollable results page. Replay surfaces are
// embedded at fixed offsets inside it; the page reports how much of a
// surface is inside the viewport so visibility triggers can gate on
// scroll position.
type Page struct {
	viewportW int
	viewportH int
	height    float64
	scrollY   float64
}

// NewPage creates a page of the given total height behind a viewport.
func NewPage(viewportW, viewportH int, height float64) *Page {
	return &Page{viewportW: viewportW, viewportH: viewportH, height: height}
}

// Update applies mouse-wheel scrolling, clamped to the page bounds.
func (p *Page) Update() {
	_, wheelY := ebiten.Wheel()
	p.scrollY -= wheelY * 24
	max := p.height - float64(p.viewportH)
	if max < 0 {
		max = 0
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
	if p.scrollY > max {
		p.scrollY = max
	}
}

// ScreenY converts a page Y offset to a viewport Y.
func (p *Page) ScreenY(pageY float64) float64 {
	return pageY - p.scrollY
}

// VisibleRatio returns the fraction of a surface of the given height at
// the given page offset that is currently inside the viewport.
func (p *Page) VisibleRatio(pageY, surfaceH float64) float64 {
	if surfaceH <= 0 {
		return 0
	}
	top := p.ScreenY(pageY)
	bottom := top + surfaceH
	visTop := top
	if visTop < 0 {
		visTop = 0
	}
	visBottom := bottom
	if visBottom > float64(p.viewportH) {
		visBottom = float64(p.viewportH)
	}
	if visBottom <= visTop {
		return 0
	}
	return (visBottom - visTop) / surfaceH
}
