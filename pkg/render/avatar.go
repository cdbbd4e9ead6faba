package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AvatarStore loads driver photos lazily and never blocks the frame
// loop: the first request for a reference kicks off a background load
// and returns nil; subsequent frames poll until the image is ready. A
// load failure is permanent — the reference answers nil for the rest of
// playback and the caller falls back to the numeric badge.
type AvatarStore struct {
	mu      sync.Mutex
	entries map[string]*avatarEntry
	load    func(path string) (*ebiten.Image, error)
}

type avatarEntry struct {
	img    *ebiten.Image
	failed bool
	ready  bool
}

// NewAvatarStore creates a store loading from the filesystem.
func NewAvatarStore() *AvatarStore {
	return &AvatarStore{
		entries: make(map[string]*avatarEntry),
		load: func(path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			return img, err
		},
	}
}

// NewAvatarStoreWithLoader creates a store with an injected loader.
func NewAvatarStoreWithLoader(load func(path string) (*ebiten.Image, error)) *AvatarStore {
	return &AvatarStore{entries: make(map[string]*avatarEntry), load: load}
}

// Image returns the circular-clipped avatar for ref, or nil when ref is
// empty, still loading, or failed. Safe to call every frame.
func (s *AvatarStore) Image(ref string) *ebiten.Image {
	if ref == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[ref]
	if !ok {
		entry = &avatarEntry{}
		s.entries[ref] = entry
		go s.fetch(ref, entry)
	}
	if entry.ready {
		return entry.img
	}
	return nil
}

// Failed reports whether the reference has permanently failed to load.
func (s *AvatarStore) Failed(ref string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[ref]
	return ok && entry.failed
}

func (s *AvatarStore) fetch(ref string, entry *avatarEntry) {
	img, err := s.load(ref)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || img == nil {
		entry.failed = true
		entry.ready = true
		return
	}
	entry.img = clipCircle(img)
	entry.ready = true
}

// clipCircle returns a square copy of img with everything outside the
// inscribed circle made transparent.
func clipCircle(img *ebiten.Image) *ebiten.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	size := w
	if h < size {
		size = h
	}
	out := ebiten.NewImage(size, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(img.Bounds().Min.X), -float64(img.Bounds().Min.Y))
	out.DrawImage(img, op)

	r := float64(size) / 2
	clear := color.RGBA{0, 0, 0, 0}
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) - r + 0.5
			dy := float64(py) - r + 0.5
			if dx*dx+dy*dy > r*r {
				out.Set(px, py, clear)
			}
		}
	}
	return out
}
