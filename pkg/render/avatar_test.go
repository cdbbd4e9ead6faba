package render

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestAvatarStoreEmptyRefIsNil(t *testing.T) {
	s := NewAvatarStoreWithLoader(func(string) (*ebiten.Image, error) {
		t.Fatal("loader must not run for an empty ref")
		return nil, nil
	})
	assert.Nil(t, s.Image(""))
}

func TestAvatarStoreFailureIsPermanent(t *testing.T) {
	var calls int
	var mu sync.Mutex
	s := NewAvatarStoreWithLoader(func(string) (*ebiten.Image, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil, errors.New("no such file")
	})

	deadline := time.Now().Add(time.Second)
	for !s.Failed("missing.png") && time.Now().Before(deadline) {
		s.Image("missing.png")
		time.Sleep(time.Millisecond)
	}
	assert.True(t, s.Failed("missing.png"))
	assert.Nil(t, s.Image("missing.png"))

	mu.Lock()
	assert.Equal(t, 1, calls, "a failed ref must not be refetched")
	mu.Unlock()
}

func TestAvatarStorePollingRacesLoader(t *testing.T) {
	// Frame-loop polling overlaps the background load, so under the
	// race detector this covers the entry handoff.
	release := make(chan struct{})
	s := NewAvatarStoreWithLoader(func(string) (*ebiten.Image, error) {
		<-release
		return nil, errors.New("decode failed")
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Image("driver.png")
			}
		}()
	}
	close(release)
	wg.Wait()

	deadline := time.Now().Add(time.Second)
	for !s.Failed("driver.png") && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.True(t, s.Failed("driver.png"))
}
