package render

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// headshotSize is the edge length of generated placeholder portraits.
const headshotSize = 96

// GenerateHeadshot renders a deterministic placeholder portrait for a
// driver without a real photo: a flat-color head-and-shoulders figure on
// a tinted background, varied by a hash of the name so every driver gets
// a recognizably different placeholder.
func GenerateHeadshot(name string) *image.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	seed := h.Sum32()

	skinTones := []color.RGBA{
		{236, 188, 160, 255},
		{209, 163, 127, 255},
		{172, 120, 81, 255},
		{121, 77, 48, 255},
	}
	shirtTones := []color.RGBA{
		{60, 90, 160, 255},
		{160, 60, 70, 255},
		{60, 140, 90, 255},
		{120, 80, 160, 255},
		{200, 140, 40, 255},
	}
	skin := skinTones[seed%uint32(len(skinTones))]
	shirt := shirtTones[(seed>>8)%uint32(len(shirtTones))]
	bgShade := uint8(210 + (seed>>16)%30)
	bg := color.RGBA{bgShade, bgShade, 250, 255}

	img := image.NewRGBA(image.Rect(0, 0, headshotSize, headshotSize))
	for y := 0; y < headshotSize; y++ {
		for x := 0; x < headshotSize; x++ {
			img.Set(x, y, bg)
		}
	}

	// Shoulders
	for y := 70; y < headshotSize; y++ {
		for x := 0; x < headshotSize; x++ {
			dx := x - headshotSize/2
			if dx*dx < (y-52)*(y-52)*2 {
				img.Set(x, y, shirt)
			}
		}
	}

	// Head
	cx, cy, r := headshotSize/2, 42, 24
	for y := 0; y < headshotSize; y++ {
		for x := 0; x < headshotSize; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, skin)
			}
		}
	}

	// Eyes
	dark := color.RGBA{30, 30, 30, 255}
	for _, ex := range []int{cx - 9, cx + 9} {
		for y := cy - 3; y < cy+1; y++ {
			for x := ex - 2; x <= ex+2; x++ {
				img.Set(x, y, dark)
			}
		}
	}

	return img
}

// WriteHeadshots generates a placeholder portrait PNG per name into
// dir, named after the driver. Existing files are left untouched so a
// real photo dropped into the directory wins.
func WriteHeadshots(dir string, names []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, name := range names {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		if err := png.Encode(f, GenerateHeadshot(name)); err != nil {
			f.Close()
			return written, err
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
