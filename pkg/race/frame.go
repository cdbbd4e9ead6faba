package race

import (
	"image/color"
	"sort"
)

// Frame is one rendered moment of the replay, expressed in normalized
// coordinates: horizontal values are fractions of the track length,
// vertical values are continuous lane positions. The renderer owns the
// mapping to pixels.
type Frame struct {
	Lanes       int
	SectorMarks []float64 // track fractions for the sector boundaries
	Glows       []Glow
	Cars        []CarSprite
	Carpets     []Carpet
}

// CarSprite places one entrant's car for the current frame.
type CarSprite struct {
	Name     string
	Number   int
	Color    color.RGBA
	Progress float64 // 0 = start line, 1 = finish line
	Lane     float64 // continuous lane position, 0 = top
	Finished bool
}

// Glow is the translucent lane highlight drawn behind a finished car.
type Glow struct {
	Lane  float64
	Color color.RGBA
}

// Carpet is the ordinal finish marker laid down once an entrant crosses.
type Carpet struct {
	Ordinal int // 1 = gold, 2 = silver, 3 = bronze
	Name    string
	Color   color.RGBA
}

// frame snapshots the current entrant state as draw commands. Cars are
// listed in input order; carpets in the order the entrants actually
// crossed the line.
func (s *Simulator) frame() Frame {
	f := Frame{Lanes: len(s.entrants)}
	if s.fastestTotal > 0 {
		f.SectorMarks = []float64{
			s.fastestS1 / s.fastestTotal,
			s.fastestS1S2 / s.fastestTotal,
		}
	}
	for _, e := range s.entrants {
		if e.Finished {
			f.Glows = append(f.Glows, Glow{Lane: e.LanePosition, Color: e.Color})
		}
		f.Cars = append(f.Cars, CarSprite{
			Name:     e.Name,
			Number:   e.Number,
			Color:    e.Color,
			Progress: e.DisplayProgress,
			Lane:     e.LanePosition,
			Finished: e.Finished,
		})
	}
	finished := make([]*Entrant, 0, len(s.entrants))
	for _, e := range s.entrants {
		if e.Finished {
			finished = append(finished, e)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].FinishOrder < finished[j].FinishOrder
	})
	for _, e := range finished {
		f.Carpets = append(f.Carpets, Carpet{Ordinal: e.FinishOrder, Name: e.Name, Color: e.Color})
	}
	return f
}
