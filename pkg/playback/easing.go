package playback

// Ease maps raw wall-clock progress to display progress. Both ends of
// the range must be fixed points: Ease(0)=0 and Ease(1)=1.
type Ease func(raw float64) float64

// Linear is the identity easing used by the points progression.
func Linear(raw float64) float64 {
	return clamp01(raw)
}

// FinishLineEase is the race easing: identity through the first 80% of
// wall-clock time, then the final 20% of wall-clock time runs at half
// rate, a finish-line slow-motion effect. The endpoint is pinned at 1 so
// the last frame always completes the run.
func FinishLineEase(raw float64) float64 {
	r := clamp01(raw)
	if r >= 1 {
		return 1
	}
	if r < 0.8 {
		return (r / 0.8) * 0.8
	}
	return 0.8 + ((r-0.8)/0.2)*0.5*0.2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
