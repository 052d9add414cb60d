package plot

import (
	"math"

	"github.com/carbocation/bpwave/peaks"
	"github.com/carbocation/bpwave/waveform"
)

type series struct {
	X []float64
	Y []float64
}

func (s *series) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}

	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

func (s series) Len() int {
	return len(s.X)
}

// view is the subset of a signal that ends up on one chart.
type view struct {
	Raw       series
	Smoothed  series
	Systolic  series
	Diastolic series
}

func (v view) all() []series {
	return []series{v.Raw, v.Smoothed, v.Systolic, v.Diastolic}
}

func (v view) empty() bool {
	for _, s := range v.all() {
		if s.Len() > 0 {
			return false
		}
	}

	return true
}

// newView keeps the samples whose time passes keep. Undefined smoothed
// values are left out of the smoothed line and get no peak marker.
func newView(sig *waveform.Signal, pk peaks.Peaks, keep func(t float64) bool) view {
	out := view{}

	for i, v := range sig.Samples {
		if !keep(v.Time) {
			continue
		}

		out.Raw.add(v.Time, v.Pressure)

		if i < len(sig.Smoothed) && sig.Smoothed[i].Valid {
			out.Smoothed.add(v.Time, sig.Smoothed[i].Float64)
		}
	}

	marker := func(dst *series, idx []int) {
		for _, i := range idx {
			if i < 0 || i >= sig.Len() || i >= len(sig.Smoothed) {
				continue
			}

			tm := sig.Samples[i].Time
			if !keep(tm) || !sig.Smoothed[i].Valid {
				continue
			}

			dst.add(tm, sig.Smoothed[i].Float64)
		}
	}
	marker(&out.Systolic, pk.Systolic)
	marker(&out.Diastolic, pk.Diastolic)

	return out
}

func fullView(sig *waveform.Signal, pk peaks.Peaks) view {
	return newView(sig, pk, func(float64) bool { return true })
}

// zoomView keeps samples with tMin <= t <= tMax.
func zoomView(sig *waveform.Signal, pk peaks.Peaks, tMin, tMax float64) view {
	return newView(sig, pk, func(t float64) bool { return t >= tMin && t <= tMax })
}

// yBounds returns the padded extent of the y values in the view. Flat or
// empty views still get a non-zero range.
func (v view) yBounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range v.all() {
		for _, y := range s.Y {
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}

	return pad(lo, hi)
}

func (v view) xBounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range v.Raw.X {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	if math.IsInf(lo, 1) {
		return 0, 1
	}

	if lo == hi {
		return lo - 0.5, hi + 0.5
	}

	return lo, hi
}

func pad(lo, hi float64) (float64, float64) {
	if math.IsInf(lo, 1) {
		return 0, 1
	}

	margin := 0.05 * (hi - lo)
	if margin == 0 {
		margin = 1
	}

	return lo - margin, hi + margin
}
