package waveform

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"
)

// MovingAverage returns the centered rolling mean of vals. No partial windows
// are used: wherever the window would run past either end of vals, or covers
// a NaN, the output is invalid.
//
// For an odd window w the window around i is [i-w/2, i+w/2]. For an even
// window it is shifted one sample to the left, [i-w/2, i+w/2-1], which is
// the usual convention for centering an even-width window.
func MovingAverage(vals []float64, windowSize int) ([]null.Float, error) {
	if windowSize < 1 {
		return nil, pfx.Err(fmt.Errorf("window size must be at least 1, got %d", windowSize))
	}

	out := make([]null.Float, len(vals))

	offset := (windowSize - 1) / 2
	for i := range vals {
		end := i + offset + 1 // exclusive
		start := end - windowSize
		if start < 0 || end > len(vals) {
			continue
		}

		window := vals[start:end]
		if containsNaN(window) {
			continue
		}

		out[i] = null.FloatFrom(stat.Mean(window, nil))
	}

	return out, nil
}

func containsNaN(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
