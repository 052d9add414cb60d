// Package peaks finds systolic (local maximum) and diastolic (local minimum)
// positions in a smoothed pressure trace.
package peaks

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// Peaks holds ascending sample indices.
type Peaks struct {
	Systolic  []int
	Diastolic []int
}

// Fill resolves undefined smoothed values to zero. Positions at the ends of
// the trace, where the moving average has no value, therefore compare as 0
// mmHg. This can manufacture a boundary extremum when real pressures sit near
// zero; it is kept because downstream outputs were produced this way.
func Fill(smoothed []null.Float) []float64 {
	out := make([]float64, len(smoothed))
	for i, v := range smoothed {
		out[i] = v.ValueOrZero()
	}

	return out
}

// Detect fills the smoothed trace and then looks for maxima (systolic) and
// for maxima of the negated trace (diastolic).
func Detect(smoothed []null.Float, distance int) (Peaks, error) {
	filled := Fill(smoothed)

	systolic, err := Find(filled, distance)
	if err != nil {
		return Peaks{}, err
	}

	negated := make([]float64, len(filled))
	for i, v := range filled {
		negated[i] = -v
	}

	diastolic, err := Find(negated, distance)
	if err != nil {
		return Peaks{}, err
	}

	return Peaks{Systolic: systolic, Diastolic: diastolic}, nil
}

// Find returns the indices of the local maxima of x, in ascending order, such
// that no two are closer than distance samples.
//
// A local maximum is a sample, or a run of equal samples, with a strictly
// lower neighbour on each side. A run reports its middle index (the lower
// one when the run has even length). The first and last samples can never be
// maxima.
//
// When candidates crowd each other, the highest is kept and every candidate
// within distance of it is dropped; ties in height go to the earliest index.
func Find(x []float64, distance int) ([]int, error) {
	if distance < 1 {
		return nil, pfx.Err(fmt.Errorf("peak distance must be at least 1, got %d", distance))
	}

	candidates := localMaxima(x)

	return selectByDistance(candidates, x, distance), nil
}

func localMaxima(x []float64) []int {
	out := make([]int, 0)

	i := 1
	last := len(x) - 1
	for i < last {
		if !(x[i-1] < x[i]) {
			i++
			continue
		}

		// Walk to the end of a plateau, if any.
		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			right := ahead - 1
			out = append(out, (i+right)/2)

			// x[ahead] sits below its left neighbour, so it cannot be a
			// maximum either.
			i = ahead + 1
			continue
		}

		i++
	}

	return out
}

func selectByDistance(candidates []int, x []float64, distance int) []int {
	if distance == 1 || len(candidates) < 2 {
		return candidates
	}

	// Visit order: tallest first, earliest first among equals.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return x[candidates[order[a]]] > x[candidates[order[b]]]
	})

	keep := make([]bool, len(candidates))
	for i := range keep {
		keep[i] = true
	}

	for _, j := range order {
		if !keep[j] {
			continue
		}

		for k := j - 1; k >= 0 && candidates[j]-candidates[k] < distance; k-- {
			keep[k] = false
		}

		for k := j + 1; k < len(candidates) && candidates[k]-candidates[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, len(candidates))
	for i, v := range candidates {
		if keep[i] {
			out = append(out, v)
		}
	}

	return out
}
