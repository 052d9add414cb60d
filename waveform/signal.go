// Package waveform holds a single pressure trace in memory: the samples as
// they were read from disk and the smoothed pressure derived from them.
package waveform

import "gopkg.in/guregu/null.v3"

// Sample is one row of the input table.
type Sample struct {
	Time     float64 `csv:"time_s"`        // seconds
	Pressure float64 `csv:"pressure_mmHg"` // mmHg
}

// Signal is an ordered trace. Smoothed, once computed, is index-aligned with
// Samples; an invalid entry marks a position where the centered window did
// not fit.
type Signal struct {
	Samples  []Sample
	Smoothed []null.Float
}

func (s *Signal) Len() int {
	return len(s.Samples)
}

func (s *Signal) Times() []float64 {
	out := make([]float64, 0, len(s.Samples))
	for _, v := range s.Samples {
		out = append(out, v.Time)
	}

	return out
}

func (s *Signal) Pressures() []float64 {
	out := make([]float64, 0, len(s.Samples))
	for _, v := range s.Samples {
		out = append(out, v.Pressure)
	}

	return out
}

// Smooth computes the centered moving average of the pressure column and
// stores it on the signal.
func (s *Signal) Smooth(windowSize int) error {
	smoothed, err := MovingAverage(s.Pressures(), windowSize)
	if err != nil {
		return err
	}

	s.Smoothed = smoothed

	return nil
}
