package pipeline

import (
	"fmt"
	"math"

	"github.com/carbocation/bpwave/peaks"
	"github.com/carbocation/bpwave/waveform"
	"github.com/montanaflynn/stats"
)

// Summary describes one analysed recording. Values that need more peaks than
// were found are NaN.
type Summary struct {
	Samples           int
	SystolicPeaks     int
	DiastolicPeaks    int
	MeanSystolicMMHg  float64
	MeanDiastolicMMHg float64
	HeartRateBPM      float64 // from the median interval between systolic peaks
}

func (s Summary) String() string {
	return fmt.Sprintf("%d samples, %d systolic / %d diastolic peaks, mean systolic %.1f mmHg, mean diastolic %.1f mmHg, heart rate %.1f bpm",
		s.Samples, s.SystolicPeaks, s.DiastolicPeaks, s.MeanSystolicMMHg, s.MeanDiastolicMMHg, s.HeartRateBPM)
}

// Summarize reads the raw pressure at each peak, not the smoothed value.
// Peaks on a missing sample do not count toward the means.
func Summarize(sig *waveform.Signal, pk peaks.Peaks) Summary {
	out := Summary{
		Samples:           sig.Len(),
		SystolicPeaks:     len(pk.Systolic),
		DiastolicPeaks:    len(pk.Diastolic),
		MeanSystolicMMHg:  math.NaN(),
		MeanDiastolicMMHg: math.NaN(),
		HeartRateBPM:      math.NaN(),
	}

	if m, err := stats.Mean(pressuresAt(sig, pk.Systolic)); err == nil {
		out.MeanSystolicMMHg = m
	}

	if m, err := stats.Mean(pressuresAt(sig, pk.Diastolic)); err == nil {
		out.MeanDiastolicMMHg = m
	}

	intervals := make(stats.Float64Data, 0, len(pk.Systolic))
	for i := 1; i < len(pk.Systolic); i++ {
		intervals = append(intervals, sig.Samples[pk.Systolic[i]].Time-sig.Samples[pk.Systolic[i-1]].Time)
	}

	if med, err := stats.Median(intervals); err == nil && med > 0 {
		out.HeartRateBPM = 60 / med
	}

	return out
}

func pressuresAt(sig *waveform.Signal, idx []int) stats.Float64Data {
	out := make(stats.Float64Data, 0, len(idx))
	for _, i := range idx {
		if p := sig.Samples[i].Pressure; !math.IsNaN(p) {
			out = append(out, p)
		}
	}

	return out
}
