// Package pipeline runs one analysis end to end: load, smooth, detect,
// export, plot and report. Every stage must succeed before the next starts.
package pipeline

import (
	"log"

	"github.com/carbocation/bpwave/annotate"
	"github.com/carbocation/bpwave/config"
	"github.com/carbocation/bpwave/peaks"
	"github.com/carbocation/bpwave/plot"
	"github.com/carbocation/bpwave/report"
	"github.com/carbocation/bpwave/waveform"
)

type Result struct {
	Signal  *waveform.Signal
	Peaks   peaks.Peaks
	Summary Summary
}

// Run executes the stages in order. The input is read before any output
// directory is created, so a bad input leaves nothing behind.
func Run(cfg config.Config) (Result, error) {
	out := Result{}

	if err := cfg.Validate(); err != nil {
		return out, err
	}

	sig, err := waveform.Load(cfg.InputCSV)
	if err != nil {
		return out, err
	}
	log.Printf("Loaded %d samples from %s\n", sig.Len(), cfg.InputCSV)

	if err := sig.Smooth(cfg.WindowSize); err != nil {
		return out, err
	}
	log.Printf("Smoothed pressure with a centered moving average (window=%d)\n", cfg.WindowSize)

	pk, err := peaks.Detect(sig.Smoothed, cfg.PeakDistance)
	if err != nil {
		return out, err
	}
	log.Printf("Detected %d systolic and %d diastolic peaks (distance=%d)\n", len(pk.Systolic), len(pk.Diastolic), cfg.PeakDistance)

	out.Signal = sig
	out.Peaks = pk
	out.Summary = Summarize(sig, pk)
	log.Printf("Summary: %s\n", out.Summary)

	if err := cfg.EnsureOutputDirs(); err != nil {
		return out, err
	}

	rows, err := annotate.Rows(sig, pk)
	if err != nil {
		return out, err
	}
	if err := annotate.WriteFile(cfg.ResultsCSV, rows); err != nil {
		return out, err
	}
	log.Printf("Results saved to %s\n", cfg.ResultsCSV)

	if err := plot.Full(sig, pk, cfg.PlotFull); err != nil {
		return out, err
	}
	log.Printf("Full plot saved to %s\n", cfg.PlotFull)

	if err := plot.Zoom(sig, pk, cfg.ZoomTMin, cfg.ZoomTMax, cfg.PlotZoom); err != nil {
		return out, err
	}
	log.Printf("Zoom plot saved to %s\n", cfg.PlotZoom)

	if err := report.Build(cfg, len(pk.Systolic), len(pk.Diastolic)); err != nil {
		return out, err
	}
	log.Printf("PDF report saved to %s\n", cfg.PDFReport)

	return out, nil
}
