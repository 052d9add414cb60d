// Package config holds the parameters of one analysis run: where the input
// lives, where every artifact goes, and the numeric knobs of the smoother,
// the peak detector and the zoom plot.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/bpwave"
	"github.com/carbocation/pfx"
	"github.com/go-playground/validator/v10"
)

// Config is treated as immutable once a run starts. Pass it by value.
type Config struct {
	ConfigPath string `json:"-"`

	InputCSV   string `json:"input_csv" validate:"required"`
	ResultsCSV string `json:"results_csv" validate:"required"`
	PlotFull   string `json:"plot_full" validate:"required"`
	PlotZoom   string `json:"plot_zoom" validate:"required"`
	PDFReport  string `json:"pdf_report" validate:"required"`

	// WindowSize is the width, in samples, of the centered moving average.
	// Odd values are recommended but not enforced.
	WindowSize int `json:"window_size" validate:"gte=1"`

	// PeakDistance is the minimum number of samples between two peaks of the
	// same polarity.
	PeakDistance int `json:"peak_distance" validate:"gte=1"`

	// Zoom bounds, in seconds, inclusive.
	ZoomTMin float64 `json:"zoom_t_min"`
	ZoomTMax float64 `json:"zoom_t_max" validate:"gtfield=ZoomTMin"`
}

func Default() Config {
	return Config{
		InputCSV:     filepath.Join("data", "bp_Testdata.csv"),
		ResultsCSV:   filepath.Join("results", "bp_results.csv"),
		PlotFull:     filepath.Join("results", "plots", "bp_full.png"),
		PlotZoom:     filepath.Join("results", "plots", "bp_zoom.png"),
		PDFReport:    filepath.Join("results", "bp_report.pdf"),
		WindowSize:   5,
		PeakDistance: 5,
		ZoomTMin:     50.0,
		ZoomTMax:     55.0,
	}
}

// ParseJSONConfigFromPath reads a JSON document over the defaults, so a file
// only needs to name the fields it changes. The result is validated.
func ParseJSONConfigFromPath(path string) (Config, error) {
	out := Default()
	out.ConfigPath = path

	f, err := os.Open(path)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}
		return out, pfx.Err(err)
	}

	out = out.expandPaths()

	return out, out.Validate()
}

func (c Config) expandPaths() Config {
	c.ConfigPath = bpwave.ExpandHome(c.ConfigPath)
	c.InputCSV = bpwave.ExpandHome(c.InputCSV)
	c.ResultsCSV = bpwave.ExpandHome(c.ResultsCSV)
	c.PlotFull = bpwave.ExpandHome(c.PlotFull)
	c.PlotZoom = bpwave.ExpandHome(c.PlotZoom)
	c.PDFReport = bpwave.ExpandHome(c.PDFReport)

	return c
}

// Validate checks the struct tags above: every path is set, the window and
// the peak distance are at least one sample, and the zoom window is not
// empty.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// OutputPaths lists every file the pipeline writes, in the order it writes
// them.
func (c Config) OutputPaths() []string {
	return []string{c.ResultsCSV, c.PlotFull, c.PlotZoom, c.PDFReport}
}

// EnsureOutputDirs creates the parent directory of every output path.
func (c Config) EnsureOutputDirs() error {
	for _, p := range c.OutputPaths() {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
