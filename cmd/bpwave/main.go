// bpwave analyses a blood-pressure recording: it smooths the pressure trace,
// marks systolic and diastolic peaks, and writes an annotated CSV, two plots
// and a one-page PDF report. Run without flags to use the defaults.
package main

import (
	"flag"
	"log"

	_ "github.com/carbocation/bpwave/compileinfoprint"
	"github.com/carbocation/bpwave/config"
	"github.com/carbocation/bpwave/pipeline"
)

func main() {
	defaults := config.Default()

	var configPath string
	cfg := defaults

	flag.StringVar(&configPath, "config", "", "(Optional) JSON file overriding any of the defaults below. Flags set explicitly take precedence over the file.")
	flag.StringVar(&cfg.InputCSV, "input", defaults.InputCSV, "CSV with time_s and pressure_mmHg columns (may be gzip, zip, xz or bzip2 compressed)")
	flag.StringVar(&cfg.ResultsCSV, "results", defaults.ResultsCSV, "Annotated CSV output")
	flag.StringVar(&cfg.PlotFull, "plot_full", defaults.PlotFull, "PNG of the whole recording")
	flag.StringVar(&cfg.PlotZoom, "plot_zoom", defaults.PlotZoom, "PNG of the zoom window")
	flag.StringVar(&cfg.PDFReport, "report", defaults.PDFReport, "PDF report output")
	flag.IntVar(&cfg.WindowSize, "window", defaults.WindowSize, "Width, in samples, of the centered moving average")
	flag.IntVar(&cfg.PeakDistance, "peak_distance", defaults.PeakDistance, "Minimum number of samples between two peaks of the same kind")
	flag.Float64Var(&cfg.ZoomTMin, "zoom_t_min", defaults.ZoomTMin, "Start of the zoom window, in seconds")
	flag.Float64Var(&cfg.ZoomTMax, "zoom_t_max", defaults.ZoomTMax, "End of the zoom window, in seconds")
	flag.Parse()

	if configPath != "" {
		fromFile, err := config.ParseJSONConfigFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}

		cfg = overrideWithSetFlags(fromFile, cfg)
	}

	if _, err := pipeline.Run(cfg); err != nil {
		log.Fatalln(err)
	}
}

// overrideWithSetFlags copies onto base only the fields whose flags were given
// on the command line.
func overrideWithSetFlags(base, flagged config.Config) config.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			base.InputCSV = flagged.InputCSV
		case "results":
			base.ResultsCSV = flagged.ResultsCSV
		case "plot_full":
			base.PlotFull = flagged.PlotFull
		case "plot_zoom":
			base.PlotZoom = flagged.PlotZoom
		case "report":
			base.PDFReport = flagged.PDFReport
		case "window":
			base.WindowSize = flagged.WindowSize
		case "peak_distance":
			base.PeakDistance = flagged.PeakDistance
		case "zoom_t_min":
			base.ZoomTMin = flagged.ZoomTMin
		case "zoom_t_max":
			base.ZoomTMax = flagged.ZoomTMax
		}
	})

	return base
}
