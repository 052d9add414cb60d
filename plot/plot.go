// Package plot renders the annotated pressure trace as PNG charts: one over
// the whole recording and one over a fixed zoom window.
package plot

import (
	"bytes"
	"fmt"
	"os"

	"github.com/carbocation/bpwave/peaks"
	"github.com/carbocation/bpwave/waveform"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed so that identical inputs render identical images.
const (
	WidthPx  = 1500
	HeightPx = 800
	DPI      = 150.0
)

var (
	rawColor       = drawing.Color{R: 31, G: 119, B: 180, A: 100}
	smoothedColor  = drawing.Color{R: 255, G: 127, B: 14, A: 255}
	systolicColor  = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	diastolicColor = drawing.Color{R: 44, G: 160, B: 44, A: 255}
	gridColor      = drawing.Color{R: 224, G: 224, B: 224, A: 255}
)

// Full plots the entire recording.
func Full(sig *waveform.Signal, pk peaks.Peaks, filename string) error {
	v := fullView(sig, pk)
	xMin, xMax := v.xBounds()

	return render(filename, "Blood Pressure Over Time", v, xMin, xMax)
}

// Zoom plots only tMin <= t <= tMax. The x-axis spans exactly [tMin, tMax]
// whether or not there are samples at the bounds.
func Zoom(sig *waveform.Signal, pk peaks.Peaks, tMin, tMax float64, filename string) error {
	if !(tMin < tMax) {
		return pfx.Err(fmt.Errorf("zoom window [%v, %v] is empty", tMin, tMax))
	}

	v := zoomView(sig, pk, tMin, tMax)

	return render(filename, fmt.Sprintf("Blood Pressure, %g s to %g s", tMin, tMax), v, tMin, tMax)
}

func render(filename, title string, v view, xMin, xMax float64) error {
	yMin, yMax := v.yBounds()

	graph := chart.Chart{
		Title:  title,
		Width:  WidthPx,
		Height: HeightPx,
		DPI:    DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Time [s]",
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:           "Pressure [mmHg]",
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		},
		Series: buildSeries(v, xMin, xMax, yMin, yMax),
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func buildSeries(v view, xMin, xMax, yMin, yMax float64) []chart.Series {
	out := make([]chart.Series, 0, 4)

	if v.Raw.Len() > 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    "Raw signal",
			XValues: v.Raw.X,
			YValues: v.Raw.Y,
			Style:   chart.Style{StrokeColor: rawColor, StrokeWidth: 1},
		})
	}

	if v.Smoothed.Len() > 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    "Smoothed signal",
			XValues: v.Smoothed.X,
			YValues: v.Smoothed.Y,
			Style:   chart.Style{StrokeColor: smoothedColor, StrokeWidth: 2},
		})
	}

	if v.Systolic.Len() > 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    "Systolic peaks",
			XValues: v.Systolic.X,
			YValues: v.Systolic.Y,
			Style:   markerStyle(systolicColor),
		})
	}

	if v.Diastolic.Len() > 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    "Diastolic peaks",
			XValues: v.Diastolic.X,
			YValues: v.Diastolic.Y,
			Style:   markerStyle(diastolicColor),
		})
	}

	// go-chart refuses to render without a series, so an empty window gets an
	// invisible one spanning the axes.
	if len(out) == 0 {
		out = append(out, chart.ContinuousSeries{
			Name:    "No samples in window",
			XValues: []float64{xMin, xMax},
			YValues: []float64{yMin, yMax},
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 0},
		})
	}

	return out
}

func markerStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    c,
	}
}
