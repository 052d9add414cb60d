// Package report assembles the one-page PDF summary of an analysis run.
package report

import (
	"fmt"
	"image"
	"image/color"

	"github.com/carbocation/bpwave/compileinfo"
	"github.com/carbocation/bpwave/config"
	"github.com/carbocation/pfx"
	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Title = "Blood Pressure Analysis Report"

	// Images are resampled to this density before embedding.
	imageDotsPerMM = 300 / 25.4
)

// Build writes cfg.PDFReport. Both plots named in cfg must already exist.
func Build(cfg config.Config, systolic, diastolic int) error {
	full, err := loadImage(cfg.PlotFull)
	if err != nil {
		return err
	}

	zoom, err := loadImage(cfg.PlotZoom)
	if err != nil {
		return err
	}

	fonts, err := loadFonts()
	if err != nil {
		return err
	}

	lines := SummaryLines(cfg, systolic, diastolic)
	layout := computeLayout(len(lines))

	c := canvas.New(PageWidth, PageHeight)
	ctx := canvas.NewContext(c)

	text := func(b box, size float64, style canvas.FontStyle, align canvas.TextAlign, s string) {
		face := fonts.Face(size, color.Black, style, canvas.FontNormal)
		ctx.DrawText(b.X, b.Y, canvas.NewTextLine(face, s, align))
	}

	text(layout.Title, titleSize, canvas.FontBold, canvas.Left, Title)
	text(layout.Summary, headingSize, canvas.FontBold, canvas.Left, "Summary")
	for i, line := range lines {
		text(layout.Lines[i], bodySize, canvas.FontRegular, canvas.Left, line)
	}

	drawImage(ctx, layout.FullPlot, full)

	text(layout.ZoomLabel, headingSize, canvas.FontBold, canvas.Left, fmt.Sprintf("Zoomed view (%g s to %g s)", cfg.ZoomTMin, cfg.ZoomTMax))
	drawImage(ctx, layout.ZoomPlot, zoom)

	text(layout.Footer, footerSize, canvas.FontRegular, canvas.Right, FooterLine())

	if err := c.WriteFile(cfg.PDFReport, renderers.PDF()); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// SummaryLines are the literal lines under the "Summary" heading.
func SummaryLines(cfg config.Config, systolic, diastolic int) []string {
	return []string{
		fmt.Sprintf("Smoothing window size: %d samples", cfg.WindowSize),
		fmt.Sprintf("Systolic peaks detected: %d", systolic),
		fmt.Sprintf("Diastolic peaks detected: %d", diastolic),
	}
}

func FooterLine() string {
	if rev := compileinfo.Get().Short(); rev != "" {
		return "Generated by bpwave (" + rev + ")"
	}

	return "Generated by bpwave"
}

func loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return img, nil
}

// drawImage stretches img to fill b exactly.
func drawImage(ctx *canvas.Context, b box, img image.Image) {
	w := int(b.W*imageDotsPerMM + 0.5)
	h := int(b.H*imageDotsPerMM + 0.5)

	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	ctx.DrawImage(b.X, b.Y, resized, canvas.Resolution(float64(w)/b.W))
}

func loadFonts() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("Go")

	if err := family.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, pfx.Err(err)
	}

	if err := family.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
		return nil, pfx.Err(err)
	}

	return family, nil
}
