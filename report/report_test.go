package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/carbocation/bpwave/config"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 255, A: 255})
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.PlotFull = filepath.Join(dir, "full.png")
	cfg.PlotZoom = filepath.Join(dir, "zoom.png")
	cfg.PDFReport = filepath.Join(dir, "report.pdf")

	return cfg
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)
	writePNG(t, cfg.PlotFull, 300, 160)
	writePNG(t, cfg.PlotZoom, 300, 160)

	if err := Build(cfg, 12, 11); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(cfg.PDFReport)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Errorf("%s does not start with a PDF header", cfg.PDFReport)
	}
}

func TestBuildMissingImage(t *testing.T) {
	cfg := testConfig(t)
	writePNG(t, cfg.PlotFull, 300, 160)

	if err := Build(cfg, 1, 1); err == nil {
		t.Error("expected an error for a missing zoom image")
	}

	if _, err := os.Stat(cfg.PDFReport); !os.IsNotExist(err) {
		t.Errorf("%s should not have been written", cfg.PDFReport)
	}
}

func TestSummaryLines(t *testing.T) {
	cfg := config.Default()
	cfg.WindowSize = 7

	expected := []string{
		"Smoothing window size: 7 samples",
		"Systolic peaks detected: 40",
		"Diastolic peaks detected: 39",
	}
	if got := SummaryLines(cfg, 40, 39); !reflect.DeepEqual(got, expected) {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestLayoutStacksWithoutOverlap(t *testing.T) {
	const summaryLines = 3
	l := computeLayout(summaryLines)

	// Title, summary heading, the summary lines, full plot, zoom label, zoom plot.
	elems := l.ordered()
	if expected := 5 + summaryLines; len(elems) != expected {
		t.Fatalf("got %d elements, expected %d", len(elems), expected)
	}

	if elems[0].Top() > PageHeight-Margin+1e-9 {
		t.Errorf("title top %v is above the margin", elems[0].Top())
	}
	for i := 1; i < len(elems); i++ {
		if elems[i].Top() >= elems[i-1].Y {
			t.Errorf("element %d overlaps element %d", i, i-1)
		}
	}

	last := elems[len(elems)-1]
	if last.Y < Margin {
		t.Errorf("last element bottom %v is below the margin", last.Y)
	}
	if l.Footer.Top() >= last.Y {
		t.Errorf("footer top %v reaches the last element at %v", l.Footer.Top(), last.Y)
	}

	for _, b := range []box{l.FullPlot, l.ZoomPlot} {
		if b.H != ImageHeight || b.W != PageWidth-2*Margin || b.X != Margin {
			t.Errorf("image box %+v", b)
		}
	}

	if l.Footer.X != PageWidth-Margin {
		t.Errorf("footer anchored at x=%v", l.Footer.X)
	}
}
