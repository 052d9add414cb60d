package report

// All lengths are millimetres. The canvas origin is the bottom-left corner of
// the page, so the layout cursor moves downward by decreasing y.
const (
	PageWidth   = 210.0 // A4
	PageHeight  = 297.0
	Margin      = 20.0
	ImageHeight = 90.0

	ptToMM = 25.4 / 72

	titleSize   = 18.0 // pt
	headingSize = 13.0
	bodySize    = 11.0
	footerSize  = 8.0
)

// box is a placed element. For text, Y is the baseline.
type box struct {
	X, Y, W, H float64
}

func (b box) Top() float64 {
	return b.Y + b.H
}

type pageLayout struct {
	Title     box
	Summary   box
	Lines     []box
	FullPlot  box
	ZoomLabel box
	ZoomPlot  box
	Footer    box
}

// cursor stacks elements from the top margin down. Each element sits at the
// current y minus its own height, after which y drops by the gap that
// follows the element.
type cursor struct {
	y float64
}

func (c *cursor) place(height, gap float64) box {
	c.y -= height
	b := box{X: Margin, Y: c.y, W: PageWidth - 2*Margin, H: height}
	c.y -= gap

	return b
}

func computeLayout(summaryLines int) pageLayout {
	c := &cursor{y: PageHeight - Margin}

	out := pageLayout{}
	out.Title = c.place(titleSize*ptToMM, 6)
	out.Summary = c.place(headingSize*ptToMM, 3)

	for i := 0; i < summaryLines; i++ {
		gap := 2.5
		if i == summaryLines-1 {
			gap = 6
		}
		out.Lines = append(out.Lines, c.place(bodySize*ptToMM, gap))
	}

	out.FullPlot = c.place(ImageHeight, 8)
	out.ZoomLabel = c.place(headingSize*ptToMM, 3)
	out.ZoomPlot = c.place(ImageHeight, 0)

	// The footer lives in the bottom margin, anchored to the right edge.
	out.Footer = box{X: PageWidth - Margin, Y: Margin / 2, W: 0, H: footerSize * ptToMM}

	return out
}

// ordered returns the stacked elements top to bottom.
func (p pageLayout) ordered() []box {
	out := []box{p.Title, p.Summary}
	out = append(out, p.Lines...)

	return append(out, p.FullPlot, p.ZoomLabel, p.ZoomPlot)
}
