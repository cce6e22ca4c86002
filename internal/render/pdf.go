package render

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"

	"github.com/Faultbox/shaper/internal/shape"
)

// PDFOptions configures vector export. World units map to points.
type PDFOptions struct {
	Margin   float64
	Compress bool
}

// DefaultPDFOptions returns a 24pt margin with compressed streams.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{Margin: 24, Compress: true}
}

// a4 is the page size used for an empty document, in points.
var a4 = gofpdf.SizeType{Wd: 595.28, Ht: 841.89}

// WritePDF writes every shape of doc as cubic curves on a single page sized
// to fit the drawing.
func WritePDF(out io.Writer, doc *shape.Document, opts PDFOptions) error {
	pdf := newPDF(doc, opts)
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// SavePDF writes doc to the file at path.
func SavePDF(path string, doc *shape.Document, opts PDFOptions) error {
	pdf := newPDF(doc, opts)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save pdf %s: %w", path, err)
	}
	return nil
}

func newPDF(doc *shape.Document, opts PDFOptions) *gofpdf.Fpdf {
	size, origin := pageLayout(doc, opts.Margin)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetCompression(opts.Compress)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.AddPage()

	for _, s := range doc.Shapes() {
		if len(s.Beziers) == 0 {
			continue
		}
		r, g, b := rgb255(s.StrokeColor)
		pdf.SetDrawColor(r, g, b)
		pdf.SetAlpha(s.StrokeColor.A, "Normal")
		pdf.SetLineWidth(s.Thickness)

		p := s.Beziers[0].P0.Sub(origin)
		pdf.MoveTo(p.X, p.Y)
		for _, c := range s.Beziers {
			c1, c2, end := c.P1.Sub(origin), c.P2.Sub(origin), c.P3.Sub(origin)
			pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
		pdf.DrawPath("D")
	}
	return pdf
}

// pageLayout returns the page size and the world point that maps to the
// page's top-left corner.
func pageLayout(doc *shape.Document, margin float64) (gofpdf.SizeType, gg.Point) {
	var (
		box   gg.Rect
		found bool
	)
	for _, s := range doc.Shapes() {
		b, ok := s.BoundingBox()
		if !ok {
			continue
		}
		half := s.Thickness / 2
		b = gg.Rect{Min: b.Min.Sub(gg.Pt(half, half)), Max: b.Max.Add(gg.Pt(half, half))}
		if !found {
			box, found = b, true
			continue
		}
		box = box.Union(b)
	}
	if !found {
		return a4, gg.Point{}
	}
	size := gofpdf.SizeType{
		Wd: box.Max.X - box.Min.X + 2*margin,
		Ht: box.Max.Y - box.Min.Y + 2*margin,
	}
	return size, box.Min.Sub(gg.Pt(margin, margin))
}

func rgb255(c gg.RGBA) (int, int, int) {
	conv := func(v float64) int { return int(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return conv(c.R), conv(c.G), conv(c.B)
}
