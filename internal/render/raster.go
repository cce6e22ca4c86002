package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// Rasterize draws sc onto a new w×h context cleared to bg.
func Rasterize(sc *Scene, w, h int, bg gg.RGBA) (*gg.Context, error) {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(bg)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	var errs []error
	for _, l := range sc.Lines {
		errs = append(errs, drawPolyline(dc, l))
	}
	for _, d := range sc.Discs {
		errs = append(errs, drawDisc(dc, d))
	}
	for _, b := range sc.Boxes {
		errs = append(errs, drawBox(dc, b))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return dc, nil
}

// WritePNG rasterizes sc and encodes it to out.
func WritePNG(out io.Writer, sc *Scene, w, h int, bg gg.RGBA) error {
	dc, err := Rasterize(sc, w, h, bg)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG rasterizes sc into the file at path.
func SavePNG(path string, sc *Scene, w, h int, bg gg.RGBA) error {
	dc, err := Rasterize(sc, w, h, bg)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func drawPolyline(dc *gg.Context, l Polyline) error {
	switch len(l.Points) {
	case 0:
		return nil
	case 1:
		// A single sample still shows as a dot the width of the pen.
		p := l.Points[0]
		dc.DrawCircle(p.X, p.Y, l.Width/2)
		dc.SetColor(l.Color.Color())
		return dc.Fill()
	}
	dc.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, p := range l.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.SetColor(l.Color.Color())
	dc.SetLineWidth(l.Width)
	return dc.Stroke()
}

func drawDisc(dc *gg.Context, d Disc) error {
	dc.DrawCircle(d.Center.X, d.Center.Y, d.Radius)
	dc.SetColor(d.Fill.Color())
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetColor(d.Border.Color())
	dc.SetLineWidth(discBorderWidth)
	return dc.Stroke()
}

func drawBox(dc *gg.Context, b Box) error {
	r := b.Rect
	dc.DrawRectangle(r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y)
	if b.Fill.A > 0 {
		dc.SetColor(b.Fill.Color())
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	dc.SetColor(b.Color.Color())
	dc.SetLineWidth(b.Width)
	return dc.Stroke()
}
