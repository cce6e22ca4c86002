// Package render turns a canvas into drawable primitives and exports them.
//
// Build produces a Scene in screen space that any backend can draw: the
// raster exporter, the interactive window, or a test. PDF export works from
// the document directly so curves stay curves.
package render

import (
	"github.com/gogpu/gg"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/shape"
	"github.com/Faultbox/shaper/internal/tools"
)

// FlattenTolerance is the default maximum deviation, in pixels, between a
// curve and its polyline.
const FlattenTolerance = 0.5

// Colors of the selection overlays.
var (
	RawStrokeColor      = gg.RGB(0, 1, 0)
	SelectionFrameColor = gg.Hex("#9ED5F7")
	MarqueeFill         = gg.Hex("#9ED5F788")
	MarqueeStroke       = gg.Hex("#1F5FCFBB")
)

const (
	selectionFrameWidth = 2.0
	marqueeStrokeWidth  = 1.0
	discBorderWidth     = 1.0

	// hoverPointScale enlarges the disc of a hovered control point.
	hoverPointScale = 1.5
)

// Polyline is an open path of straight segments.
type Polyline struct {
	Points []gg.Point
	Width  float64
	Color  gg.RGBA
}

// Disc is a filled circle with an outline.
type Disc struct {
	Center gg.Point
	Radius float64
	Fill   gg.RGBA
	Border gg.RGBA
}

// Box is an axis-aligned rectangle. A zero Fill alpha means outline only.
type Box struct {
	Rect  gg.Rect
	Fill  gg.RGBA
	Color gg.RGBA
	Width float64
}

// Scene is everything visible in one frame, in screen coordinates.
// Lines are drawn first, then Discs, then Boxes.
type Scene struct {
	Lines []Polyline
	Discs []Disc
	Boxes []Box
}

// Options control what Build adds besides the shapes themselves.
type Options struct {
	// Marquee is the selection rectangle in world space, if one is active.
	Marquee *gg.Rect

	// Hover is the active tool's pointer feedback.
	Hover tools.Hover

	// Tolerance overrides FlattenTolerance when positive.
	Tolerance float64
}

// Build assembles the scene for c.
func Build(c *canvas.Canvas, opts Options) *Scene {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = FlattenTolerance
	}
	sc := &Scene{}
	zoom := c.Camera.Zoom
	set := c.Settings

	for _, s := range c.Doc.Shapes() {
		if pts := FlattenChain(s.Beziers, c, tol); len(pts) > 0 {
			sc.Lines = append(sc.Lines, Polyline{Points: pts, Width: s.Thickness * zoom, Color: s.StrokeColor})
		}
	}

	if set.ShowOriginalStroke {
		for _, s := range c.Doc.Shapes() {
			for _, raw := range s.RawStrokes {
				sc.Lines = append(sc.Lines, Polyline{Points: toScreen(raw, c), Width: zoom, Color: RawStrokeColor})
			}
		}
	}

	if cur := c.Current; cur != nil && len(cur.CurrentStroke) > 0 {
		sc.Lines = append(sc.Lines, Polyline{
			Points: toScreen(cur.CurrentStroke, c),
			Width:  set.Thickness * zoom,
			Color:  set.StrokeColor,
		})
	}

	if opts.Hover.OnShape && opts.Hover.Shape >= 0 && opts.Hover.Shape < c.Doc.Len() {
		s := c.Doc.At(opts.Hover.Shape)
		if pts := FlattenChain(s.Beziers, c, tol); len(pts) > 0 {
			sc.Lines = append(sc.Lines, Polyline{Points: pts, Width: set.Handles.OverlayThickness, Color: set.Handles.BorderColor})
		}
	}

	for i, s := range c.Doc.Shapes() {
		if set.ShowHandles || c.Selection.HasShape(i) || ownsSelectedPoint(c, i) {
			sc.addHandles(c, i, s, tol)
		}
	}

	if h := opts.Hover; h.OnPoint && c.Doc.ValidPoint(h.Point) {
		p := c.Doc.At(h.Point.Shape).ControlPoint(h.Point.Segment, h.Point.Ctrl)
		sc.Discs = append(sc.Discs, Disc{
			Center: c.WorldToScreen(p),
			Radius: set.Handles.Radius * hoverPointScale,
			Fill:   set.Handles.SelectedColor,
			Border: set.Handles.BorderColor,
		})
	}

	if h := opts.Hover; h.Pen {
		sc.Discs = append(sc.Discs, Disc{
			Center: h.Pointer,
			Radius: set.Thickness * zoom / 2,
			Fill:   set.StrokeColor,
			Border: set.StrokeColor,
		})
	}

	if r, ok := c.Selection.UnionBounds(c.Doc); ok {
		sc.Boxes = append(sc.Boxes, Box{
			Rect:  screenRect(r, c),
			Color: SelectionFrameColor,
			Width: selectionFrameWidth,
		})
	}

	if opts.Marquee != nil {
		sc.Boxes = append(sc.Boxes, Box{
			Rect:  screenRect(*opts.Marquee, c),
			Fill:  MarqueeFill,
			Color: MarqueeStroke,
			Width: marqueeStrokeWidth,
		})
	}
	return sc
}

// addHandles adds the overlay curve, handle arms and control point discs
// of shape i.
func (sc *Scene) addHandles(c *canvas.Canvas, i int, s *shape.Shape, tol float64) {
	h := c.Settings.Handles
	if pts := FlattenChain(s.Beziers, c, tol); len(pts) > 0 {
		sc.Lines = append(sc.Lines, Polyline{Points: pts, Width: h.OverlayThickness, Color: h.BorderColor})
	}
	for seg, b := range s.Beziers {
		p0, p1 := c.WorldToScreen(b.P0), c.WorldToScreen(b.P1)
		p2, p3 := c.WorldToScreen(b.P2), c.WorldToScreen(b.P3)
		sc.Lines = append(sc.Lines,
			Polyline{Points: []gg.Point{p0, p1}, Width: h.ArmThickness, Color: h.ArmColor},
			Polyline{Points: []gg.Point{p3, p2}, Width: h.ArmThickness, Color: h.ArmColor},
		)
		for ctrl, p := range []gg.Point{p0, p1, p2, p3} {
			fill := h.PointColor
			if ctrl == 1 || ctrl == 2 {
				fill = h.ControlColor
			}
			if c.Selection.HasPoint(shape.PointID{Shape: i, Segment: seg, Ctrl: ctrl}) {
				fill = h.SelectedColor
			}
			sc.Discs = append(sc.Discs, Disc{Center: p, Radius: h.Radius, Fill: fill, Border: h.BorderColor})
		}
	}
}

func ownsSelectedPoint(c *canvas.Canvas, idx int) bool {
	if c.Selection.PointCount() == 0 {
		return false
	}
	for _, id := range c.Selection.Points() {
		if id.Shape == idx {
			return true
		}
	}
	return false
}

// FlattenChain converts a Bézier chain to one screen-space polyline with
// joints emitted once.
func FlattenChain(chain []gg.CubicBez, c *canvas.Canvas, tol float64) []gg.Point {
	if len(chain) == 0 {
		return nil
	}
	path := gg.NewPath()
	start := c.WorldToScreen(chain[0].P0)
	path.MoveTo(start.X, start.Y)
	for _, b := range chain {
		p1, p2, p3 := c.WorldToScreen(b.P1), c.WorldToScreen(b.P2), c.WorldToScreen(b.P3)
		path.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
	return path.Flatten(tol)
}

func toScreen(pts []gg.Point, c *canvas.Canvas) []gg.Point {
	out := make([]gg.Point, len(pts))
	for i, p := range pts {
		out[i] = c.WorldToScreen(p)
	}
	return out
}

func screenRect(r gg.Rect, c *canvas.Canvas) gg.Rect {
	return gg.NewRect(c.WorldToScreen(r.Min), c.WorldToScreen(r.Max))
}
