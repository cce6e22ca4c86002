// Package camera maps between world and screen coordinates for the 2D canvas.
package camera

import (
	"math"

	"github.com/gogpu/gg"
)

// minZoomFloor keeps zoom strictly positive even with a bad configuration.
const minZoomFloor = 1e-6

// Camera is a pan/zoom view onto world space:
//
//	screen = world*Zoom + Pan
type Camera struct {
	// Pan is the screen-space offset of the world origin.
	Pan gg.Point

	// Zoom is the scale factor from world to screen units.
	Zoom float64

	// Constraints
	MinZoom float64
	MaxZoom float64

	// ZoomSensitivity scales scroll deltas before exponentiation.
	ZoomSensitivity float64
}

// New creates a camera at zoom 1 with no pan. minZoom is raised to a small
// positive floor so the inverse mapping is always defined.
func New(minZoom, maxZoom, sensitivity float64) *Camera {
	if minZoom < minZoomFloor {
		minZoom = minZoomFloor
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	c := &Camera{
		MinZoom:         minZoom,
		MaxZoom:         maxZoom,
		ZoomSensitivity: sensitivity,
	}
	c.SetZoom(1)
	return c
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p gg.Point) gg.Point {
	return gg.Point{
		X: p.X*c.Zoom + c.Pan.X,
		Y: p.Y*c.Zoom + c.Pan.Y,
	}
}

// ScreenToWorld converts screen pixels to a world point.
func (c *Camera) ScreenToWorld(p gg.Point) gg.Point {
	return gg.Point{
		X: (p.X - c.Pan.X) / c.Zoom,
		Y: (p.Y - c.Pan.Y) / c.Zoom,
	}
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt applies a scroll delta while keeping the world point under the
// screen position anchor fixed on screen. Equal scroll steps change zoom by
// equal ratios.
func (c *Camera) ZoomAt(anchor gg.Point, scroll float64) {
	if scroll == 0 {
		return
	}
	before := c.ScreenToWorld(anchor)
	c.SetZoom(c.Zoom * math.Exp(scroll*c.ZoomSensitivity))
	after := c.ScreenToWorld(anchor)
	c.Pan = c.Pan.Add(after.Sub(before).Mul(c.Zoom))
}

// ZoomPercent returns the zoom position within [MinZoom, MaxZoom] as 0..100.
func (c *Camera) ZoomPercent() float64 {
	if c.MaxZoom == c.MinZoom {
		return 100
	}
	return (c.Zoom - c.MinZoom) / (c.MaxZoom - c.MinZoom) * 100
}

// ToWorldLength converts a screen-space length to world units.
func (c *Camera) ToWorldLength(px float64) float64 {
	return px / c.Zoom
}

// Reset restores zoom 1 and removes any pan.
func (c *Camera) Reset() {
	c.SetZoom(1)
	c.Pan = gg.Point{}
}

// Matrix returns the world-to-screen transform for renderers.
func (c *Camera) Matrix() gg.Matrix {
	return gg.Translate(c.Pan.X, c.Pan.Y).Multiply(gg.Scale(c.Zoom, c.Zoom))
}
