// Package sdlinput feeds SDL2 events into an input.Tracker.
package sdlinput

import (
	"github.com/gogpu/gg"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/shaper/internal/input"
)

// WheelStep is the scroll delta of one wheel notch.
const WheelStep = 50.0

var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_DELETE:    input.KeyDelete,
	sdl.SCANCODE_BACKSPACE: input.KeyBackspace,
	sdl.SCANCODE_ESCAPE:    input.KeyEscape,
	sdl.SCANCODE_HOME:      input.KeyHome,
	sdl.SCANCODE_1:         input.Key1,
	sdl.SCANCODE_2:         input.Key2,
	sdl.SCANCODE_3:         input.Key3,
	sdl.SCANCODE_4:         input.Key4,
	sdl.SCANCODE_5:         input.Key5,
	sdl.SCANCODE_6:         input.Key6,
}

// KeyFor returns the canvas key for an SDL scancode, or KeyUnknown.
func KeyFor(sc sdl.Scancode) input.Key {
	if k, ok := keymap[sc]; ok {
		return k
	}
	return input.KeyUnknown
}

// Pump polls SDL once per frame.
type Pump struct {
	tracker *input.Tracker

	quit    bool
	resized bool
	width   int
	height  int
}

// New creates a pump that feeds t.
func New(t *input.Tracker) *Pump {
	return &Pump{tracker: t}
}

// Update drains the SDL event queue. Returns true if the window should
// close.
func (p *Pump) Update() bool {
	p.resized = false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		p.handle(event)
	}
	p.tracker.SetShift(sdl.GetModState()&sdl.KMOD_SHIFT != 0)
	return p.quit
}

// Resized returns the new drawable size if the window was resized during the
// last Update.
func (p *Pump) Resized() (int, int, bool) {
	return p.width, p.height, p.resized
}

func (p *Pump) handle(event sdl.Event) {
	t := p.tracker
	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			p.resized = true
			p.width, p.height = int(e.Data1), int(e.Data2)
		case sdl.WINDOWEVENT_LEAVE:
			t.Leave()
		}

	case *sdl.KeyboardEvent:
		k := KeyFor(e.Keysym.Scancode)
		if k == input.KeyUnknown {
			return
		}
		t.Key(k, e.Type == sdl.KEYDOWN, e.Repeat != 0)

	case *sdl.MouseMotionEvent:
		t.Move(gg.Pt(float64(e.X), float64(e.Y)))

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		pos := gg.Pt(float64(e.X), float64(e.Y))
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t.Press(pos)
		} else if e.Type == sdl.MOUSEBUTTONUP {
			t.Release(pos)
		}

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		t.Scroll(dy * WheelStep)
	}
}
