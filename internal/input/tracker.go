package input

import "github.com/gogpu/gg"

// DefaultDeadZone is how far, in screen pixels, the pointer may move while
// pressed before the press becomes a drag.
const DefaultDeadZone = 3.0

// Tracker accumulates notifications between frames and decides whether a
// press was a click or a drag.
type Tracker struct {
	deadZone float64

	pos     gg.Point
	hovered bool
	shift   bool

	pressed  bool
	dragging bool
	moved    bool // pointer moved while dragging since the last frame
	origin   gg.Point

	started bool
	stopped bool
	clicked bool
	scroll  float64
	keys    []KeyEvent
}

// NewTracker creates a tracker. A negative dead zone is treated as zero.
func NewTracker(deadZone float64) *Tracker {
	if deadZone < 0 {
		deadZone = 0
	}
	return &Tracker{
		deadZone: deadZone,
		keys:     make([]KeyEvent, 0, 8),
	}
}

// Move records a pointer position.
func (t *Tracker) Move(p gg.Point) {
	if t.dragging && p != t.pos {
		t.moved = true
	}
	t.pos = p
	t.hovered = true
	if t.pressed && !t.dragging && p.Distance(t.origin) > t.deadZone {
		t.dragging = true
		t.started = true
		t.moved = true
	}
}

// Press records the primary button going down at p.
func (t *Tracker) Press(p gg.Point) {
	t.pos = p
	t.hovered = true
	t.pressed = true
	t.dragging = false
	t.origin = p
}

// Release records the primary button going up at p.
func (t *Tracker) Release(p gg.Point) {
	if !t.pressed {
		return
	}
	t.Move(p)
	t.pressed = false
	if t.dragging {
		t.dragging = false
		t.stopped = true
		return
	}
	t.clicked = true
}

// Leave records the pointer leaving the surface.
func (t *Tracker) Leave() {
	t.hovered = false
}

// Scroll adds a wheel delta.
func (t *Tracker) Scroll(dy float64) {
	t.scroll += dy
}

// SetShift records the shift modifier state.
func (t *Tracker) SetShift(down bool) {
	t.shift = down
}

// Key records a key transition.
func (t *Tracker) Key(k Key, pressed, repeat bool) {
	t.keys = append(t.keys, KeyEvent{Key: k, Pressed: pressed, Repeat: repeat})
}

// Frame returns everything observed since the previous call and resets the
// per-frame state. A stop frame still reports Dragging when the pointer
// moved since the previous frame, so a release that follows a move, or a
// whole drag that fits between two polls, applies its last position.
func (t *Tracker) Frame() Frame {
	f := Frame{
		Pointer:     t.pos,
		Hovered:     t.hovered,
		Origin:      t.origin,
		DragStarted: t.started,
		Dragging:    t.dragging || (t.stopped && t.moved),
		DragStopped: t.stopped,
		Clicked:     t.clicked,
		Scroll:      t.scroll,
		Shift:       t.shift,
	}
	if len(t.keys) > 0 {
		f.Keys = append([]KeyEvent(nil), t.keys...)
	}

	t.started, t.stopped, t.clicked, t.moved = false, false, false, false
	t.scroll = 0
	t.keys = t.keys[:0]
	return f
}
