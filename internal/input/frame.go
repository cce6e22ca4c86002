// Package input turns raw pointer and keyboard notifications into one
// Frame per rendered frame.
package input

import "github.com/gogpu/gg"

// Key identifies a keyboard key the canvas reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyHome
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
)

var keyNames = map[Key]string{
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyHome:      "home",
	Key1:         "1",
	Key2:         "2",
	Key3:         "3",
	Key4:         "4",
	Key5:         "5",
	Key6:         "6",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey returns the key with the given name.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// KeyEvent is one key transition since the previous frame.
type KeyEvent struct {
	Key     Key
	Pressed bool
	Repeat  bool
}

// Frame is the input observed during one frame. Pointer positions are in
// screen space.
type Frame struct {
	// Pointer is the latest pointer position; valid when Hovered is set.
	Pointer gg.Point
	Hovered bool

	// Origin is where the current or just finished press began.
	Origin gg.Point

	// A drag that starts and stops in the same frame sets all three.
	DragStarted bool
	Dragging    bool
	DragStopped bool
	Clicked     bool

	// Scroll is the accumulated vertical wheel delta; positive zooms in.
	Scroll float64
	Shift  bool
	Keys   []KeyEvent
}

// KeyPressed reports whether k went down this frame. Auto-repeat does
// not count.
func (f *Frame) KeyPressed(k Key) bool {
	for _, e := range f.Keys {
		if e.Key == k && e.Pressed && !e.Repeat {
			return true
		}
	}
	return false
}

// Idle reports whether the frame carries nothing a tool reacts to.
func (f *Frame) Idle() bool {
	return !f.DragStarted && !f.Dragging && !f.DragStopped && !f.Clicked &&
		f.Scroll == 0 && len(f.Keys) == 0
}
