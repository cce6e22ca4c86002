package tools

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/canvas"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/logger"
)

// Manager owns the tool slots and switches the active tool between frames.
type Manager struct {
	slots   map[Kind]Tool
	current Kind
	next    Kind
	pending bool
	log     *zap.Logger
}

// NewManager creates a manager with one slot per tool and initial active.
// It panics if initial has no slot.
func NewManager(initial Kind, slots ...Tool) *Manager {
	m := &Manager{
		slots:   make(map[Kind]Tool, len(slots)),
		current: initial,
		log:     logger.Named("tools"),
	}
	for _, t := range slots {
		m.slots[t.Kind()] = t
	}
	m.slot(initial)
	return m
}

// NewDefaultManager creates a manager holding every tool.
func NewDefaultManager(initial Kind) *Manager {
	slots := make([]Tool, 0, len(Kinds()))
	for _, k := range Kinds() {
		slots = append(slots, New(k))
	}
	return NewManager(initial, slots...)
}

// Active returns the active tool.
func (m *Manager) Active() Tool {
	return m.slot(m.current)
}

// ActiveKind returns the kind of the active tool.
func (m *Manager) ActiveKind() Kind {
	return m.current
}

// Tool returns the tool in slot k.
func (m *Manager) Tool(k Kind) (Tool, bool) {
	t, ok := m.slots[k]
	return t, ok
}

// Change schedules a switch to k, applied at the start of the next Update.
func (m *Manager) Change(k Kind) {
	m.slot(k)
	m.next = k
	m.pending = true
}

// Update applies a pending switch and feeds the frame to the active tool.
func (m *Manager) Update(f *input.Frame, c *canvas.Canvas) {
	if m.pending {
		m.pending = false
		if m.next != m.current {
			m.slot(m.current).Cancel(c)
			m.log.Debug("tool changed", zap.Stringer("from", m.current), zap.Stringer("to", m.next))
			m.current = m.next
		}
	}
	m.Active().HandleInput(f, c)
}

func (m *Manager) slot(k Kind) Tool {
	t, ok := m.slots[k]
	if !ok {
		panic(fmt.Sprintf("tools: no tool in slot %v", k))
	}
	return t
}
