// Package script replays recorded gestures against an App.
//
// A script is a YAML document:
//
//	tool: drawing
//	settings:
//	  tolerance: 4
//	steps:
//	  - drag: {points: [[10, 10], [60, 40], [120, 10]]}
//	  - tool: selection
//	  - click: {at: [60, 40], shift: true}
//	  - scroll: {at: [200, 200], delta: 120}
//	  - key: delete
//
// Coordinates are screen pixels. Steps go through an input.Tracker so drags
// pass the same dead zone as live input.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shaper/internal/app"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/input"
	"github.com/Faultbox/shaper/internal/tools"
)

// Point is an [x, y] pair.
type Point [2]float64

func (p Point) pt() gg.Point { return gg.Pt(p[0], p[1]) }

// Settings override canvas settings before the first step. Nil fields keep
// the configured value.
type Settings struct {
	Tolerance          *float64 `yaml:"tolerance"`
	Thickness          *float64 `yaml:"thickness"`
	StrokeColor        *string  `yaml:"stroke_color"`
	ShowHandles        *bool    `yaml:"show_handles"`
	ShowOriginalStroke *bool    `yaml:"show_original_stroke"`
}

// Drag presses at the first point, moves through the rest and releases at
// the last.
type Drag struct {
	Points []Point `yaml:"points"`
	Shift  bool    `yaml:"shift"`
}

// Click presses and releases without moving.
type Click struct {
	At    Point `yaml:"at"`
	Shift bool  `yaml:"shift"`
}

// Scroll turns the wheel with the pointer at At.
type Scroll struct {
	At    Point   `yaml:"at"`
	Delta float64 `yaml:"delta"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	Tool   string  `yaml:"tool,omitempty"`
	Drag   *Drag   `yaml:"drag,omitempty"`
	Click  *Click  `yaml:"click,omitempty"`
	Scroll *Scroll `yaml:"scroll,omitempty"`
	Key    string  `yaml:"key,omitempty"`
}

// Script is a parsed gesture script.
type Script struct {
	Tool     string   `yaml:"tool"`
	Settings Settings `yaml:"settings"`
	Steps    []Step   `yaml:"steps"`
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseBytes decodes a script held in memory.
func ParseBytes(data []byte) (*Script, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks tool names, key names and step shapes.
func (s *Script) Validate() error {
	var errs []error
	if s.Tool != "" {
		if _, err := tools.ParseKind(s.Tool); err != nil {
			errs = append(errs, fmt.Errorf("tool: %w", err))
		}
	}
	if t := s.Settings.Tolerance; t != nil && *t <= 0 {
		errs = append(errs, fmt.Errorf("settings.tolerance must be positive, got %v", *t))
	}
	if t := s.Settings.Thickness; t != nil && *t <= 0 {
		errs = append(errs, fmt.Errorf("settings.thickness must be positive, got %v", *t))
	}
	if c := s.Settings.StrokeColor; c != nil && !config.IsHexColor(*c) {
		errs = append(errs, fmt.Errorf("settings.stroke_color %q is not a hex color", *c))
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("steps[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	n := 0
	if st.Tool != "" {
		n++
		if _, err := tools.ParseKind(st.Tool); err != nil {
			return err
		}
	}
	if st.Drag != nil {
		n++
		if len(st.Drag.Points) < 2 {
			return fmt.Errorf("drag needs at least 2 points, got %d", len(st.Drag.Points))
		}
	}
	if st.Click != nil {
		n++
	}
	if st.Scroll != nil {
		n++
	}
	if st.Key != "" {
		n++
		if _, ok := input.ParseKey(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one action, got %d", n)
	}
	return nil
}

// toolKeys are the hotkeys that select each tool, in Kind order.
var toolKeys = [...]input.Key{input.Key1, input.Key2, input.Key3, input.Key4, input.Key5, input.Key6}

// Frames expands the steps into the frames a host would produce. Tool steps
// become hotkey presses.
func (s *Script) Frames(deadZone float64) []input.Frame {
	t := input.NewTracker(deadZone)
	var frames []input.Frame
	emit := func() { frames = append(frames, t.Frame()) }

	for _, st := range s.Steps {
		switch {
		case st.Tool != "":
			k, _ := tools.ParseKind(st.Tool)
			t.Key(toolKeys[k], true, false)
			emit()
			t.Key(toolKeys[k], false, false)
			emit()
		case st.Drag != nil:
			t.SetShift(st.Drag.Shift)
			t.Press(st.Drag.Points[0].pt())
			emit()
			for _, p := range st.Drag.Points[1:] {
				t.Move(p.pt())
				emit()
			}
			t.Release(st.Drag.Points[len(st.Drag.Points)-1].pt())
			emit()
			t.SetShift(false)
		case st.Click != nil:
			t.SetShift(st.Click.Shift)
			t.Press(st.Click.At.pt())
			emit()
			t.Release(st.Click.At.pt())
			emit()
			t.SetShift(false)
		case st.Scroll != nil:
			t.Move(st.Scroll.At.pt())
			t.Scroll(st.Scroll.Delta)
			emit()
		case st.Key != "":
			k, _ := input.ParseKey(st.Key)
			t.Key(k, true, false)
			emit()
			t.Key(k, false, false)
			emit()
		}
	}
	return frames
}

// Apply sets the script's initial tool and settings on a.
func (s *Script) Apply(a *app.App) error {
	if s.Tool != "" {
		k, err := tools.ParseKind(s.Tool)
		if err != nil {
			return err
		}
		a.SelectTool(k)
	}
	set := s.Settings
	if set.Tolerance != nil {
		a.SetTolerance(*set.Tolerance)
	}
	if set.Thickness != nil {
		a.SetThickness(*set.Thickness)
	}
	if set.StrokeColor != nil {
		a.SetStrokeColor(config.Color(*set.StrokeColor))
	}
	if set.ShowHandles != nil {
		a.SetShowHandles(*set.ShowHandles)
	}
	if set.ShowOriginalStroke != nil {
		a.SetShowOriginalStroke(*set.ShowOriginalStroke)
	}
	return nil
}

// Run applies the script to a and feeds every frame through it. It returns
// the number of frames played.
func (s *Script) Run(a *app.App, deadZone float64) (int, error) {
	if err := s.Apply(a); err != nil {
		return 0, err
	}
	frames := s.Frames(deadZone)
	for i := range frames {
		a.Update(&frames[i])
	}
	return len(frames), nil
}
