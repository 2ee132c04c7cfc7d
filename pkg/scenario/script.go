// Package scenario replays scripted pointer and clock events against a
// Flickable and checks the resulting offsets and touch-area states.
//
// Scripts are YAML documents:
//
//	version: v1.0.0
//	name: fling down
//	viewport: {width: 500, height: 500}
//	content: {width: 500, height: 2000}
//	steps:
//	  - press: {x: 250, y: 400}
//	  - advance: 20ms
//	  - move: {x: 250, y: 300}
//	  - release: {x: 250, y: 300}
//	  - advance: 2s
//	  - expect:
//	      animating: false
package scenario

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flick/pkg/errors"
	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
	"github.com/go-drift/flick/pkg/widgets"
)

// SupportedMajor is the script format major version this package accepts.
const SupportedMajor = "v1"

// DefaultTolerance is the allowed offset error when an expectation sets none.
const DefaultTolerance = 0.01

// Script is a parsed scenario.
type Script struct {
	Version  string `yaml:"version"`
	Name     string `yaml:"name,omitempty"`
	Viewport Size   `yaml:"viewport"`
	// Content defaults to four times the viewport when both sides are zero.
	Content    Size              `yaml:"content"`
	Offset     Point             `yaml:"offset,omitempty"`
	Frame      time.Duration     `yaml:"frame,omitempty"`
	Physics    Physics           `yaml:"physics,omitempty"`
	TouchAreas []TouchAreaConfig `yaml:"touch_areas,omitempty"`
	Steps      []Step            `yaml:"steps"`

	// Source is the file the script was read from, if any.
	Source string `yaml:"-"`
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a position in viewport coordinates. Button applies to presses
// and is one of "primary", "secondary", or "middle".
type Point struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Button string  `yaml:"button,omitempty"`
}

// Offset converts p to a graphics offset.
func (p Point) Offset() graphics.Offset {
	return graphics.Offset{X: p.X, Y: p.Y}
}

// Physics overrides physics defaults. Zero fields keep the base value.
type Physics struct {
	Deceleration     float64       `yaml:"deceleration,omitempty"`
	SampleWindow     time.Duration `yaml:"sample_window,omitempty"`
	MaxFlingVelocity float64       `yaml:"max_fling_velocity,omitempty"`
}

// Apply returns base with the non-zero fields of p replacing it.
func (p Physics) Apply(base widgets.Physics) widgets.Physics {
	if p.Deceleration != 0 {
		base.Deceleration = p.Deceleration
	}
	if p.SampleWindow != 0 {
		base.SampleWindow = p.SampleWindow
	}
	if p.MaxFlingVelocity != 0 {
		base.MaxFlingVelocity = p.MaxFlingVelocity
	}
	return base
}

// Validate reports the first field of p that cannot be used.
func (p Physics) Validate(prefix string) error {
	switch {
	case p.Deceleration < 0:
		return &errors.ParseError{Field: prefix + ".deceleration", Reason: "must not be negative", Got: p.Deceleration}
	case p.SampleWindow < 0:
		return &errors.ParseError{Field: prefix + ".sample_window", Reason: "must not be negative", Got: p.SampleWindow}
	case p.MaxFlingVelocity < 0:
		return &errors.ParseError{Field: prefix + ".max_fling_velocity", Reason: "must not be negative", Got: p.MaxFlingVelocity}
	}
	return nil
}

// TouchAreaConfig places a named touch area in content coordinates.
type TouchAreaConfig struct {
	Name   string  `yaml:"name"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect returns the area's rectangle.
func (t TouchAreaConfig) Rect() graphics.Rect {
	return graphics.RectFromLTWH(t.Left, t.Top, t.Width, t.Height)
}

// Step is one script action. Exactly one field is set.
type Step struct {
	Press   *Point        `yaml:"press,omitempty"`
	Move    *Point        `yaml:"move,omitempty"`
	Release *Point        `yaml:"release,omitempty"`
	Cancel  bool          `yaml:"cancel,omitempty"`
	Exit    bool          `yaml:"exit,omitempty"`
	Advance time.Duration `yaml:"advance,omitempty"`
	Tick    bool          `yaml:"tick,omitempty"`
	Expect  *Expectation  `yaml:"expect,omitempty"`
}

// Action names the step's action.
func (s Step) Action() string {
	names := s.actions()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func (s Step) actions() []string {
	var names []string
	if s.Press != nil {
		names = append(names, "press")
	}
	if s.Move != nil {
		names = append(names, "move")
	}
	if s.Release != nil {
		names = append(names, "release")
	}
	if s.Cancel {
		names = append(names, "cancel")
	}
	if s.Exit {
		names = append(names, "exit")
	}
	if s.Advance != 0 {
		names = append(names, "advance")
	}
	if s.Tick {
		names = append(names, "tick")
	}
	if s.Expect != nil {
		names = append(names, "expect")
	}
	return names
}

// Expectation checks flickable state. Unset fields are not checked.
type Expectation struct {
	Offset    *Point           `yaml:"offset,omitempty"`
	Tolerance float64          `yaml:"tolerance,omitempty"`
	Animating *bool            `yaml:"animating,omitempty"`
	Dragging  *bool            `yaml:"dragging,omitempty"`
	TouchArea *TouchAreaExpect `yaml:"touch_area,omitempty"`
}

func (e *Expectation) tolerance() float64 {
	if e.Tolerance > 0 {
		return e.Tolerance
	}
	return DefaultTolerance
}

// TouchAreaExpect checks the state of a named touch area.
type TouchAreaExpect struct {
	Name    string `yaml:"name"`
	Pressed *bool  `yaml:"pressed,omitempty"`
	Hovered *bool  `yaml:"hovered,omitempty"`
	Clicks  *int   `yaml:"clicks,omitempty"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("scenario.Load", errors.KindParsing, path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a script. Source names the script in errors.
func Parse(data []byte, source string) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap("scenario.Parse", errors.KindParsing, source, fmt.Errorf("failed to parse script: %w", err))
	}
	s.Source = source
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap("scenario.Parse", errors.KindParsing, source, err)
	}
	return &s, nil
}

// Validate checks the script for unusable fields.
func (s *Script) Validate() error {
	if !semver.IsValid(s.Version) {
		return &errors.ParseError{Field: "version", Reason: "not a semantic version", Got: s.Version}
	}
	if major := semver.Major(s.Version); major != SupportedMajor {
		return &errors.ParseError{Field: "version", Reason: "unsupported major version " + major + ", want " + SupportedMajor, Got: s.Version}
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return &errors.ParseError{Field: "viewport", Reason: "width and height must be positive", Got: s.Viewport}
	}
	if s.Content.Width < 0 || s.Content.Height < 0 {
		return &errors.ParseError{Field: "content", Reason: "width and height must not be negative", Got: s.Content}
	}
	if s.Frame < 0 {
		return &errors.ParseError{Field: "frame", Reason: "must not be negative", Got: s.Frame}
	}
	if err := s.Physics.Validate("physics"); err != nil {
		return err
	}

	names := make(map[string]bool, len(s.TouchAreas))
	for i, area := range s.TouchAreas {
		field := fmt.Sprintf("touch_areas[%d]", i)
		if strings.TrimSpace(area.Name) == "" {
			return &errors.ParseError{Field: field + ".name", Reason: "required"}
		}
		if names[area.Name] {
			return &errors.ParseError{Field: field + ".name", Reason: "duplicate name", Got: area.Name}
		}
		if area.Width < 0 || area.Height < 0 {
			return &errors.ParseError{Field: field, Reason: "width and height must not be negative"}
		}
		names[area.Name] = true
	}

	if len(s.Steps) == 0 {
		return &errors.ParseError{Field: "steps", Reason: "at least one step is required"}
	}
	for i, step := range s.Steps {
		if err := step.validate(fmt.Sprintf("steps[%d]", i), names); err != nil {
			return err
		}
	}
	return nil
}

func (s Step) validate(field string, areas map[string]bool) error {
	actions := s.actions()
	switch len(actions) {
	case 0:
		return &errors.ParseError{Field: field, Reason: "no action"}
	case 1:
	default:
		return &errors.ParseError{Field: field, Reason: "more than one action: " + strings.Join(actions, ", ")}
	}

	if s.Press != nil {
		if _, err := parseButton(s.Press.Button); err != nil {
			return &errors.ParseError{Field: field + ".press.button", Reason: err.Error(), Got: s.Press.Button}
		}
	}
	if s.Advance < 0 {
		return &errors.ParseError{Field: field + ".advance", Reason: "must be positive", Got: s.Advance}
	}
	if e := s.Expect; e != nil {
		if e.Offset == nil && e.Animating == nil && e.Dragging == nil && e.TouchArea == nil {
			return &errors.ParseError{Field: field + ".expect", Reason: "nothing to check"}
		}
		if e.Tolerance < 0 {
			return &errors.ParseError{Field: field + ".expect.tolerance", Reason: "must not be negative", Got: e.Tolerance}
		}
		if ta := e.TouchArea; ta != nil && !areas[ta.Name] {
			return &errors.ParseError{Field: field + ".expect.touch_area.name", Reason: "unknown touch area", Got: ta.Name}
		}
	}
	return nil
}

func parseButton(name string) (gestures.PointerButton, error) {
	switch strings.ToLower(name) {
	case "", "primary":
		return gestures.ButtonPrimary, nil
	case "secondary":
		return gestures.ButtonSecondary, nil
	case "middle":
		return gestures.ButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button")
}

// FlickableConfig returns the Flickable configuration the script describes,
// with the script's physics applied over base.
func (s *Script) FlickableConfig(base widgets.Physics) widgets.FlickableConfig {
	return widgets.FlickableConfig{
		ViewportSize:  graphics.Size{Width: s.Viewport.Width, Height: s.Viewport.Height},
		ContentSize:   graphics.Size{Width: s.Content.Width, Height: s.Content.Height},
		InitialOffset: s.Offset.Offset(),
		Physics:       s.Physics.Apply(base),
	}
}

// DisplayName returns the script name, falling back to its source.
func (s *Script) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Source != "" {
		return s.Source
	}
	return "scenario"
}
