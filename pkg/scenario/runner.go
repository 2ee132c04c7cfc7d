package scenario

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/flick/pkg/errors"
	flicktest "github.com/go-drift/flick/pkg/testing"
	"github.com/go-drift/flick/pkg/widgets"
)

// Result is the outcome of running a script.
type Result struct {
	Name     string
	Source   string
	Steps    int
	Timeline Timeline
	// Failures lists every expectation that did not hold, in step order.
	Failures []*errors.AssertionError
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Err returns the failures as a single error, or nil if the run passed.
func (r *Result) Err() error {
	if r.Passed() {
		return nil
	}
	return &errors.DriftError{
		Op:     "scenario.Run",
		Kind:   errors.KindAssertion,
		Source: r.Source,
		Err:    fmt.Errorf("%d expectation(s) failed, first: %w", len(r.Failures), r.Failures[0]),
	}
}

// Run executes the script against a fresh Flickable on a fake clock. The
// script's physics block is applied over base. Run never stops early;
// failed expectations are collected in the result.
func Run(s *Script, base widgets.Physics) *Result {
	tester := flicktest.NewFlickTester(s.FlickableConfig(base))
	defer tester.Cleanup()

	r := &runner{
		script: s,
		tester: tester,
		frame:  s.Frame,
		areas:  make(map[string]*trackedArea, len(s.TouchAreas)),
		result: &Result{Name: s.DisplayName(), Source: s.Source},
	}
	if r.frame <= 0 {
		r.frame = flicktest.DefaultFrameInterval
	}
	for _, cfg := range s.TouchAreas {
		tracked := &trackedArea{area: widgets.NewTouchArea(cfg.Rect())}
		tracked.area.OnClicked = func() { tracked.clicks++ }
		tester.Flickable().AddTouchArea(tracked.area)
		r.areas[cfg.Name] = tracked
	}

	r.record()
	for i, step := range s.Steps {
		r.step(i, step)
		r.result.Steps++
	}
	return r.result
}

type trackedArea struct {
	area   *widgets.TouchArea
	clicks int
}

type runner struct {
	script *Script
	tester *flicktest.FlickTester
	frame  time.Duration
	areas  map[string]*trackedArea
	result *Result
}

func (r *runner) elapsed() time.Duration {
	return r.tester.Clock().Elapsed()
}

func (r *runner) record() {
	f := r.tester.Flickable()
	r.result.Timeline = append(r.result.Timeline, Sample{
		Elapsed:   r.elapsed(),
		Offset:    f.Offset(),
		Animating: f.IsAnimating(),
		Dragging:  f.IsDragging(),
	})
}

func (r *runner) step(index int, s Step) {
	switch {
	case s.Press != nil:
		// Buttons were checked by Validate.
		button, _ := parseButton(s.Press.Button)
		r.tester.PressButton(s.Press.Offset(), button)
		r.record()
	case s.Move != nil:
		r.tester.MoveTo(s.Move.Offset())
		r.record()
	case s.Release != nil:
		r.tester.Release(s.Release.Offset())
		r.record()
	case s.Cancel:
		r.tester.Cancel()
		r.record()
	case s.Exit:
		r.tester.Exit()
		r.record()
	case s.Advance > 0:
		r.advance(s.Advance)
	case s.Tick:
		r.tester.Flickable().Tick()
		r.record()
	case s.Expect != nil:
		r.expect(index, s.Expect)
	}
}

// advance ticks once per frame interval and once more at exactly d.
func (r *runner) advance(d time.Duration) {
	for d > r.frame {
		r.tester.Advance(r.frame)
		r.record()
		d -= r.frame
	}
	r.tester.Advance(d)
	r.record()
}

func (r *runner) expect(index int, e *Expectation) {
	f := r.tester.Flickable()
	if e.Offset != nil {
		got := f.Offset()
		tol := e.tolerance()
		if math.Abs(got.X-e.Offset.X) > tol {
			r.fail(index, "offset.x", e.Offset.X, got.X)
		}
		if math.Abs(got.Y-e.Offset.Y) > tol {
			r.fail(index, "offset.y", e.Offset.Y, got.Y)
		}
	}
	if e.Animating != nil && *e.Animating != f.IsAnimating() {
		r.fail(index, "animating", *e.Animating, f.IsAnimating())
	}
	if e.Dragging != nil && *e.Dragging != f.IsDragging() {
		r.fail(index, "dragging", *e.Dragging, f.IsDragging())
	}
	if ta := e.TouchArea; ta != nil {
		tracked := r.areas[ta.Name]
		if tracked == nil {
			r.fail(index, "touch_area", ta.Name, "missing")
			return
		}
		prefix := "touch_area[" + ta.Name + "]."
		if ta.Pressed != nil && *ta.Pressed != tracked.area.Pressed() {
			r.fail(index, prefix+"pressed", *ta.Pressed, tracked.area.Pressed())
		}
		if ta.Hovered != nil && *ta.Hovered != tracked.area.Hovered() {
			r.fail(index, prefix+"hovered", *ta.Hovered, tracked.area.Hovered())
		}
		if ta.Clicks != nil && *ta.Clicks != tracked.clicks {
			r.fail(index, prefix+"clicks", *ta.Clicks, tracked.clicks)
		}
	}
}

func (r *runner) fail(step int, field string, want, got any) {
	r.result.Failures = append(r.result.Failures, &errors.AssertionError{
		Step:    step,
		Elapsed: r.elapsed(),
		Field:   field,
		Want:    want,
		Got:     got,
	})
}
