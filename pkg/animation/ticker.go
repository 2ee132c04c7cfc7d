// Package animation provides the timing primitives behind kinetic scrolling.
//
// # Core Components
//
//   - [Clock]: the monotonic time source. The package-level clock is swapped
//     with [SetClock] in tests so every component observes the same fake time.
//
//   - [Ticker]: a per-frame callback that is active only while something is
//     animating. Hosts call [StepTickers] once per frame and may skip frames
//     entirely while [HasActiveTickers] reports false.
//
//   - [FrictionSimulation]: closed-form constant-deceleration motion along one
//     axis, used by the momentum phase of a flick.
//
// # Basic Usage
//
//	sim := animation.NewFrictionSimulation(2200, 0, 1800)
//	for t := 0.0; !sim.IsDone(t); t += 1.0 / 60 {
//	    fmt.Println(sim.Position(t))
//	}
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the current clock time. Tickers are driven by the
// host's frame loop via [StepTickers].
type Ticker struct {
	callback func(now time.Time)
	isActive bool
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(now time.Time)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may stop their own ticker.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
