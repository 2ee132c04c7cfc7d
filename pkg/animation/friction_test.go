package animation

import (
	"math"
	"testing"
)

func TestFrictionSimulation_ClosedForm(t *testing.T) {
	sim := NewFrictionSimulation(2000, 100, 1000)

	if got := sim.StopTime(); got != 0.5 {
		t.Fatalf("StopTime() = %v, want 0.5", got)
	}
	// p(0.25) = 100 + 1000*0.25 - 0.5*2000*0.0625 = 287.5
	if got := sim.Position(0.25); math.Abs(got-287.5) > 1e-9 {
		t.Errorf("Position(0.25) = %v, want 287.5", got)
	}
	// rest = 100 + v²/(2a) = 100 + 250
	if got := sim.RestPosition(); math.Abs(got-350) > 1e-9 {
		t.Errorf("RestPosition() = %v, want 350", got)
	}
	if got := sim.Velocity(0.25); math.Abs(got-500) > 1e-9 {
		t.Errorf("Velocity(0.25) = %v, want 500", got)
	}
}

func TestFrictionSimulation_NegativeVelocity(t *testing.T) {
	sim := NewFrictionSimulation(2000, 0, -1000)

	if got := sim.RestPosition(); math.Abs(got+250) > 1e-9 {
		t.Errorf("RestPosition() = %v, want -250", got)
	}
	if got := sim.Velocity(0.1); math.Abs(got+800) > 1e-9 {
		t.Errorf("Velocity(0.1) = %v, want -800", got)
	}
}

func TestFrictionSimulation_MonotonicAndBounded(t *testing.T) {
	sim := NewFrictionSimulation(2200, 0, 1800)
	rest := 1800.0 * 1800.0 / (2 * 2200)

	prev := sim.Position(0)
	for i := 1; i <= 120; i++ {
		tm := float64(i) / 60
		p := sim.Position(tm)
		if p < prev {
			t.Fatalf("position decreased at t=%v: %v < %v", tm, p, prev)
		}
		if p > rest+1e-9 {
			t.Fatalf("position %v exceeded rest displacement %v", p, rest)
		}
		prev = p
	}
}

func TestFrictionSimulation_IdempotentPastStop(t *testing.T) {
	sim := NewFrictionSimulation(2200, 10, -500)
	stop := sim.StopTime()

	if !sim.IsDone(stop) {
		t.Error("expected IsDone at stop time")
	}
	if sim.IsDone(stop / 2) {
		t.Error("expected not done halfway")
	}
	at := sim.Position(stop)
	for _, extra := range []float64{0.001, 1, 100} {
		if got := sim.Position(stop + extra); got != at {
			t.Errorf("Position(stop+%v) = %v, want %v", extra, got, at)
		}
	}
	if sim.Velocity(stop+1) != 0 {
		t.Error("expected zero velocity after stop")
	}
}

func TestFrictionSimulation_AtRest(t *testing.T) {
	tests := []struct {
		name         string
		deceleration float64
		velocity     float64
	}{
		{"zero velocity", 2200, 0},
		{"zero deceleration", 0, 500},
		{"negative deceleration", -10, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NewFrictionSimulation(tt.deceleration, 42, tt.velocity)
			if sim.StopTime() != 0 {
				t.Errorf("StopTime() = %v, want 0", sim.StopTime())
			}
			if !sim.IsDone(0) {
				t.Error("expected simulation to be done immediately")
			}
			if got := sim.Position(1); got != 42 {
				t.Errorf("Position(1) = %v, want 42", got)
			}
		})
	}
}

func TestFrictionSimulation_NegativeTime(t *testing.T) {
	sim := NewFrictionSimulation(2200, 5, 1000)
	if got := sim.Position(-1); got != 5 {
		t.Errorf("Position(-1) = %v, want 5", got)
	}
}
