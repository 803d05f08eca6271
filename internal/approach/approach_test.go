package approach

import (
	"math"
	"testing"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

func TestHoldConstant(t *testing.T) {
	p := NewHold(150)

	for i := 0; i < 10; i++ {
		if d := p.Advance(1); d != 150 {
			t.Fatalf("expected 150, got %f", d)
		}
	}

	if p.Done() {
		t.Error("hold profile should never finish")
	}
}

func TestLinearDescent(t *testing.T) {
	p := NewLinear(100, 5, 10)

	d := p.Advance(2)
	if math.Abs(d-90) > 1e-9 {
		t.Errorf("expected 90 after 2s at 5 km/s, got %f", d)
	}

	if p.Done() {
		t.Error("should not be done above the floor")
	}
}

func TestLinearFloorClamp(t *testing.T) {
	p := NewLinear(100, 50, 10)

	var d float64
	for i := 0; i < 10; i++ {
		d = p.Advance(1)
	}

	if d != 10 {
		t.Errorf("expected pin at floor 10, got %f", d)
	}
	if !p.Done() {
		t.Error("expected done at floor")
	}
	if p.SpeedKmS() != 0 {
		t.Errorf("expected zero speed once pinned, got %f", p.SpeedKmS())
	}
}

func TestLinearDefaultFloor(t *testing.T) {
	p := NewLinear(5, 10, 0)

	d := p.Advance(10)
	if d <= 0 {
		t.Errorf("distance must stay positive, got %f", d)
	}
}

func TestFreefallAccelerates(t *testing.T) {
	p := NewFreefall(1e5, 10)

	p.Advance(1)
	early := p.SpeedKmS()

	for i := 0; i < 9; i++ {
		p.Advance(1)
	}
	later := p.SpeedKmS()

	if early <= 0 {
		t.Fatalf("expected inward speed after 1s, got %f", early)
	}
	if later <= early {
		t.Errorf("infall should accelerate: %f then %f", early, later)
	}
}

func TestFreefallPlungeTime(t *testing.T) {
	// From rest at 1e5 km toward a 10 solar mass hole, Newtonian
	// free fall reaches the horizon in about 30.5 s.
	horizon, err := astro.SchwarzschildRadiusKm(10)
	if err != nil {
		t.Fatal(err)
	}

	p := NewFreefall(1e5, 10)
	p.FloorKm = horizon

	dt := 0.005
	var elapsed float64
	for !p.Done() {
		p.Advance(dt)
		elapsed += dt
		if elapsed > 60 {
			t.Fatal("plunge did not finish within 60s of sim time")
		}
	}

	if elapsed < 30 || elapsed > 31 {
		t.Errorf("expected plunge near 30.5s, got %f", elapsed)
	}
}

func TestFreefallMonotoneDescent(t *testing.T) {
	p := NewFreefall(1000, 10)
	p.FloorKm = 30

	prev := 1000.0
	for i := 0; i < 200 && !p.Done(); i++ {
		d := p.Advance(0.01)
		if d > prev {
			t.Fatalf("distance rose from %f to %f", prev, d)
		}
		prev = d
	}
}

func TestFreefallInitialSpeed(t *testing.T) {
	slow := NewFreefall(1e4, 10)
	fast := NewFreefall(1e4, 10)
	fast.InwardKmS = 100

	dSlow := slow.Advance(0.1)
	dFast := fast.Advance(0.1)

	if dFast >= dSlow {
		t.Errorf("initial speed should close faster: %f vs %f", dFast, dSlow)
	}
}

func TestFreefallPinnedStaysPinned(t *testing.T) {
	p := NewFreefall(100, 10)
	p.FloorKm = 50

	for i := 0; i < 10000 && !p.Done(); i++ {
		p.Advance(0.01)
	}
	if !p.Done() {
		t.Fatal("expected the body to reach the floor")
	}

	if d := p.Advance(1); d != 50 {
		t.Errorf("expected pin at 50, got %f", d)
	}
	if p.SpeedKmS() != 0 {
		t.Errorf("expected zero speed at floor, got %f", p.SpeedKmS())
	}
}

func TestProfileInterfaces(t *testing.T) {
	var _ Profile = (*Hold)(nil)
	var _ Profile = (*Linear)(nil)
	var _ Profile = (*Freefall)(nil)
	var _ SpeedReporter = (*Linear)(nil)
	var _ SpeedReporter = (*Freefall)(nil)
}
