package sim

import (
	"context"
	"math"
	"testing"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/approach"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
)

func testObject(t *testing.T) astro.Object {
	t.Helper()
	obj, err := astro.Properties(astro.BlackHole, 10)
	if err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestSimulatorRun(t *testing.T) {
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), DefaultScript())

	cfg := Config{Dt: 0.1, Duration: 1.0}
	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(result.Frames))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}

	first := result.Frames[0]
	if !first.Active {
		t.Error("default script should trigger at the first frame")
	}
	if first.DistanceKm != 100 {
		t.Errorf("hold profile should pin distance at 100, got %f", first.DistanceKm)
	}
	if math.Abs(first.Sample.TidalForce-4.78e6)/4.78e6 > 0.01 {
		t.Errorf("expected tidal near 4.78e6 at 100 km, got %e", first.Sample.TidalForce)
	}
	if math.Abs(first.Stretch-0.03) > 1e-9 {
		t.Errorf("expected stretch 0.03 after one 0.1s tick, got %f", first.Stretch)
	}
}

func TestSimulatorScriptWindow(t *testing.T) {
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), DefaultScript())

	cfg := Config{Dt: 1, Duration: 6}
	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	wantStretch := []float64{0.3, 0.6, 0.9, 0.9, 0.9, 0.9}
	for i, f := range result.Frames {
		if math.Abs(f.Stretch-wantStretch[i]) > 1e-9 {
			t.Errorf("frame %d: expected stretch %f, got %f", i, wantStretch[i], f.Stretch)
		}
	}

	if result.Frames[2].Command == deform.Identity() {
		t.Error("frame inside the window should carry a stretch command")
	}

	for i := 3; i < 6; i++ {
		if result.Frames[i].Active {
			t.Errorf("frame %d: window closed, should be idle", i)
		}
		if result.Frames[i].Command != deform.Identity() {
			t.Errorf("frame %d: idle frames must carry the identity command", i)
		}
	}
}

func TestSimulatorResetCue(t *testing.T) {
	script := Script{
		{At: 0, Do: ActionTrigger},
		{At: 2, Do: ActionReset},
	}
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), script)

	result, err := s.Run(context.Background(), Config{Dt: 1, Duration: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames[1].Stretch != 0.6 {
		t.Errorf("expected stretch 0.6 before reset, got %f", result.Frames[1].Stretch)
	}
	if result.Frames[2].Stretch != 0 {
		t.Errorf("expected stretch cleared by reset, got %f", result.Frames[2].Stretch)
	}
	if result.Frames[2].Active {
		t.Error("reset should leave the engine idle")
	}
}

func TestSimulatorUnsortedScript(t *testing.T) {
	script := Script{
		{At: 3, Do: ActionStop},
		{At: 0, Do: ActionTrigger},
	}
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), script)

	result, err := s.Run(context.Background(), Config{Dt: 1, Duration: 4})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !result.Frames[0].Active {
		t.Error("trigger cue should fire first despite input order")
	}
	if result.Frames[3].Active {
		t.Error("stop cue should have closed the window")
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), nil)
			_, err := s.Run(context.Background(), tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorBadScript(t *testing.T) {
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), Script{{At: 1, Do: "explode"}})
	if _, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 1}); err == nil {
		t.Error("expected error for unknown action")
	}

	s = New(testObject(t), approach.NewHold(100), deform.NewEngine(), Script{{At: -1, Do: ActionTrigger}})
	if _, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 1}); err == nil {
		t.Error("expected error for negative cue time")
	}
}

type countMetric struct {
	count int
}

func (c *countMetric) Name() string    { return "frames" }
func (c *countMetric) Observe(f Frame) { c.count++ }
func (c *countMetric) Value() float64  { return float64(c.count) }
func (c *countMetric) Reset()          { c.count = 0 }

func TestSimulatorMetrics(t *testing.T) {
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), nil)

	metric := &countMetric{count: 99}
	s.AddMetric(metric)

	result, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got, ok := result.Metrics["frames"]; !ok || got != 10 {
		t.Errorf("expected metric frames=10 after reset, got %f (present=%v)", got, ok)
	}
}

type frameCollector struct {
	frames []Frame
}

func (fc *frameCollector) OnFrame(f Frame) { fc.frames = append(fc.frames, f) }

func TestSimulatorObserver(t *testing.T) {
	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), nil)

	obs := &frameCollector{}
	s.AddObserver(obs)

	result, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(obs.frames) != result.StepsTaken {
		t.Errorf("observer saw %d frames, expected %d", len(obs.frames), result.StepsTaken)
	}
}

func TestSimulatorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(testObject(t), approach.NewHold(100), deform.NewEngine(), nil)
	_, err := s.Run(ctx, Config{Dt: 0.1, Duration: 1.0})
	if err == nil {
		t.Error("expected context error, got nil")
	}
}

func TestRunPair(t *testing.T) {
	bh := testObject(t)
	ns, err := astro.Properties(astro.NeutronStar, 1.4)
	if err != nil {
		t.Fatal(err)
	}

	a := New(bh, approach.NewHold(100), deform.NewEngine(), DefaultScript())
	b := New(ns, approach.NewHold(100), deform.NewEngine(), DefaultScript())

	ra, rb, err := RunPair(context.Background(), a, b, Config{Dt: 0.1, Duration: 2})
	if err != nil {
		t.Fatalf("pair run failed: %v", err)
	}

	if len(ra.Frames) != len(rb.Frames) {
		t.Fatalf("frame counts diverged: %d vs %d", len(ra.Frames), len(rb.Frames))
	}

	// At the same standoff the heavier object tears harder.
	if ra.Frames[0].Sample.TidalForce <= rb.Frames[0].Sample.TidalForce {
		t.Errorf("10 M☉ hole should out-pull 1.4 M☉ star at 100 km: %e vs %e",
			ra.Frames[0].Sample.TidalForce, rb.Frames[0].Sample.TidalForce)
	}
}

func TestRunBatch(t *testing.T) {
	sims := make([]*Simulator, 0, 3)
	for _, mass := range []float64{3, 10, 100} {
		obj, err := astro.Properties(astro.BlackHole, mass)
		if err != nil {
			t.Fatal(err)
		}
		sims = append(sims, New(obj, approach.NewHold(500), deform.NewEngine(), DefaultScript()))
	}

	results, err := RunBatch(context.Background(), sims, Config{Dt: 0.1, Duration: 1})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		prev := results[i-1].Frames[0].Sample.TidalForce
		cur := results[i].Frames[0].Sample.TidalForce
		if cur <= prev {
			t.Errorf("tidal force should rise with mass: %e then %e", prev, cur)
		}
	}
}
