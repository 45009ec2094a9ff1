package anim

import (
	"math"
	"testing"
)

const (
	testAccel    = 3000.0
	testAccelMod = 1.3
	testDrag     = 1e-7 // stored form of drag input 7
	testDT       = 1.0 / 60.0
)

func TestNextRate_InstantStopOnUnitDrag(t *testing.T) {
	rate := nextRate(500, 100, testAccel, testAccelMod, 1, testDT)
	if rate != 0 {
		t.Errorf("expected rate 0 for drag 1, got %f", rate)
	}
}

func TestNextRate_AcceleratesFromRest(t *testing.T) {
	rate := nextRate(0, 100, testAccel, testAccelMod, testDrag, testDT)

	if rate <= 0 {
		t.Fatalf("expected positive rate from rest, got %f", rate)
	}
	// Neither the coast projection nor the literal step may pass the target
	if proj := movingToward(0, rate, testDrag); proj > 100 {
		t.Errorf("coast projection overshoots: %f > 100", proj)
	}
	if step := rate * testDT; step > 100 {
		t.Errorf("single step overshoots: %f > 100", step)
	}
}

func TestNextRate_CoastClampNearTarget(t *testing.T) {
	// Close to the target the acceleration curve would coast past it; the
	// rate must snap to the exact coast-to-target rate instead.
	rate := nextRate(0, 1, testAccel, testAccelMod, testDrag, testDT)

	want := -1 * math.Log(testDrag) // coasts exactly onto the target
	if math.Abs(rate-want) > 1e-9 {
		t.Errorf("expected coast-to-target rate %f, got %f", want, rate)
	}
}

func TestNextRate_StepClampOnLargeDelta(t *testing.T) {
	// A one-second delta would blow far past a target 10 units away; the
	// rate must be clamped to land exactly on the target this frame.
	rate := nextRate(0, 10, testAccel, testAccelMod, testDrag, 1.0)

	if math.Abs(rate-10) > 1e-9 {
		t.Errorf("expected landing rate 10, got %f", rate)
	}
}

func TestNextRate_FreeCoastDecays(t *testing.T) {
	// Projection just below the target but inside the tolerance band:
	// no snap, plain exponential decay.
	rate := 16.0
	target := 1.0
	proj := movingToward(0, rate, testDrag)
	if proj < target-settleTolerance || proj > target {
		t.Fatalf("test setup: projection %f not in decay band", proj)
	}

	got := nextRate(rate, target, testAccel, testAccelMod, testDrag, testDT)
	want := rate * math.Pow(testDrag, testDT)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected decayed rate %f, got %f", want, got)
	}
}

func TestNextRate_OvershootBandSnaps(t *testing.T) {
	// Projection past the target but short of target+rate: small overshoot
	// pending, rate snaps to the coast-to-target rate before decaying.
	rate := 100.0
	target := 1.0
	proj := movingToward(0, rate, testDrag)
	if proj <= target || proj >= target+rate {
		t.Fatalf("test setup: projection %f not in overshoot band", proj)
	}

	got := nextRate(rate, target, testAccel, testAccelMod, testDrag, testDT)
	want := -target * math.Log(testDrag) * math.Pow(testDrag, testDT)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected snapped rate %f, got %f", want, got)
	}
}

func TestNextRate_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name                  string
		rate, target          float64
		accel, accelMod, drag float64
	}{
		{"zero modifier", 0, 100, testAccel, 0, testDrag},
		{"zero acceleration", 0, 100, 0, testAccelMod, testDrag},
		{"zero distance", 0, 0, testAccel, testAccelMod, testDrag},
		{"zero everything", 0, 0, 0, 0, testDrag},
		{"negative rate at rest distance", -50, 1, testAccel, testAccelMod, testDrag},
	}

	for _, tc := range tests {
		got := nextRate(tc.rate, tc.target, tc.accel, tc.accelMod, tc.drag, testDT)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("%s: rate is not finite: %f", tc.name, got)
		}
	}
}

func TestNextRate_ZeroDistanceStaysAtRest(t *testing.T) {
	got := nextRate(0, 0, testAccel, testAccelMod, testDrag, testDT)
	if got != 0 {
		t.Errorf("expected rate to stay 0 at rest on target, got %f", got)
	}
}

func TestMovingToward_ProjectsPastValue(t *testing.T) {
	// Positive rate with drag < 1 projects ahead of the current value.
	proj := movingToward(5, 100, testDrag)
	if proj <= 5 {
		t.Errorf("expected projection past 5, got %f", proj)
	}
	// Zero rate projects nowhere.
	if proj := movingToward(5, 0, testDrag); proj != 5 {
		t.Errorf("expected stationary projection 5, got %f", proj)
	}
}
