package anim

import "math"

// Tolerance band around the target. Inside this band the solver stops
// accelerating and lets drag settle the value.
const settleTolerance = 0.01

// Substitute for a zero distance to target, so direction normalization
// never divides by zero.
const minDistance = 1e-99

// movingToward returns the position a value would coast to under drag
// alone, with no further acceleration. drag must be in (0, 1); ln(drag)
// is negative, so a positive rate projects past the current value.
func movingToward(value, rate, drag float64) float64 {
	return value - rate/math.Log(drag)
}

// nextRate advances a scalar rate of change by one time step of length dt.
// The caller normalizes so the current position is 0 and target is the
// signed remaining distance. accel is the drive strength, accelMod shapes
// the acceleration ramp (1 = near-circular, higher = closer to a
// parabola), drag is the stored decay factor in (0, 1].
//
// The returned rate never overshoots: if accelerating would coast past the
// target it is replaced with the exact coast-to-target rate, and if a
// single dt step would cross the target the rate is clamped to land on it
// this frame.
func nextRate(rate, target, accel, accelMod, drag, dt float64) float64 {
	if drag >= 1 {
		// Stored drag of 1 means instant stop.
		return 0
	}

	logDrag := math.Log(drag)
	projected := movingToward(0, rate, drag)

	if projected < target-settleTolerance {
		// Approach: still short of the target. Walk the rate along the
		// acceleration curve by inverting it to a progress value,
		// advancing progress linearly, and mapping back.
		if accelMod > 0 {
			progress := sign(rate) * math.Pow(math.Abs(rate)/(accelMod+1), 1/accelMod)
			progress += dt * accel
			rate = sign(progress) * (accelMod + 1) * math.Pow(math.Abs(progress), accelMod)
		}

		// Would the new rate coast past the target? Replace it with the
		// rate that coasts exactly onto it.
		if movingToward(0, rate, drag) > target {
			rate = -target * logDrag
		}

		// Never cross the target within this frame, however large dt is.
		if rate*dt > target {
			rate = target / dt
		}
		return rate
	}

	// Coast: at or past the target per the projection. A projection in the
	// narrow band between the target and target+rate means a slight
	// overshoot is pending; snap to the exact coast-to-target rate.
	if projected > target && projected < target+rate {
		rate = -target * logDrag
	}
	return rate * math.Pow(drag, dt)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
