package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TraceStats summarizes a recorded step-response trace.
type TraceStats struct {
	Ticks        int     `csv:"ticks"`
	SettleTime   float64 `csv:"settle_time"`   // Seconds until distance stays below tolerance; -1 if never
	FinalError   float64 `csv:"final_error"`   // Distance to target at the last sample
	MaxOvershoot float64 `csv:"max_overshoot"` // Largest excursion past the target, 0 if none
	SpeedMean    float64 `csv:"speed_mean"`    // Mean |change| over the trace
	SpeedStd     float64 `csv:"speed_std"`
}

// Summarize computes summary statistics for a trace. tolerance is the
// settle band around the target.
func Summarize(samples []Sample, tolerance float64) TraceStats {
	s := TraceStats{SettleTime: -1}
	if len(samples) == 0 {
		return s
	}

	s.Ticks = samples[len(samples)-1].Tick
	s.FinalError = samples[len(samples)-1].Distance

	// Approach direction from the first sample; excursions past the target
	// in that direction count as overshoot.
	dir := sign(samples[0].Target - samples[0].Value)

	speeds := make([]float64, len(samples))
	settleAt := -1.0
	for i, smp := range samples {
		speeds[i] = math.Abs(smp.Change)

		if over := (smp.Value - smp.Target) * dir; over > s.MaxOvershoot {
			s.MaxOvershoot = over
		}

		if smp.Distance <= tolerance {
			if settleAt < 0 {
				settleAt = smp.Time
			}
		} else {
			settleAt = -1
		}
	}
	s.SettleTime = settleAt

	s.SpeedMean, s.SpeedStd = stat.MeanStdDev(speeds, nil)
	if len(speeds) < 2 {
		s.SpeedStd = 0
	}
	return s
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
