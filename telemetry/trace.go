// Package telemetry records animation traces and summary statistics for
// headless experiment runs.
package telemetry

import "github.com/pthm-cable/animvec/anim"

// Sample captures one axis of an animator at one tick.
type Sample struct {
	Tick     int     `csv:"tick"`
	Time     float64 `csv:"time"`
	Value    float64 `csv:"value"`
	Target   float64 `csv:"target"`
	Change   float64 `csv:"change"`
	Distance float64 `csv:"distance"`
}

// Recorder samples one axis of an animator over a run.
type Recorder struct {
	axis    int
	stride  int
	tick    int
	elapsed float64
	samples []Sample
}

// NewRecorder creates a recorder for the given axis, keeping every
// stride-th tick (stride < 1 records everything).
func NewRecorder(axis, stride int) *Recorder {
	if stride < 1 {
		stride = 1
	}
	return &Recorder{axis: axis, stride: stride}
}

// Record samples the animator after a tick of length dt.
func (r *Recorder) Record(v *anim.Vec, dt float64) {
	r.tick++
	r.elapsed += dt
	if r.tick%r.stride != 0 {
		return
	}
	r.samples = append(r.samples, Sample{
		Tick:     r.tick,
		Time:     r.elapsed,
		Value:    v.Value(r.axis),
		Target:   v.Target(r.axis),
		Change:   v.Change(r.axis),
		Distance: v.DistanceToTarget(),
	})
}

// Samples returns the recorded samples in tick order.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.samples)
}
