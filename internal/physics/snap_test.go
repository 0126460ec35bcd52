package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapTarget(t *testing.T) {
	snaps := []float64{0.25, 0.5, 1.0}
	tests := []struct {
		name     string
		position float64
		velocity float64
		want     float64
	}{
		{name: "at rest picks nearer lower", position: 0.6, velocity: 0, want: 0.5},
		{name: "at rest picks nearer upper", position: 0.9, velocity: 0, want: 1.0},
		{name: "at rest tie goes up", position: 0.75, velocity: 0, want: 1.0},
		{name: "below first candidate", position: 0.1, velocity: -5, want: 0.25},
		{name: "exactly on first candidate", position: 0.25, velocity: 5, want: 0.25},
		{name: "moving down picks previous", position: 0.9, velocity: -5, want: 0.5},
		{name: "moving up picks next", position: 0.55, velocity: 5, want: 1.0},
		{name: "past last candidate", position: 1.2, velocity: 0, want: 1.0},
		{name: "velocity inside tolerance counts as rest", position: 0.6, velocity: 0.0005, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapTarget(tt.position, tt.velocity, snaps, DefaultTolerance)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapSimulation_MinimumSpeed(t *testing.T) {
	snaps := []float64{100, 400, 800}

	up := NewSnapSimulation(500, 10, snaps, 0, DefaultTolerance)
	assert.Equal(t, 800.0, up.Target())
	assert.Equal(t, MinSnapSpeed, up.Velocity())

	down := NewSnapSimulation(300, -10, snaps, 0, DefaultTolerance)
	assert.Equal(t, 100.0, down.Target())
	assert.Equal(t, -MinSnapSpeed, down.Velocity())

	fast := NewSnapSimulation(500, 4000, snaps, 0, DefaultTolerance)
	assert.Equal(t, 4000.0, fast.Velocity())
}

func TestSnapSimulation_SlowReleaseSnapsAgainstVelocity(t *testing.T) {
	// Released at rest nearer the lower candidate: the snap runs downward.
	s := NewSnapSimulation(420, 0, []float64{100, 400, 800}, 0, ToleranceFor(1))
	assert.Equal(t, 400.0, s.Target())
	assert.Less(t, s.Velocity(), 0.0)
}

func TestSnapSimulation_FixedDuration(t *testing.T) {
	s := NewSnapSimulation(300, 9999, []float64{100, 400, 800}, 200*time.Millisecond, DefaultTolerance)
	assert.Equal(t, 400.0, s.Target())
	assert.InDelta(t, 500.0, s.Velocity(), 1e-9)
	assert.InDelta(t, 350.0, s.X(0.1), 1e-9)
	assert.False(t, s.IsDone(0.1))
	assert.True(t, s.IsDone(0.25))
	assert.Equal(t, 400.0, s.X(0.25))
}

func TestSnapSimulation_SubMillisecondDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     float64
	}{
		{500 * time.Microsecond, 200000},
		{1500 * time.Microsecond, 100 / 0.0015},
	}
	for _, tt := range tests {
		t.Run(tt.duration.String(), func(t *testing.T) {
			s := NewSnapSimulation(300, 0, []float64{100, 400, 800}, tt.duration, DefaultTolerance)
			assert.Equal(t, 400.0, s.Target())
			assert.InDelta(t, tt.want, s.Velocity(), 1e-6)
			assert.True(t, s.IsDone(2*tt.duration.Seconds()))
		})
	}
}

func TestSnapSimulation_EndsExactlyOnTarget(t *testing.T) {
	snaps := []float64{0, 333.3, 1000}
	s := NewSnapSimulation(600, 2500, snaps, 0, DefaultTolerance)

	var last float64
	for tick := 0; tick < 600; tick++ {
		ts := float64(tick) / 60
		last = s.X(ts)
		if s.IsDone(ts) {
			break
		}
		assert.NotEqual(t, 0.0, s.Dx(ts))
	}
	assert.Equal(t, 1000.0, last)
	assert.Contains(t, snaps, last)
	assert.Equal(t, 0.0, s.Dx(10))
}

func TestSnapSimulation_NeverOvershoots(t *testing.T) {
	s := NewSnapSimulation(350, -100000, []float64{100, 400}, 0, DefaultTolerance)
	for tick := 0; tick < 30; tick++ {
		assert.GreaterOrEqual(t, s.X(float64(tick)/60), 100.0)
	}
}

func TestSnapSimulation_EmptySnapList(t *testing.T) {
	s := NewSnapSimulation(250, 100, nil, 0, DefaultTolerance)
	assert.True(t, s.IsDone(0))
	assert.Equal(t, 250.0, s.X(1))
}
