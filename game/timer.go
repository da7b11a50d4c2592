package game

import (
	"math"
	"time"
)

// quantum is the longest time the ball is integrated over in one move.
const quantum = 0.005

// Timer measures the time between two loop invocations.
type Timer struct {
	lastTick time.Time
}

func NewTimer(start time.Time) *Timer {
	return &Timer{lastTick: start}
}

// Update returns the seconds elapsed since the previous update and restarts the count.
func (t *Timer) Update(now time.Time) float64 {
	delta := now.Sub(t.lastTick).Seconds()
	t.lastTick = now
	return delta
}

func (t *Timer) LastTick() time.Time {
	return t.lastTick
}

// substeps splits delta into whole quanta plus whatever is left over.
func substeps(delta float64) (int, float64) {
	whole := int(math.Floor(delta / quantum))
	return whole, delta - float64(whole)*quantum
}
