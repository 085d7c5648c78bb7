package scrollhide

import "time"

// heightAnim animates a height between two values over a fixed duration.
// Retargeting mid-flight restarts from the current interpolated value so a
// quick direction wiggle never snaps.
type heightAnim struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func (a *heightAnim) retarget(now time.Time, target float64, d time.Duration) {
	a.from = a.value(now)
	a.to = target
	a.start = now
	a.duration = d
}

// value returns the interpolated height at the given time.
func (a *heightAnim) value(now time.Time) float64 {
	if a.duration <= 0 {
		return a.to
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return a.from
	}
	if elapsed >= a.duration {
		return a.to
	}
	t := float64(elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*t
}

func (a *heightAnim) settled(now time.Time) bool {
	return a.duration <= 0 || now.Sub(a.start) >= a.duration
}
