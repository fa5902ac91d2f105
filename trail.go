package touchtrail

import "gioui.org/f32"

// trail is the bounded, insertion-ordered history of the tracked pointer
// positions. The insertion order defines the visualized polyline.
type trail struct {
	points []f32.Point
	bound  int
}

func newTrail(bound int) *trail {
	if bound <= 0 {
		bound = trailBound
	}
	return &trail{bound: bound}
}

// append records p and drops the oldest entries once the bound is exceeded,
// so the trail always holds the most recent bound points.
func (t *trail) append(p f32.Point) {
	t.points = append(t.points, p)
	if n := len(t.points) - t.bound; n > 0 {
		t.points = append(t.points[:0], t.points[n:]...)
	}
}

// reset empties the trail. The backing storage is kept for reuse.
func (t *trail) reset() {
	t.points = t.points[:0]
}

func (t *trail) len() int {
	return len(t.points)
}
