package touchtrail

import (
	"time"

	"gioui.org/f32"
)

const (
	// trailBound is the maximum number of positions retained in the trail.
	trailBound = 500
	// clearDelay is how long the crosshair and the marker ring outlive the
	// gesture after the pointer is released.
	clearDelay = 300 * time.Millisecond
)

// tracker owns the gesture session state: the bounded trail, the retained
// polyline, the session start point and the deferred clear. It is driven
// exclusively through the begin/append/end lifecycle and runs entirely on
// the UI event loop, so no locking is involved.
//
// The trail buffer holds the live position history, while line is the
// polyline as last rebuilt from it. The two only diverge after the deferred
// clear fires: the buffer is emptied but the polyline stays visible until
// the next gesture begins.
type tracker struct {
	trail *trail
	line  []f32.Point

	start    f32.Point
	hasStart bool
	cur      f32.Point
	active   bool

	hud hudData

	delay      time.Duration
	clearAt    time.Time
	clearArmed bool
}

func newTracker(bound int, delay time.Duration) *tracker {
	if delay <= 0 {
		delay = clearDelay
	}
	return &tracker{
		trail: newTrail(bound),
		delay: delay,
	}
}

// begin starts a new gesture session at p. Any pending deferred clear is
// cancelled first, so a stale timer can never wipe the new session.
func (t *tracker) begin(p f32.Point) {
	t.cancelClear()
	t.trail.reset()
	t.trail.append(p)
	t.rebuildLine()
	t.start, t.hasStart = p, true
	t.cur = p
	t.active = true
	t.hud = hudData{X: int(p.X), Y: int(p.Y), Show: true}
}

// append extends the current session with p and refreshes the HUD offsets.
// The offsets are truncated toward zero. A missing start point skips the
// HUD update but keeps the trail, crosshair and ring in sync.
func (t *tracker) append(p f32.Point) {
	t.trail.append(p)
	t.rebuildLine()
	t.cur = p
	t.active = true
	if !t.hasStart {
		return
	}
	t.hud = hudData{
		X:    int(p.X),
		Y:    int(p.Y),
		DX:   int(p.X - t.start.X),
		DY:   int(p.Y - t.start.Y),
		Show: true,
	}
}

// end closes the session and arms the deferred clear. Calling end again
// before the deadline rearms it, leaving a single pending clear.
func (t *tracker) end(now time.Time) {
	t.cancelClear()
	t.clearArmed = true
	t.clearAt = now.Add(t.delay)
}

// cancelClear drops any pending deferred clear. Cancelling when none is
// armed is a no-op.
func (t *tracker) cancelClear() {
	t.clearArmed = false
}

// expire fires the deferred clear once its deadline has passed: the start
// point is forgotten, the trail buffer is emptied and the crosshair and
// ring disappear. The retained polyline and the HUD values stay visible
// until the next gesture begins. It reports whether the clear fired.
func (t *tracker) expire(now time.Time) bool {
	if !t.clearArmed || now.Before(t.clearAt) {
		return false
	}
	t.clearArmed = false
	t.hasStart = false
	t.active = false
	t.trail.reset()
	return true
}

// pendingClear returns the deadline of the armed deferred clear, if any.
func (t *tracker) pendingClear() (time.Time, bool) {
	return t.clearAt, t.clearArmed
}

// rebuildLine recreates the retained polyline from the trail buffer.
func (t *tracker) rebuildLine() {
	t.line = append(t.line[:0], t.trail.points...)
}
