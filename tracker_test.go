package touchtrail

import (
	"testing"
	"time"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

const testBound = 8

var t0 = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestTracker() *tracker {
	return newTracker(testBound, clearDelay)
}

func TestTracker_BoundedTrail(t *testing.T) {
	assert := assert.New(t)

	// After one begin and N appends the trail holds min(N+1, bound) points.
	for _, n := range []int{0, 3, testBound - 1, testBound, 5 * testBound} {
		tr := newTestTracker()
		tr.begin(f32.Pt(0, 0))
		for i := 1; i <= n; i++ {
			tr.append(f32.Pt(float32(i), 0))
		}

		want := n + 1
		if want > testBound {
			want = testBound
		}
		assert.Equal(want, tr.trail.len())
		assert.Equal(want, len(tr.line))

		// The retained points are the most recent ones in original order.
		last := tr.trail.points[tr.trail.len()-1]
		assert.Equal(float32(n), last.X)
		for i := 1; i < tr.trail.len(); i++ {
			assert.Less(tr.trail.points[i-1].X, tr.trail.points[i].X)
		}
	}
}

func TestTracker_BeginResetsSession(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.begin(f32.Pt(1, 1))
	tr.append(f32.Pt(2, 2))
	tr.append(f32.Pt(3, 3))

	tr.begin(f32.Pt(50, 60))
	assert.Equal(1, tr.trail.len())
	assert.Equal(f32.Pt(50, 60), tr.start)
	assert.Equal(hudData{X: 50, Y: 60, Show: true}, tr.hud)
}

func TestTracker_DeltaTruncatesTowardZero(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.begin(f32.Pt(10, 10))
	tr.append(f32.Pt(13, 6))
	assert.Equal(hudData{X: 13, Y: 6, DX: 3, DY: -4, Show: true}, tr.hud)

	// Fractional offsets truncate toward zero, not toward minus infinity.
	tr.begin(f32.Pt(10, 10))
	tr.append(f32.Pt(13.9, 6.2))
	assert.Equal(3, tr.hud.DX)
	assert.Equal(-3, tr.hud.DY)
}

func TestTracker_AppendWithoutBeginSkipsHUD(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.append(f32.Pt(5, 5))

	assert.Equal(1, tr.trail.len())
	assert.True(tr.active)
	assert.False(tr.hud.Show)
}

func TestTracker_DeferredClear(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.begin(f32.Pt(1, 1))
	tr.append(f32.Pt(2, 2))
	tr.end(t0)

	// Nothing happens before the deadline.
	assert.False(tr.expire(t0.Add(clearDelay/2)))
	assert.True(tr.active)
	assert.Equal(2, tr.trail.len())

	// At the deadline the trail buffer and the session are cleared, but
	// the retained polyline and the HUD values stay visible.
	assert.True(tr.expire(t0.Add(clearDelay)))
	assert.False(tr.active)
	assert.False(tr.hasStart)
	assert.Equal(0, tr.trail.len())
	assert.Equal(2, len(tr.line))
	assert.True(tr.hud.Show)

	// The clear fires only once.
	assert.False(tr.expire(t0.Add(2 * clearDelay)))
}

func TestTracker_BeginCancelsPendingClear(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.begin(f32.Pt(1, 1))
	tr.end(t0)

	tr.begin(f32.Pt(9, 9))
	tr.append(f32.Pt(10, 10))

	// The stale deadline must not wipe the new session.
	assert.False(tr.expire(t0.Add(clearDelay)))
	assert.True(tr.active)
	assert.Equal(2, tr.trail.len())
	assert.Equal(f32.Pt(9, 9), tr.start)
}

func TestTracker_EndIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	tr.begin(f32.Pt(1, 1))
	tr.end(t0)
	tr.end(t0.Add(100 * time.Millisecond))

	// The second end rearmed the clear: the first deadline is stale.
	assert.False(tr.expire(t0.Add(clearDelay)))
	assert.True(tr.active)

	assert.True(tr.expire(t0.Add(100*time.Millisecond+clearDelay)))
	assert.False(tr.active)
}

func TestTracker_PendingClear(t *testing.T) {
	assert := assert.New(t)

	tr := newTestTracker()
	_, armed := tr.pendingClear()
	assert.False(armed)

	tr.begin(f32.Pt(1, 1))
	tr.end(t0)
	at, armed := tr.pendingClear()
	assert.True(armed)
	assert.Equal(t0.Add(clearDelay), at)

	tr.begin(f32.Pt(2, 2))
	_, armed = tr.pendingClear()
	assert.False(armed)
}
