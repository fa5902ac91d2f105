package touchtrail

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func TestTrail_AppendKeepsInsertionOrder(t *testing.T) {
	assert := assert.New(t)

	tr := newTrail(10)
	for i := 0; i < 5; i++ {
		tr.append(f32.Pt(float32(i), float32(i)))
	}

	assert.Equal(5, tr.len())
	for i, p := range tr.points {
		assert.Equal(float32(i), p.X)
	}
}

func TestTrail_BoundDropsOldestEntries(t *testing.T) {
	assert := assert.New(t)

	tr := newTrail(5)
	for i := 0; i < 12; i++ {
		tr.append(f32.Pt(float32(i), 0))
	}

	assert.Equal(5, tr.len())
	// The retained points are exactly the most recent five, in order.
	for i, p := range tr.points {
		assert.Equal(float32(7+i), p.X)
	}
}

func TestTrail_Reset(t *testing.T) {
	assert := assert.New(t)

	tr := newTrail(5)
	tr.append(f32.Pt(1, 2))
	tr.append(f32.Pt(3, 4))
	tr.reset()

	assert.Equal(0, tr.len())

	tr.append(f32.Pt(5, 6))
	assert.Equal(1, tr.len())
	assert.Equal(f32.Pt(5, 6), tr.points[0])
}

func TestTrail_DefaultBound(t *testing.T) {
	tr := newTrail(0)
	assert.Equal(t, trailBound, tr.bound)
}
