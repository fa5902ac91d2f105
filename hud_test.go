package touchtrail

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUDOrigin_Alignments(t *testing.T) {
	var (
		size    = image.Pt(800, 600)
		label   = image.Pt(120, 40)
		padding = 10
	)

	tests := []struct {
		align Alignment
		want  image.Point
	}{
		{TopLeft, image.Pt(10, 10)},
		{TopRight, image.Pt(670, 10)},
		{BottomLeft, image.Pt(10, 550)},
		{BottomRight, image.Pt(670, 550)},
		{LeftCenter, image.Pt(10, 280)},
		{RightCenter, image.Pt(670, 280)},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, hudOrigin(tt.align, size, label, padding))
		})
	}
}

func TestHUDOrigin_PinnedToSmallSurface(t *testing.T) {
	assert := assert.New(t)

	// Label wider than the surface: both axes pin to the top-left edge.
	assert.Equal(image.Pt(0, 0),
		hudOrigin(BottomRight, image.Pt(100, 50), image.Pt(120, 40), 10))
	assert.Equal(image.Pt(0, 0),
		hudOrigin(TopLeft, image.Pt(100, 30), image.Pt(120, 40), 10))

	// Only the horizontal axis is short; the vertical padding survives.
	assert.Equal(image.Pt(0, 10),
		hudOrigin(TopRight, image.Pt(90, 600), image.Pt(100, 40), 10))
}

func TestHUDOrigin_IndependentOfLabelContent(t *testing.T) {
	assert := assert.New(t)

	// A wider label in the same corner moves left, not off-surface.
	small := hudOrigin(BottomRight, image.Pt(800, 600), image.Pt(100, 40), 10)
	wide := hudOrigin(BottomRight, image.Pt(800, 600), image.Pt(200, 40), 10)
	assert.Equal(small.Y, wide.Y)
	assert.Equal(small.X-100, wide.X)
}

func TestHUDData_Text(t *testing.T) {
	assert := assert.New(t)

	h := hudData{X: 13, Y: 6, DX: 3, DY: -4}
	assert.Equal("x:13 y:6 dx:3 dy:-4", h.text())

	assert.Equal("x:0 y:0 dx:0 dy:0", hudData{}.text())
}
