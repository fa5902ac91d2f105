package touchtrail

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Default geometry of the drawing layers, in pixels. The trail width and
// the ring radius are configurable, the rest is fixed.
const (
	trailWidth     = 3
	crosshairWidth = 1
	circleRadius   = 20
	circleWidth    = 2
)

// drawTrail strokes the retained polyline, blending the segment color from
// the configured gradient start at the oldest retained position to the
// gradient end at the newest. A single retained point is a degenerate path
// and draws nothing.
func (o *Overlay) drawTrail(gtx layout.Context) {
	pts := o.tracker.line
	if len(pts) < 2 {
		return
	}
	n := len(pts) - 1
	for i := 0; i < n; i++ {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		strokeLine(gtx, pts[i], pts[i+1], o.gradientAt(t), o.stroke)
	}
}

// gradientAt blends the trail gradient colors at position t in [0, 1].
// The hue is interpolated in HCL space, the alpha channel linearly.
func (o *Overlay) gradientAt(t float64) color.NRGBA {
	c := o.gradStart.BlendHcl(o.gradEnd, t).Clamped()
	r, g, b := c.RGB255()
	sa, ea := float64(o.cfg.TrailStartColor.A), float64(o.cfg.TrailEndColor.A)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(sa + t*(ea-sa))}
}

// drawCrosshair draws the full-width and full-height guide lines crossing
// at the current contact point p.
func (o *Overlay) drawCrosshair(gtx layout.Context, p f32.Point) {
	size := gtx.Constraints.Max
	col := o.cfg.TrailStartColor
	strokeLine(gtx, f32.Pt(0, p.Y), f32.Pt(float32(size.X), p.Y), col, crosshairWidth)
	strokeLine(gtx, f32.Pt(p.X, 0), f32.Pt(p.X, float32(size.Y)), col, crosshairWidth)
}

// drawCircle draws the fixed-radius marker ring centered at the current
// contact point p.
func (o *Overlay) drawCircle(gtx layout.Context, p f32.Point) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(p.X-o.radius, p.Y))

	// Both arc foci sit on the ring center, relative to the pen position.
	center := f32.Pt(o.radius, 0)
	path.Arc(center, center, 2*math.Pi)
	path.Close()

	defer clip.Stroke{Path: path.End(), Width: circleWidth}.Op().Push(gtx.Ops).Pop()
	paint.ColorOp{Color: o.cfg.TrailStartColor}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// strokeLine strokes a straight segment between p1 and p2.
func strokeLine(gtx layout.Context, p1, p2 f32.Point, col color.NRGBA, width float32) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(p1)
	path.LineTo(p2)

	defer clip.Stroke{Path: path.End(), Width: width}.Op().Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
