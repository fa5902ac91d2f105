package touchtrail

import (
	"image"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Overlay ties the pointer dispatcher, the gesture tracker and the drawing
// layers together on top of a host window. All of its methods must be
// called from the UI event loop.
type Overlay struct {
	cfg     *Config
	tracker *tracker
	disp    *dispatcher
	theme   *material.Theme

	// Trail gradient endpoints, precomputed for the per-segment blend.
	gradStart colorful.Color
	gradEnd   colorful.Color

	// Normalized drawing metrics; zero config values fall back to the
	// documented defaults.
	radius float32
	stroke float32

	valid bool
}

// NewOverlay builds an overlay from cfg; a nil cfg selects DefaultConfig.
// This is the only supported construction path: Layout panics on an Overlay
// that was not built here, since a zero value indicates a programming error
// rather than a runtime condition.
func NewOverlay(cfg *Config) *Overlay {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	tr := newTracker(cfg.TrailBound, cfg.ClearDelay)
	o := &Overlay{
		cfg:     cfg,
		tracker: tr,
		disp:    newDispatcher(tr),
		theme:   material.NewTheme(gofont.Collection()),
		radius:  cfg.CircleRadius,
		stroke:  cfg.StrokeWidth,
		valid:   true,
	}
	if o.radius <= 0 {
		o.radius = circleRadius
	}
	if o.stroke <= 0 {
		o.stroke = trailWidth
	}
	o.gradStart, _ = colorful.MakeColor(opaque(cfg.TrailStartColor))
	o.gradEnd, _ = colorful.MakeColor(opaque(cfg.TrailEndColor))
	return o
}

// Layout processes the pointer events of the current frame and draws the
// overlay. Call it at the end of the host frame function.
//
// The pointer area covers the whole surface in pass-through mode, so the
// host application keeps receiving every event. Drawing is deferred to the
// end of the frame, which keeps the overlay above any content submitted
// after it. Events are dispatched in arrival order before the layers are
// redrawn once.
func (o *Overlay) Layout(gtx layout.Context) layout.Dimensions {
	if !overlayEnabled {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	if o == nil || !o.valid {
		panic("touchtrail: use NewOverlay to construct the overlay")
	}

	for _, ev := range gtx.Events(o) {
		if e, ok := ev.(pointer.Event); ok {
			o.disp.dispatch(e, gtx.Now)
		}
	}
	o.tracker.expire(gtx.Now)

	area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
	pass := pointer.PassOp{}.Push(gtx.Ops)
	pointer.InputOp{
		Tag:   o,
		Types: pointer.Press | pointer.Move | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)
	pass.Pop()
	area.Pop()

	// Wake the frame loop up again when the deferred clear is due.
	if at, ok := o.tracker.pendingClear(); ok {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}

	macro := op.Record(gtx.Ops)
	o.drawTrail(gtx)
	if o.tracker.active {
		o.drawCrosshair(gtx, o.tracker.cur)
		o.drawCircle(gtx, o.tracker.cur)
	}
	o.drawHUD(gtx)
	op.Defer(gtx.Ops, macro.Stop())

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// opaque strips the alpha channel for the gradient color math; the alpha is
// interpolated separately.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}
