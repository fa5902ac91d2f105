package touchtrail

import (
	"fmt"
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/touchtrail/touchtrail/utils"
)

// HUD label metrics, in pixels.
const (
	hudTextSize = 14
	// hudPadding is the distance between the label box and the surface edge.
	hudPadding = 10
	// hudInset is the space around the text inside the label box.
	hudInset  = 8
	hudCorner = 4
)

// hudData is the numeric snapshot shown by the HUD: the current pointer
// position and its offset from the gesture start point. It is retained
// through the deferred clear so the last values stay readable until the
// next gesture begins.
type hudData struct {
	X, Y, DX, DY int
	Show         bool
}

func (h hudData) text() string {
	return fmt.Sprintf("x:%d y:%d dx:%d dy:%d", h.X, h.Y, h.DX, h.DY)
}

// hudOrigin computes the top-left corner of a label box of the given size
// for the configured alignment, independent of the trail state. The corner
// anchors keep the padding distance from both edges, the centered edge
// anchors from the anchoring edge only.
func hudOrigin(align Alignment, size, label image.Point, padding int) image.Point {
	var p image.Point
	switch align {
	case TopLeft:
		p = image.Pt(padding, padding)
	case TopRight:
		p = image.Pt(size.X-label.X-padding, padding)
	case BottomLeft:
		p = image.Pt(padding, size.Y-label.Y-padding)
	case BottomRight:
		p = image.Pt(size.X-label.X-padding, size.Y-label.Y-padding)
	case LeftCenter:
		p = image.Pt(padding, (size.Y-label.Y)/2)
	case RightCenter:
		p = image.Pt(size.X-label.X-padding, (size.Y-label.Y)/2)
	default:
		p = image.Pt(padding, padding)
	}
	// Pin the label on-surface when the surface is smaller than the label
	// plus its padding.
	p.X = utils.Max(0, utils.Min(p.X, size.X-label.X))
	p.Y = utils.Max(0, utils.Min(p.Y, size.Y-label.Y))
	return p
}

// drawHUD renders the coordinate readout on its background box. The label
// is measured off-screen first, since the placement depends on its size;
// the recorded drawing is then replayed at the computed origin. Placement
// is recomputed from the current constraints on every frame, so window
// resizes reposition the HUD without any extra bookkeeping.
func (o *Overlay) drawHUD(gtx layout.Context) {
	if !o.tracker.hud.Show {
		return
	}

	lbl := material.Label(o.theme, unit.Px(hudTextSize), o.tracker.hud.text())
	lbl.Color = o.cfg.HUDTextColor

	tgtx := gtx
	tgtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(tgtx)
	call := macro.Stop()

	box := image.Pt(dims.Size.X+2*hudInset, dims.Size.Y+2*hudInset)
	orig := hudOrigin(o.cfg.HUDAlign, gtx.Constraints.Max, box, hudPadding)

	defer op.Offset(layout.FPt(orig)).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, o.cfg.HUDBackground,
		clip.UniformRRect(image.Rectangle{Max: box}, hudCorner).Op(gtx.Ops))

	defer op.Offset(f32.Pt(hudInset, hudInset)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
