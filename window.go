package touchtrail

import (
	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// Run opens a standalone window hosting the overlay, for the case where no
// pre-existing Gio surface is available. frame, when non-nil, draws the
// host content; the overlay is layered on top of it. Run blocks until the
// window is closed, either by the window system or by the ESC key, and
// must run on its own goroutine while the main goroutine calls app.Main.
func (o *Overlay) Run(title string, width, height int, frame func(gtx layout.Context)) error {
	w := app.NewWindow(
		app.Title(title),
		app.Size(unit.Px(float32(width)), unit.Px(float32(height))),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			if frame != nil {
				frame(gtx)
			}
			o.Layout(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				w.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
