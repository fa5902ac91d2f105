/*
Package touchtrail is a debug visual overlay for Gio applications, which tracks a single
pointer across the window surface and renders a fading gradient trail along its path,
crosshair guide lines and a marker ring at the contact point, and a small HUD label with
the live coordinates and offsets.

The overlay is purely reactive and never consumes input: the host application keeps
receiving every pointer event. Building with the trailoff tag compiles the overlay
down to a no-op for release binaries.

The package provides a demo command line application. To check the supported flags type:

	$ touchtrail --help

In case you wish to mount the overlay inside an existing Gio window, call Layout at the
end of your frame function:

	package main

	import "github.com/touchtrail/touchtrail"

	func main() {
		overlay := touchtrail.NewOverlay(nil)

		// inside the frame loop:
		//	drawContent(gtx)
		//	overlay.Layout(gtx)
	}
*/
package touchtrail
