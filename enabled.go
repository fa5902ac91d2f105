//go:build !trailoff
// +build !trailoff

package touchtrail

// overlayEnabled includes the overlay in the build. Release binaries are
// built with the trailoff tag, which compiles the whole subsystem down to
// a no-op.
const overlayEnabled = true
