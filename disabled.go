//go:build trailoff
// +build trailoff

package touchtrail

// overlayEnabled is false in release builds: Layout draws nothing and
// registers no pointer area.
const overlayEnabled = false
