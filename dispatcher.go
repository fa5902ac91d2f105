package touchtrail

import (
	"time"

	"gioui.org/io/pointer"
)

// dispatcher performs single-pointer arbitration over the raw pointer events
// delivered to the overlay and drives the tracker lifecycle. At most one
// pointer identity is visualized at a time; events reported by any other
// pointer are ignored until the tracked one is released or cancelled. The
// identity is kept as a plain equality key, never as a reference into the
// event machinery.
type dispatcher struct {
	tracker *tracker

	tracked  pointer.ID
	tracking bool
}

func newDispatcher(t *tracker) *dispatcher {
	return &dispatcher{tracker: t}
}

// dispatch classifies a single pointer event and forwards the resulting
// begin/append/end transition to the tracker. Unknown event types and events
// from non-tracked pointers are dropped silently; this is a best-effort
// visualization layer, not a correctness-critical path.
func (d *dispatcher) dispatch(e pointer.Event, now time.Time) {
	switch e.Type {
	case pointer.Press:
		if d.tracking || !isContact(e) {
			return
		}
		d.tracked = e.PointerID
		d.tracking = true
		d.tracker.begin(e.Position)
	case pointer.Move, pointer.Drag:
		if !d.tracking || e.PointerID != d.tracked {
			return
		}
		d.tracker.append(e.Position)
	case pointer.Release, pointer.Cancel:
		if !d.tracking || e.PointerID != d.tracked {
			return
		}
		d.tracker.end(now)
		d.tracking = false
	}
}

// isContact reports whether the event comes from a direct contact: a touch,
// or a mouse with the primary button down. Hover-only mouse motion never
// starts a gesture.
func isContact(e pointer.Event) bool {
	if e.Source == pointer.Touch {
		return true
	}
	return e.Buttons.Contain(pointer.ButtonPrimary)
}
