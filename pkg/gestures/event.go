package gestures

import "time"

// EventKind identifies the category of a raw input event delivered by the
// host. Dispatch over events is a single switch on this tag.
type EventKind int

const (
	// EventButtonPress is a pointer button press.
	EventButtonPress EventKind = iota
	// EventButtonRelease is a pointer button release.
	EventButtonRelease
	// EventMotion is pointer movement while no button-originated sequence
	// owns the point (hover) or while it does (drag).
	EventMotion
	// EventTouchBegin is a new touch contact.
	EventTouchBegin
	// EventTouchUpdate is touch movement.
	EventTouchUpdate
	// EventTouchEnd is a touch contact lifting off normally.
	EventTouchEnd
	// EventTouchCancel is a touch contact being cancelled by the platform.
	EventTouchCancel
	// EventEnter is a pointer crossing into a region.
	EventEnter
	// EventLeave is a pointer crossing out of a region.
	EventLeave
	// EventKeyPress is a keyboard key going down. Keys never form points;
	// key events reach recognizers only through a Grab.
	EventKeyPress
	// EventKeyRelease is a keyboard key coming up.
	EventKeyRelease
	// EventScroll is a wheel or smooth-scroll event.
	EventScroll
	// EventTouchpadGesture is a compound touchpad swipe/pinch/hold event
	// reported by the platform as a unit.
	EventTouchpadGesture
	// EventPad is a drawing-tablet pad button, ring or strip event.
	EventPad
)

// String returns the event kind's name.
func (k EventKind) String() string {
	switch k {
	case EventButtonPress:
		return "button-press"
	case EventButtonRelease:
		return "button-release"
	case EventMotion:
		return "motion"
	case EventTouchBegin:
		return "touch-begin"
	case EventTouchUpdate:
		return "touch-update"
	case EventTouchEnd:
		return "touch-end"
	case EventTouchCancel:
		return "touch-cancel"
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	case EventScroll:
		return "scroll"
	case EventTouchpadGesture:
		return "touchpad-gesture"
	case EventPad:
		return "pad"
	default:
		return "unknown"
	}
}

// EventFlags carries bit flags on an Event.
type EventFlags uint8

const (
	// FlagSynthetic marks an event as host-synthesized; synthetic events
	// update point bookkeeping but are never dispatched to delegate hooks.
	FlagSynthetic EventFlags = 1 << iota
)

// ModifierState is a bitmask of held keyboard/pointer modifiers.
type ModifierState uint16

// Event is a single raw input event routed to gesture recognizers.
type Event struct {
	Kind EventKind
	// Device is the logical device that produced the event.
	Device DeviceID
	// SourceDevice is the physical device backing Device (may equal
	// Device); a gesture holding points only ever accepts more from the
	// same source device.
	SourceDevice DeviceID
	// DeviceKind categorizes Device for the allowed-device-types check.
	DeviceKind DeviceKind
	// Sequence identifies the touch stream this event belongs to, or
	// NilSequence for pointer button events.
	Sequence SequenceID
	Coords   Offset
	Timestamp time.Time
	// Button is the pointer button involved, for press/release events.
	Button int
	Modifiers ModifierState
	Flags     EventFlags
	// CrossingFrom and CrossingTo identify the scene-graph targets
	// involved in an Enter/Leave event; zero value for every other kind.
	CrossingFrom Target
	CrossingTo   Target
}

// HasSequence reports whether the event carries a touch sequence rather
// than being a bare pointer-button event.
func (e Event) HasSequence() bool {
	return e.Sequence != NilSequence
}

// Synthetic reports whether the host marked this event as synthesized.
func (e Event) Synthetic() bool {
	return e.Flags&FlagSynthetic != 0
}

func (e Event) key() pointKey {
	return pointKey{device: e.Device, sequence: e.Sequence}
}
