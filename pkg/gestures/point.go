package gestures

import (
	"time"

	"github.com/google/uuid"
)

// Offset represents a 2D point or vector in logical pixel coordinates.
// Kept minimal: the coordinator only ever needs addition, subtraction and
// distance.
type Offset struct {
	X float64
	Y float64
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// DeviceID identifies a physical or logical input device. The host assigns
// these; the coordinator only compares them for equality and uses them as
// map keys.
type DeviceID = uuid.UUID

// SequenceID identifies a continuous stream of events belonging to the same
// touch. A sequence is null for pointer button events; that is represented
// here by the zero UUID ([uuid.Nil]).
type SequenceID = uuid.UUID

// NilSequence is the null sequence identifier used for pointer-button
// points, which have no touch sequence.
var NilSequence = uuid.Nil

// DeviceKind is a bitmask identifying the category of device that produced
// an event, consulted against a gesture's allowed-device-types bitset.
type DeviceKind uint8

const (
	// DeviceMouse is a mouse or other button-driven pointer.
	DeviceMouse DeviceKind = 1 << iota
	// DeviceTouch is a touchscreen.
	DeviceTouch
	// DevicePen is a stylus/pen digitizer.
	DevicePen
	// DeviceTouchpad is a touchpad reporting gesture-capable events.
	DeviceTouchpad
)

// AllDeviceKinds is the default allowed-device-types bitset for a new
// gesture: every known device kind.
const AllDeviceKinds = DeviceMouse | DeviceTouch | DevicePen | DeviceTouchpad

// pointKey identifies a point within a single gesture's point store.
type pointKey struct {
	device   DeviceID
	sequence SequenceID
}

// point is the internal, per-gesture record of an active input point. It is
// created when the host offers a new sequence the gesture accepted, and
// destroyed on release/cancel or when the gesture returns to WAITING.
type point struct {
	device          DeviceID
	sourceDevice    DeviceID
	sequence        SequenceID
	latestEvent     Event
	nButtonsPressed int
	public          *PublicPoint
}

// PublicPoint is the parallel, append-only-during-sequence view of a point
// exposed to concrete recognizers. Index is a monotonically increasing
// integer assigned per gesture, not per point store entry, so recognizers can
// order points by arrival even across removals.
type PublicPoint struct {
	// Index is assigned once, in order of acceptance, and never reused.
	Index int
	// BeginCoords is the position at press/touch-begin.
	BeginCoords Offset
	// LastCoords is the position immediately prior to LatestCoords.
	LastCoords Offset
	// LatestCoords mirrors the newest coordinate update, of any kind.
	LatestCoords Offset
	// MoveCoords is the position at the most recent motion/touch-update.
	MoveCoords Offset
	// EndCoords is the position at release/touch-end, zero until then.
	EndCoords Offset
	// EventTime is the timestamp of the latest event for this point.
	EventTime time.Time
	// LatestEvent is the most recently dispatched raw event.
	LatestEvent Event
}

func newPublicPoint(index int, e Event) *PublicPoint {
	p := &PublicPoint{
		Index:        index,
		BeginCoords:  e.Coords,
		LastCoords:   e.Coords,
		LatestCoords: e.Coords,
		EventTime:    e.Timestamp,
		LatestEvent:  e,
	}
	return p
}

// applyEvent updates the coordinate buckets for a non-crossing event:
// begin on press/touch-begin, move on motion/touch-update, end on
// release/touch-end. LatestCoords always mirrors the newest value and
// LastCoords holds the previous LatestCoords so delegates can compute
// deltas.
func (p *PublicPoint) applyEvent(e Event) {
	p.LastCoords = p.LatestCoords
	p.LatestCoords = e.Coords
	p.EventTime = e.Timestamp
	p.LatestEvent = e

	switch e.Kind {
	case EventButtonPress, EventTouchBegin:
		p.BeginCoords = e.Coords
	case EventMotion, EventTouchUpdate:
		p.MoveCoords = e.Coords
	case EventButtonRelease, EventTouchEnd, EventTouchCancel:
		p.EndCoords = e.Coords
	}
}
