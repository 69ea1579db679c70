package gestures

import "time"

// PanAxis constrains a pan recognizer to a single axis.
type PanAxis int

const (
	// PanAxisFree allows movement on both axes.
	PanAxisFree PanAxis = iota
	// PanAxisHorizontal restricts recognition to horizontal movement.
	PanAxisHorizontal
	// PanAxisVertical restricts recognition to vertical movement.
	PanAxisVertical
)

// recognizerConfig holds the tunables shared by the concrete recognizers:
// thresholds, tap counts, durations, axis locks and point-count bounds.
// minPoints of zero means no minimum: a gesture may enter RECOGNIZING with
// however many points it holds.
type recognizerConfig struct {
	cancelThreshold   float64
	numberOfTaps      int
	interTapTimeout   time.Duration
	longPressDuration time.Duration
	beginThreshold    float64
	panAxis           PanAxis
	minPoints         int
	maxPoints         int
}

func defaultRecognizerConfig() recognizerConfig {
	return recognizerConfig{
		cancelThreshold:   18,
		numberOfTaps:      1,
		interTapTimeout:   300 * time.Millisecond,
		longPressDuration: 500 * time.Millisecond,
		beginThreshold:    8,
		panAxis:           PanAxisFree,
		maxPoints:         1,
	}
}

// The recognizer options below configure the embedded recognizerConfig and
// are ordinary GestureOptions, so a concrete recognizer's constructor can
// mix them freely with WithHost/WithGestureCoordinator/etc.

// WithCancelThreshold sets the movement distance, in logical pixels, beyond
// which a tap or long-press cancels.
func WithCancelThreshold(px float64) GestureOption {
	return func(g *Gesture) { g.cfg.cancelThreshold = px }
}

// WithNumberOfTapsRequired sets how many consecutive taps a tap recognizer
// must see before completing.
func WithNumberOfTapsRequired(n int) GestureOption {
	return func(g *Gesture) { g.cfg.numberOfTaps = n }
}

// WithInterTapTimeout sets the maximum gap allowed between consecutive taps.
func WithInterTapTimeout(d time.Duration) GestureOption {
	return func(g *Gesture) { g.cfg.interTapTimeout = d }
}

// WithLongPressDuration sets how long a long-press recognizer holds before
// completing.
func WithLongPressDuration(d time.Duration) GestureOption {
	return func(g *Gesture) { g.cfg.longPressDuration = d }
}

// WithBeginThreshold sets the total displacement, in logical pixels, a pan
// recognizer requires before moving POSSIBLE -> RECOGNIZING.
func WithBeginThreshold(px float64) GestureOption {
	return func(g *Gesture) { g.cfg.beginThreshold = px }
}

// WithPanAxis constrains a pan recognizer to a single axis.
func WithPanAxis(axis PanAxis) GestureOption {
	return func(g *Gesture) { g.cfg.panAxis = axis }
}

// WithPointRange sets the minimum and maximum number of simultaneous points
// a recognizer accepts: sequences past max are refused outright, and a
// RECOGNIZING request made while fewer than min points are held is blocked
// and cancels the gesture, the same way a may-recognize veto does.
func WithPointRange(min, max int) GestureOption {
	return func(g *Gesture) { g.cfg.minPoints, g.cfg.maxPoints = min, max }
}

// WithAllowedDeviceKinds restricts which device kinds a recognizer accepts,
// the construction-time form of [Gesture.SetAllowedDeviceTypes].
func WithAllowedDeviceKinds(kinds DeviceKind) GestureOption {
	return func(g *Gesture) { g.allowedDeviceKinds = kinds }
}
