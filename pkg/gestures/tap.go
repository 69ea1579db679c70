package gestures

// Tap recognizes a configurable number of consecutive taps on a single
// point, each one a quick press-release pair that stays under the cancel
// threshold, with no more than the inter-tap timeout between a release and
// the next press.
type Tap struct {
	*Gesture

	// OnTap fires once the required number of consecutive taps completes.
	OnTap func(TapDetails)

	tapCount  int
	lastPos   Offset
	waitTimer TimerHandle
	haveTimer bool
}

// NewTap constructs a tap recognizer.
func NewTap(opts ...GestureOption) *Tap {
	t := &Tap{}
	t.Gesture = New(append([]GestureOption{WithGestureName("tap")}, opts...)...)
	t.Gesture.SetDelegate(t)
	return t
}

func (t *Tap) cancelWaitTimer() {
	if t.haveTimer {
		t.host.CancelTimer(t.waitTimer)
		t.haveTimer = false
	}
}

// PointsBegan cancels any outstanding inter-tap wait: the next press
// arrived in time.
func (t *Tap) PointsBegan(points []*PublicPoint) {
	t.cancelWaitTimer()
}

// PointsMoved cancels the recognizer once movement exceeds the configured
// cancel threshold.
func (t *Tap) PointsMoved(points []*PublicPoint) {
	for _, p := range points {
		d := p.LatestCoords.Sub(p.BeginCoords)
		if distance(d) > t.cfg.cancelThreshold {
			t.SetState(StateCancelled)
			return
		}
	}
}

// PointsEnded advances the tap count on a clean release and either
// completes (the required count was reached) or starts the inter-tap
// timeout waiting for the next press.
func (t *Tap) PointsEnded(points []*PublicPoint) {
	if len(points) == 0 {
		return
	}
	t.lastPos = points[0].LatestCoords
	t.tapCount++
	if t.tapCount >= t.cfg.numberOfTaps {
		t.SetState(StateCompleted)
		return
	}
	t.waitTimer = t.host.ScheduleTimer(t.cfg.interTapTimeout, func() {
		t.haveTimer = false
		if t.GetState() != StateWaiting {
			t.SetState(StateCancelled)
		}
	})
	t.haveTimer = true
}

// PointsCancelled forces cancellation; a platform-cancelled touch can never
// complete a tap.
func (t *Tap) PointsCancelled(points []*PublicPoint) {
	t.SetState(StateCancelled)
}

// GestureStateChanged fires OnTap on completion and resets the tap counter
// once the gesture returns to WAITING.
func (t *Tap) GestureStateChanged(old, new State) {
	if new == StateCompleted && t.OnTap != nil {
		t.OnTap(TapDetails{Position: t.lastPos, TapCount: t.tapCount})
	}
	if new == StateWaiting {
		t.tapCount = 0
		t.cancelWaitTimer()
	}
}
