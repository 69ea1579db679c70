package gestures

// LongPress recognizes a single point held in place for at least the
// configured hold duration without exceeding the cancel threshold. The hold
// deadline is a one-shot host timer; its firing arrives as a fresh
// top-level call that requests RECOGNIZING.
type LongPress struct {
	*Gesture

	OnStart  func(LongPressStartDetails)
	OnMove   func(LongPressMoveDetails)
	OnEnd    func(LongPressEndDetails)
	OnCancel func()

	timer     TimerHandle
	haveTimer bool
	lastPos   Offset
}

// NewLongPress constructs a long-press recognizer.
func NewLongPress(opts ...GestureOption) *LongPress {
	l := &LongPress{}
	l.Gesture = New(append([]GestureOption{WithGestureName("long-press")}, opts...)...)
	l.Gesture.SetDelegate(l)
	return l
}

func (l *LongPress) cancelTimer() {
	if l.haveTimer {
		l.host.CancelTimer(l.timer)
		l.haveTimer = false
	}
}

// PointsBegan starts the hold timer; firing it requests RECOGNIZING.
func (l *LongPress) PointsBegan(points []*PublicPoint) {
	if len(points) > 0 {
		l.lastPos = points[0].LatestCoords
	}
	l.timer = l.host.ScheduleTimer(l.cfg.longPressDuration, func() {
		l.haveTimer = false
		if l.GetState() == StatePossible {
			l.SetState(StateRecognizing)
		}
	})
	l.haveTimer = true
}

// PointsMoved cancels the timer once movement exceeds the cancel
// threshold, or reports ongoing movement once already recognizing.
func (l *LongPress) PointsMoved(points []*PublicPoint) {
	for _, p := range points {
		l.lastPos = p.LatestCoords
		d := p.LatestCoords.Sub(p.BeginCoords)
		if distance(d) > l.cfg.cancelThreshold {
			if l.GetState() == StateRecognizing {
				l.cancelTimer()
				return
			}
			l.cancelTimer()
			l.SetState(StateCancelled)
			return
		}
		if l.GetState() == StateRecognizing && l.OnMove != nil {
			l.OnMove(LongPressMoveDetails{Position: p.LatestCoords})
		}
	}
}

// PointsEnded completes the gesture if it already committed, otherwise
// cancels: releasing before the hold duration elapsed is not a long press.
func (l *LongPress) PointsEnded(points []*PublicPoint) {
	l.cancelTimer()
	if len(points) > 0 {
		l.lastPos = points[0].LatestCoords
	}
	if l.GetState() == StateRecognizing {
		l.SetState(StateCompleted)
		return
	}
	l.SetState(StateCancelled)
}

// PointsCancelled forces cancellation.
func (l *LongPress) PointsCancelled(points []*PublicPoint) {
	l.cancelTimer()
	l.SetState(StateCancelled)
}

// GestureStateChanged fires OnStart/OnEnd/OnCancel at the corresponding
// transitions.
func (l *LongPress) GestureStateChanged(old, new State) {
	switch new {
	case StateRecognizing:
		if l.OnStart != nil {
			l.OnStart(LongPressStartDetails{Position: l.lastPos})
		}
	case StateCompleted:
		if l.OnEnd != nil {
			l.OnEnd(LongPressEndDetails{Position: l.lastPos})
		}
	case StateCancelled:
		if old == StateRecognizing && l.OnCancel != nil {
			l.OnCancel()
		}
	}
}
