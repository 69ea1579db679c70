package gestures

import "time"

// Pan recognizes a single point moving past the begin threshold from its
// start, optionally restricted to one axis. The terminal velocity reported
// on release comes from a bounded history holding the trailing
// velocityWindow of position samples.
type Pan struct {
	*Gesture

	OnStart  func(PanStartDetails)
	OnUpdate func(PanUpdateDetails)
	OnEnd    func(PanEndDetails)
	OnCancel func()

	last    Offset
	history []velocitySample
	started bool
}

type velocitySample struct {
	t   time.Time
	pos Offset
}

const (
	// velocityWindow bounds the sample history used for the terminal
	// velocity estimate.
	velocityWindow = 150 * time.Millisecond
	// maxVelocity clamps each terminal velocity component to something a
	// human can plausibly produce, guarding against bogus timestamps.
	maxVelocity = 12000.0
)

// NewPan constructs a pan recognizer.
func NewPan(opts ...GestureOption) *Pan {
	p := &Pan{}
	p.Gesture = New(append([]GestureOption{WithGestureName("pan")}, opts...)...)
	p.Gesture.SetDelegate(p)
	return p
}

func (p *Pan) primary(o Offset) float64 {
	switch p.cfg.panAxis {
	case PanAxisHorizontal:
		return o.X
	case PanAxisVertical:
		return o.Y
	default:
		return distance(o)
	}
}

func (p *Pan) orthogonal(o Offset) float64 {
	switch p.cfg.panAxis {
	case PanAxisHorizontal:
		return o.Y
	case PanAxisVertical:
		return o.X
	default:
		return 0
	}
}

func (p *Pan) pushSample(pos Offset, t time.Time) {
	p.history = append(p.history, velocitySample{t: t, pos: pos})
	cutoff := t.Add(-velocityWindow)
	for len(p.history) > 1 && p.history[0].t.Before(cutoff) {
		p.history = p.history[1:]
	}
}

// terminalVelocity fits the retained sample window to a straight line
// through its endpoints: the displacement across the window over its
// duration, clamped per component.
func (p *Pan) terminalVelocity() Offset {
	if len(p.history) < 2 {
		return Offset{}
	}
	first, last := p.history[0], p.history[len(p.history)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return Offset{}
	}
	d := last.pos.Sub(first.pos)
	return clampOffset(Offset{X: d.X / dt, Y: d.Y / dt}, maxVelocity)
}

// PointsBegan seeds the velocity sample history.
func (p *Pan) PointsBegan(points []*PublicPoint) {
	if len(points) == 0 {
		return
	}
	p.last = points[0].LatestCoords
	p.history = p.history[:0]
	p.pushSample(points[0].LatestCoords, points[0].EventTime)
	p.started = false
}

// PointsMoved checks the begin threshold to commit to RECOGNIZING (or
// reject on an orthogonal-axis violation when axis-locked), and once
// committed reports updates while feeding the velocity window.
func (p *Pan) PointsMoved(points []*PublicPoint) {
	for _, pt := range points {
		total := pt.LatestCoords.Sub(pt.BeginCoords)
		if p.GetState() == StatePossible {
			primary := abs(p.primary(total))
			orthogonal := abs(p.orthogonal(total))
			if p.cfg.panAxis != PanAxisFree && orthogonal > p.cfg.beginThreshold && orthogonal > primary {
				p.SetState(StateCancelled)
				return
			}
			if primary > p.cfg.beginThreshold {
				p.SetState(StateRecognizing)
			}
		}

		delta := pt.LatestCoords.Sub(p.last)
		p.last = pt.LatestCoords
		p.pushSample(pt.LatestCoords, pt.EventTime)

		if p.GetState() == StateRecognizing {
			if !p.started {
				p.started = true
				if p.OnStart != nil {
					p.OnStart(PanStartDetails{Position: pt.BeginCoords})
				}
			}
			if p.OnUpdate != nil {
				p.OnUpdate(PanUpdateDetails{
					Position:     pt.LatestCoords,
					Delta:        delta,
					PrimaryDelta: p.primary(delta),
				})
			}
		}
	}
}

// PointsEnded completes an accepted pan, or cancels one that never passed
// the begin threshold.
func (p *Pan) PointsEnded(points []*PublicPoint) {
	if p.GetState() == StateRecognizing {
		var pos Offset
		if len(points) > 0 {
			pos = points[0].LatestCoords
			p.pushSample(points[0].LatestCoords, points[0].EventTime)
		}
		velocity := p.terminalVelocity()
		p.SetState(StateCompleted)
		if p.OnEnd != nil {
			p.OnEnd(PanEndDetails{
				Position:        pos,
				Velocity:        velocity,
				PrimaryVelocity: p.primary(velocity),
			})
		}
		return
	}
	p.SetState(StateCancelled)
}

// PointsCancelled forces cancellation, firing OnCancel if the pan had
// already committed.
func (p *Pan) PointsCancelled(points []*PublicPoint) {
	wasRecognizing := p.GetState() == StateRecognizing
	p.SetState(StateCancelled)
	if wasRecognizing && p.OnCancel != nil {
		p.OnCancel()
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampOffset(o Offset, max float64) Offset {
	return Offset{X: clamp(o.X, max), Y: clamp(o.Y, max)}
}

func clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
