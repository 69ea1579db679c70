package gestures

// ShouldHandleSequence is called by the host the first time it sees a
// (device, sequence) pair that might belong to this gesture. A true result
// commits the gesture to receiving every subsequent event on that sequence
// via HandleEvent.
//
// Acceptance requires: the device kind is allowed, the gesture is not
// terminal, and — if the gesture already owns points from a different
// physical device — the single-device discipline is not violated. The
// first accepted point drives the automatic WAITING -> POSSIBLE transition,
// gated exactly like a public SetState(POSSIBLE) call.
func (g *Gesture) ShouldHandleSequence(event Event) bool {
	if event.DeviceKind&g.allowedDeviceKinds == 0 {
		return false
	}
	if g.state == StateCancelled || g.state == StateCompleted {
		return false
	}
	if g.haveSingleDevice && event.SourceDevice != g.singleDevice {
		return false
	}
	if g.cfg.maxPoints > 0 && len(g.store.points) >= g.cfg.maxPoints {
		if g.store.get(event.key()) == nil {
			return false
		}
	}
	if g.state == StateWaiting {
		return g.requestPossible()
	}
	return true
}

// HandleEvent delivers a single raw event the host has already routed to
// this gesture (via a prior accepted ShouldHandleSequence call for new
// sequences). It returns whether the event was consumed; crossing events
// never update coordinate buckets and are never consumed.
func (g *Gesture) HandleEvent(event Event) bool {
	g.host.MainThreadAssert()
	if event.Kind == EventEnter || event.Kind == EventLeave {
		if !event.Synthetic() {
			if h, ok := delegateOf[CrossingEventHandler](g); ok {
				h.CrossingEvent(event)
			}
		}
		return false
	}

	key := event.key()
	existing := g.store.get(key)
	if existing == nil {
		switch event.Kind {
		case EventButtonPress, EventTouchBegin:
			if g.state.IsTerminal() {
				return false
			}
			if g.state == StateWaiting && !g.requestPossible() {
				return false
			}
			g.acceptPoint(event)
			return true
		case EventMotion, EventTouchUpdate, EventButtonRelease, EventTouchEnd, EventTouchCancel:
			// A point-stream event for a sequence this gesture does not
			// know is a host contract violation: reported to the error
			// handler, then ignored and propagated.
			g.coordinator.reportUnknownSequence(g.name, event)
			return false
		default:
			return false
		}
	}

	switch event.Kind {
	case EventButtonPress:
		// A second button going down on an already-held point stacks onto
		// it rather than spawning a new point.
		existing.nButtonsPressed++
		existing.latestEvent = event
	case EventMotion, EventTouchUpdate:
		g.updatePoint(existing, event)
	case EventButtonRelease:
		existing.nButtonsPressed--
		if existing.nButtonsPressed > 0 {
			// The point stays alive until every stacked button is up.
			existing.latestEvent = event
			return true
		}
		g.endPoint(existing, event, false)
	case EventTouchEnd:
		g.endPoint(existing, event, false)
	case EventTouchCancel:
		g.endPoint(existing, event, true)
	}
	return true
}

func (g *Gesture) acceptPoint(event Event) {
	if !g.haveSingleDevice {
		g.singleDevice = event.SourceDevice
		g.haveSingleDevice = true
	}
	g.pointIndexCounter++
	p := &point{
		device:       event.Device,
		sourceDevice: event.SourceDevice,
		sequence:     event.Sequence,
		latestEvent:  event,
		public:       newPublicPoint(g.pointIndexCounter, event),
	}
	if event.Kind == EventButtonPress {
		p.nButtonsPressed = 1
	}
	g.store.add(p)

	if event.Synthetic() {
		return
	}
	if h, ok := delegateOf[PointsBeganHandler](g); ok {
		h.PointsBegan([]*PublicPoint{p.public})
	}
}

func (g *Gesture) updatePoint(p *point, event Event) {
	p.latestEvent = event
	p.public.applyEvent(event)
	if event.Synthetic() || g.state.IsTerminal() {
		return
	}
	if h, ok := delegateOf[PointsMovedHandler](g); ok {
		h.PointsMoved([]*PublicPoint{p.public})
	}
}

// endPoint removes a finished point. A COMPLETED or CANCELLED gesture still
// absorbs the terminal event to keep the host's bookkeeping balanced, but no
// longer reports it to the delegate.
func (g *Gesture) endPoint(p *point, event Event, cancelled bool) {
	p.latestEvent = event
	p.public.applyEvent(event)
	g.store.remove(p.key())

	if !event.Synthetic() && !g.state.IsTerminal() {
		if cancelled {
			if h, ok := delegateOf[PointsCancelledHandler](g); ok {
				h.PointsCancelled([]*PublicPoint{p.public})
			}
		} else {
			if h, ok := delegateOf[PointsEndedHandler](g); ok {
				h.PointsEnded([]*PublicPoint{p.public})
			}
		}
	}

	g.coordinator.cascade(func() { g.maybeAutoWaiting(g.coordinator) })
}

func (p *point) key() pointKey {
	return pointKey{device: p.device, sequence: p.sequence}
}

// SequencesCancelled notifies the gesture that the host has externally
// cancelled one or more sequences on device (platform-level cancellation,
// e.g. an OS gesture taking over). Any matching points are dropped without
// an EventTouchCancel round-trip; if the gesture's point store empties as a
// result while still active, it is forced to CANCELLED.
func (g *Gesture) SequencesCancelled(device DeviceID, sequences []SequenceID) {
	var cancelledPoints []*PublicPoint
	for _, seq := range sequences {
		key := pointKey{device: device, sequence: seq}
		p := g.store.get(key)
		if p == nil {
			continue
		}
		g.store.remove(key)
		cancelledPoints = append(cancelledPoints, p.public)
	}
	if len(cancelledPoints) == 0 {
		return
	}
	if !g.state.IsTerminal() {
		if h, ok := delegateOf[PointsCancelledHandler](g); ok {
			h.PointsCancelled(cancelledPoints)
		}
	}
	if g.store.empty() && g.state.IsActive() && !g.state.IsTerminal() {
		g.coordinator.cascade(func() { g.coordinator.enqueueCancel(g) })
		return
	}
	g.coordinator.cascade(func() { g.maybeAutoWaiting(g.coordinator) })
}
