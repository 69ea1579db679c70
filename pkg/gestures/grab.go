package gestures

// Grab is a polymorphic event-delivery target with a hook per event
// category the host delivers, plus a Cancel hook.
//
// The base implementation forwards nothing; concrete grabs override the
// categories they care about. BaseGrab exists as an embeddable zero-value
// that satisfies Grab; a concrete grab embeds it and shadows the methods it
// needs.
type Grab interface {
	// HandleCrossing receives enter/leave events.
	HandleCrossing(event Event)
	// HandleKey receives key press/release events.
	HandleKey(event Event)
	// HandleButton receives button-press/button-release events.
	HandleButton(event Event)
	// HandleMotion receives motion events.
	HandleMotion(event Event)
	// HandleScroll receives scroll events.
	HandleScroll(event Event)
	// HandleTouchpadGesture receives touchpad swipe/pinch/hold events.
	HandleTouchpadGesture(event Event)
	// HandleTouch receives touch-begin/update/end/cancel events.
	HandleTouch(event Event)
	// HandlePad receives pad button/ring/strip events.
	HandlePad(event Event)
	// Cancel is called when a superseding grab takes over. The return
	// value reports whether this grab should be reinstated once the
	// superseding grab ends.
	Cancel() bool
}

// BaseGrab is a no-op Grab; embed it to implement only the categories a
// concrete grab cares about.
type BaseGrab struct{}

// HandleCrossing does nothing.
func (BaseGrab) HandleCrossing(Event) {}

// HandleKey does nothing.
func (BaseGrab) HandleKey(Event) {}

// HandleButton does nothing.
func (BaseGrab) HandleButton(Event) {}

// HandleMotion does nothing.
func (BaseGrab) HandleMotion(Event) {}

// HandleScroll does nothing.
func (BaseGrab) HandleScroll(Event) {}

// HandleTouchpadGesture does nothing.
func (BaseGrab) HandleTouchpadGesture(Event) {}

// HandleTouch does nothing.
func (BaseGrab) HandleTouch(Event) {}

// HandlePad does nothing.
func (BaseGrab) HandlePad(Event) {}

// Cancel reports false: a BaseGrab is never reinstated.
func (BaseGrab) Cancel() bool { return false }

// Target is an opaque handle to a node in the host's scene graph. The
// coordinator never inspects it; it only compares identity and passes it to
// TargetGrab's subtree membership test.
type Target any

// TargetGrab is a grab scoped to a scene-graph subtree: it restricts
// crossing (enter/leave) delivery to pairs whose common ancestor lies
// inside Root's subtree, re-emitting every other crossing event on the root
// itself. All non-crossing categories are forwarded unconditionally to the
// wrapped Grab.
type TargetGrab struct {
	// Root is the subtree this grab is scoped to.
	Root Target
	// Inside reports whether candidate lies within Root's subtree. The
	// host supplies this since only it knows the scene graph shape.
	Inside func(root, candidate Target) bool
	// Delegate receives every event this grab forwards.
	Delegate Grab
}

// HandleCrossing forwards the event only if either the crossing's source or
// destination target (carried on the event itself: CrossingFrom/CrossingTo)
// lies inside Root. Crossings that don't qualify are re-emitted on the root
// (event.CrossingFrom/To rewritten to Root) rather than dropped, so
// observers scoped to Root still see a balanced enter/leave pair at the
// boundary.
func (g *TargetGrab) HandleCrossing(event Event) {
	if g.Delegate == nil {
		return
	}
	if g.Inside == nil || g.Inside(g.Root, event.CrossingFrom) || g.Inside(g.Root, event.CrossingTo) {
		g.Delegate.HandleCrossing(event)
		return
	}
	rewritten := event
	rewritten.CrossingFrom, rewritten.CrossingTo = g.Root, g.Root
	g.Delegate.HandleCrossing(rewritten)
}

// HandleKey forwards unconditionally.
func (g *TargetGrab) HandleKey(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleKey(event)
	}
}

// HandleButton forwards unconditionally.
func (g *TargetGrab) HandleButton(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleButton(event)
	}
}

// HandleMotion forwards unconditionally.
func (g *TargetGrab) HandleMotion(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleMotion(event)
	}
}

// HandleScroll forwards unconditionally.
func (g *TargetGrab) HandleScroll(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleScroll(event)
	}
}

// HandleTouchpadGesture forwards unconditionally.
func (g *TargetGrab) HandleTouchpadGesture(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleTouchpadGesture(event)
	}
}

// HandleTouch forwards unconditionally.
func (g *TargetGrab) HandleTouch(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandleTouch(event)
	}
}

// HandlePad forwards unconditionally.
func (g *TargetGrab) HandlePad(event Event) {
	if g.Delegate != nil {
		g.Delegate.HandlePad(event)
	}
}

// Cancel delegates, defaulting to false when no delegate is set.
func (g *TargetGrab) Cancel() bool {
	if g.Delegate == nil {
		return false
	}
	return g.Delegate.Cancel()
}
