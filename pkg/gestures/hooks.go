package gestures

// A concrete recognizer customizes the base Gesture through a set of
// small, optional hook interfaces it implements selectively. Gesture checks
// each one with a type assertion against its delegate at the point the hook
// would fire; a delegate that doesn't implement a hook simply isn't asked.

// PointsBeganHandler receives newly accepted points.
type PointsBeganHandler interface {
	PointsBegan(points []*PublicPoint)
}

// PointsMovedHandler receives motion/touch-update updates for points it
// already owns.
type PointsMovedHandler interface {
	PointsMoved(points []*PublicPoint)
}

// PointsEndedHandler receives release/touch-end notifications.
type PointsEndedHandler interface {
	PointsEnded(points []*PublicPoint)
}

// PointsCancelledHandler receives touch-cancel/external-cancellation
// notifications.
type PointsCancelledHandler interface {
	PointsCancelled(points []*PublicPoint)
}

// CrossingEventHandler receives enter/leave events, which never update
// coordinate buckets.
type CrossingEventHandler interface {
	CrossingEvent(event Event)
}

// StateChangedHandler is notified of every realized state transition
// (including the RecognizePending projection).
type StateChangedHandler interface {
	GestureStateChanged(old, new State)
}

// MayRecognizeHandler lets a delegate veto entry into POSSIBLE or
// RECOGNIZING. Consulted alongside any observers registered through
// [Gesture.OnMayRecognize], first-wins: any false blocks the transition.
type MayRecognizeHandler interface {
	MayRecognize() bool
}

// ShouldInfluenceHandler lets a gesture decide, the first time it shares a
// point with peer, whether it recognizing should cancel peer.
type ShouldInfluenceHandler interface {
	ShouldInfluence(peer *Gesture) bool
}

// ShouldBeInfluencedByHandler lets a gesture decide whether peer
// recognizing should cancel it. It is consulted only when peer does not
// implement ShouldInfluenceHandler.
type ShouldBeInfluencedByHandler interface {
	ShouldBeInfluencedBy(peer *Gesture) bool
}

// ShouldStartWhileHandler lets an already-RECOGNIZING gesture grant
// permission for a candidate to start.
type ShouldStartWhileHandler interface {
	ShouldStartWhile(candidate *Gesture) bool
}

// OtherGestureMayStartHandler lets a candidate override and grant itself
// permission to start while peer is RECOGNIZING.
type OtherGestureMayStartHandler interface {
	OtherGestureMayStart(peer *Gesture) bool
}

func delegateOf[T any](g *Gesture) (T, bool) {
	var zero T
	if g == nil || g.delegate == nil {
		return zero, false
	}
	h, ok := g.delegate.(T)
	return h, ok
}
