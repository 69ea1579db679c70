package gestures

import (
	driftErrors "github.com/go-drift/drift-gestures/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Coordinator tracks the process-wide set of gestures that are not in
// WAITING and arbitrates between them: which may enter RECOGNIZING, which
// get cancelled when a competitor wins, and in which order the fallout of a
// transition is applied.
//
// The coordinator is driven synchronously, single-threaded, cooperative,
// with no internal locking — correctness depends on never re-entering it
// for the same gesture from within a hook. Coordinator therefore carries no
// mutex.
type Coordinator struct {
	active map[*Gesture]struct{}
	pairs  map[pairKey]pairVerdict
	log    *logrus.Entry

	cascadeDepth int
	cancelQueue  []*Gesture
	promoteQueue []*Gesture

	errorHandler driftErrors.ErrorHandler
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator(opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		active: make(map[*Gesture]struct{}),
		pairs:  make(map[pairKey]pairVerdict),
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultCoordinator is the process-wide coordinator used by gestures
// constructed without an explicit one.
var DefaultCoordinator = NewCoordinator()

type pairKey struct{ lo, hi *Gesture }

type pairVerdict struct {
	order int8
}

func orderPair(a, b *Gesture) (lo, hi *Gesture, swapped bool) {
	if a.id <= b.id {
		return a, b, false
	}
	return b, a, true
}

// setupSequenceRelationship negotiates the pair's mutual cancel flags and
// returns the dispatch-ordering verdict. Called by
// [Gesture.SetupSequenceRelationship] the first time two gestures share a
// point; a pair already negotiated just gets the stored verdict back.
func (c *Coordinator) setupSequenceRelationship(a, b *Gesture, device DeviceID, sequence SequenceID) int8 {
	if a == b {
		return 0
	}
	lo, hi, swapped := orderPair(a, b)
	key := pairKey{lo, hi}
	if v, ok := c.pairs[key]; ok {
		if swapped {
			return -v.order
		}
		return v.order
	}

	order := c.negotiate(a, b)
	c.pairs[key] = pairVerdict{order: order}
	if swapped {
		return -order
	}
	return order
}

// negotiate computes the two cancel-on-recognizing flags for the pair and
// returns the dispatch-ordering signal. Also establishes the mutual
// relationship backlink on both sides.
func (c *Coordinator) negotiate(a, b *Gesture) int8 {
	aCancelsB := defaultCancels(a, b)
	bCancelsA := defaultCancels(b, a)

	a.cancelOnRecognizing[b] = aCancelsB
	b.cancelOnRecognizing[a] = bCancelsA
	relate(a, b)

	switch {
	case bCancelsA && !aCancelsB:
		return -1
	case aCancelsB && !bCancelsA:
		return 1
	default:
		return 0
	}
}

// defaultCancels computes "does A recognizing cancel B", consulting A's
// ShouldInfluence hook, B's ShouldBeInfluencedBy hook, and A's CanNotCancel
// override, in that order. Absent any hook, the default is true: two
// gestures with no hooks defined cancel each other mutually. When A
// implements ShouldInfluenceHandler its verdict decides the flag outright;
// otherwise B's ShouldBeInfluencedByHandler, if present, decides it.
// CanNotCancel is consulted last and always wins, forcing the flag to
// false regardless of what any hook returned.
func defaultCancels(a, b *Gesture) bool {
	cancels := true
	if h, ok := delegateOf[ShouldInfluenceHandler](a); ok {
		cancels = h.ShouldInfluence(b)
	} else if h, ok := delegateOf[ShouldBeInfluencedByHandler](b); ok {
		cancels = h.ShouldBeInfluencedBy(a)
	}
	// a.CanNotCancel(b) forces "a recognizing cancels b" to false: the
	// override lives on the gesture doing the cancelling.
	if a.canNotCancelSet[b] {
		cancels = false
	}
	return cancels
}

func relate(a, b *Gesture) {
	a.inRelationshipWith[b] = true
	b.inRelationshipWith[a] = true
}

func unrelate(a, b *Gesture) {
	delete(a.inRelationshipWith, b)
	delete(b.inRelationshipWith, a)
}

// otherAllowedToStart answers "may candidate start while recognizing is
// already RECOGNIZING?": yes if the pair is marked independent, if the
// recognizing gesture grants entry, or if the candidate overrides for
// itself. Default is no.
func otherAllowedToStart(candidate, recognizing *Gesture) bool {
	if candidate.recognizeIndependentlyFromSet[recognizing] {
		return true
	}
	if h, ok := delegateOf[ShouldStartWhileHandler](recognizing); ok && h.ShouldStartWhile(candidate) {
		return true
	}
	if h, ok := delegateOf[OtherGestureMayStartHandler](candidate); ok && h.OtherGestureMayStart(recognizing) {
		return true
	}
	return false
}

// gateAgainstActiveRecognizers reports whether candidate may enter POSSIBLE
// or RECOGNIZING given every currently (really, not pending) RECOGNIZING
// gesture in the active set.
func (c *Coordinator) gateAgainstActiveRecognizers(candidate *Gesture) bool {
	for g := range c.active {
		if g == candidate || g.externalState() != StateRecognizing {
			continue
		}
		if candidate.inRelationshipWith[g] {
			continue
		}
		if !otherAllowedToStart(candidate, g) {
			return false
		}
	}
	return true
}

// sweepIndependentGestures implements "maybe_cancel_independent_gestures":
// any active POSSIBLE gesture not in a relationship with recognizing and
// not independently allowed to coexist with it is cancelled.
func (c *Coordinator) sweepIndependentGestures(recognizing *Gesture) {
	for g := range c.active {
		if g == recognizing || g.state != StatePossible {
			continue
		}
		if recognizing.inRelationshipWith[g] {
			continue
		}
		if !otherAllowedToStart(g, recognizing) {
			c.enqueueCancel(g)
		}
	}
}

// relationshipsChanged re-negotiates g's edges against every gesture it is
// currently related to. Only the caller's edges are renegotiated, not its
// peers' edges with each other.
func (c *Coordinator) relationshipsChanged(g *Gesture) {
	peers := make([]*Gesture, 0, len(g.inRelationshipWith))
	for peer := range g.inRelationshipWith {
		peers = append(peers, peer)
	}
	for _, peer := range peers {
		lo, hi, _ := orderPair(g, peer)
		delete(c.pairs, pairKey{lo, hi})
		order := c.negotiate(g, peer)
		c.pairs[pairKey{lo, hi}] = pairVerdict{order: order}
	}
}
