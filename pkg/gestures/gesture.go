package gestures

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var gestureIDCounter uint64

func nextGestureID() uint64 {
	return atomic.AddUint64(&gestureIDCounter, 1)
}

// Gesture is the coordinator-facing half of a gesture recognizer: the
// five-state machine, the per-point bookkeeping, and the relationship edges
// to its peers. A concrete recognizer (Tap, LongPress, Pan, ...) embeds
// *Gesture and supplies behavior by implementing the optional hook
// interfaces in hooks.go, set as its delegate.
type Gesture struct {
	id   uint64
	name string

	delegate    any
	host        Host
	coordinator *Coordinator
	log         *logrus.Entry

	state  State
	target Target

	store             *pointStore
	pointIndexCounter int

	allowedDeviceKinds DeviceKind
	singleDevice       DeviceID
	haveSingleDevice   bool

	cfg recognizerConfig

	canNotCancelSet               map[*Gesture]bool
	requireFailureOfSet           map[*Gesture]bool
	recognizeIndependentlyFromSet map[*Gesture]bool
	inRelationshipWith            map[*Gesture]bool
	cancelOnRecognizing           map[*Gesture]bool
	pendingFailureOf              map[*Gesture]bool

	// pendingTarget records what a gated RECOGNIZING request should also
	// become once its gate clears: itself (plain recognize) or COMPLETED
	// (a completion request that had to pass through the gate first).
	pendingTarget State
	// pendingFrom is the externally observed state to report as the "old"
	// side of the transition when the queued promotion to RECOGNIZING is
	// realized: POSSIBLE on the direct path, RECOGNIZE_PENDING when a
	// failure requirement held the gesture in the pending projection first.
	pendingFrom State

	stateObservers        []func(old, new State)
	mayRecognizeObservers []func() bool
}

// GestureOption configures a [Gesture] at construction time.
type GestureOption func(*Gesture)

// WithDelegate attaches the concrete recognizer that implements hooks.go's
// optional interfaces. Most callers instead use [Gesture.SetDelegate] after
// construction, since the delegate is usually the struct embedding the
// Gesture being built.
func WithDelegate(d any) GestureOption { return func(g *Gesture) { g.delegate = d } }

// WithHost attaches the host contract. Defaults to [NopHost].
func WithHost(h Host) GestureOption { return func(g *Gesture) { g.host = h } }

// WithGestureCoordinator attaches an explicit coordinator in place of
// [DefaultCoordinator].
func WithGestureCoordinator(c *Coordinator) GestureOption { return func(g *Gesture) { g.coordinator = c } }

// WithGestureName sets the name used in logging and String().
func WithGestureName(name string) GestureOption { return func(g *Gesture) { g.name = name } }

// WithGestureLogger attaches a logger in place of the package's discard
// logger.
func WithGestureLogger(l *logrus.Entry) GestureOption { return func(g *Gesture) { g.log = l } }

// New constructs a Gesture in the WAITING state, not yet a member of any
// coordinator's active set.
func New(opts ...GestureOption) *Gesture {
	g := &Gesture{
		id:                            nextGestureID(),
		host:                          NopHost{},
		coordinator:                   DefaultCoordinator,
		log:                           discardLogger(),
		store:                         newPointStore(),
		allowedDeviceKinds:            AllDeviceKinds,
		cfg:                           defaultRecognizerConfig(),
		canNotCancelSet:               make(map[*Gesture]bool),
		requireFailureOfSet:           make(map[*Gesture]bool),
		recognizeIndependentlyFromSet: make(map[*Gesture]bool),
		inRelationshipWith:            make(map[*Gesture]bool),
		cancelOnRecognizing:           make(map[*Gesture]bool),
		pendingFailureOf:              make(map[*Gesture]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.name == "" {
		g.name = "gesture"
	}
	return g
}

// SetDelegate attaches the concrete recognizer after construction, for the
// common case where the recognizer embeds *Gesture and must exist before it
// can reference itself.
func (g *Gesture) SetDelegate(d any) { g.delegate = d }

// String returns the gesture's name, for logging.
func (g *Gesture) String() string { return g.name }

// externalState projects the internal state to the value GetState returns:
// StateRecognizePending when internally RECOGNIZING with at least one
// outstanding RequireFailureOf dependency.
func (g *Gesture) externalState() State {
	if g.state == StateRecognizing && len(g.pendingFailureOf) > 0 {
		return StateRecognizePending
	}
	return g.state
}

// GetState returns the gesture's externally visible state.
func (g *Gesture) GetState() State { return g.externalState() }

// GetPoints returns the public view of every point currently held, ordered
// by acceptance order. A COMPLETED or CANCELLED gesture reports no public
// points even while its internal store still holds sequences awaiting their
// terminal event.
func (g *Gesture) GetPoints() []*PublicPoint {
	if g.state.IsTerminal() {
		return nil
	}
	return g.store.publicPoints()
}

// SetAllowedDeviceTypes restricts which device kinds this gesture accepts
// points from.
func (g *Gesture) SetAllowedDeviceTypes(kinds DeviceKind) { g.allowedDeviceKinds = kinds }

// SetTarget attaches or detaches the scene-graph target this gesture is
// scoped to. Detaching (passing nil while one is set) forces cancellation of
// any active points.
func (g *Gesture) SetTarget(target Target) {
	if target == nil && g.target != nil && g.state.IsActive() && !g.state.IsTerminal() {
		g.coordinator.cascade(func() {
			g.coordinator.enqueueCancel(g)
		})
	}
	g.target = target
}

// CanNotCancel forces "g recognizing cancels peer" to false, overriding
// whatever the influence hooks would otherwise decide: g winning the pair
// no longer knocks peer out. Establishes a relationship with peer
// immediately, ahead of any shared point, and retroactively clears the flag
// on an already-negotiated pair.
func (g *Gesture) CanNotCancel(peer *Gesture) {
	g.canNotCancelSet[peer] = true
	if _, negotiated := g.cancelOnRecognizing[peer]; negotiated {
		g.cancelOnRecognizing[peer] = false
	}
	relate(g, peer)
	g.coordinator.invalidatePair(g, peer)
}

// RequireFailureOf makes g ineligible to reach RECOGNIZING until peer
// reaches CANCELLED; until then g surfaces as RECOGNIZE_PENDING. If peer
// later reaches RECOGNIZING instead, g is cancelled outright.
func (g *Gesture) RequireFailureOf(peer *Gesture) {
	g.requireFailureOfSet[peer] = true
	relate(g, peer)
}

// RecognizeIndependentlyFrom marks peer as always allowed to start or keep
// running alongside g, bypassing the global one-gesture-at-a-time
// arbitration entirely for this pair.
func (g *Gesture) RecognizeIndependentlyFrom(peer *Gesture) {
	g.recognizeIndependentlyFromSet[peer] = true
	peer.recognizeIndependentlyFromSet[g] = true
	relate(g, peer)
}

// SetupSequenceRelationship is the host-facing entry point for pairwise
// negotiation, called the first time the host observes g and peer both
// claiming interest in the same (device, sequence). The returned value
// is a dispatch-ordering signal: negative if g should be consulted first,
// positive if peer should be, zero if order doesn't matter.
func (g *Gesture) SetupSequenceRelationship(peer *Gesture, device DeviceID, sequence SequenceID) int8 {
	return g.coordinator.setupSequenceRelationship(g, peer, device, sequence)
}

// RelationshipsChanged forces the coordinator to re-negotiate g's edges
// against every gesture it currently shares a relationship with. Only g's
// own pairings are recomputed, not its peers' relationships with each
// other.
func (g *Gesture) RelationshipsChanged() {
	g.coordinator.relationshipsChanged(g)
}

// OnStateChange registers an observer notified of every realized state
// transition. Returns a function that unregisters it.
func (g *Gesture) OnStateChange(fn func(old, new State)) func() {
	g.stateObservers = append(g.stateObservers, fn)
	idx := len(g.stateObservers) - 1
	return func() { g.stateObservers[idx] = nil }
}

// OnMayRecognize registers an observer consulted, alongside any
// MayRecognizeHandler delegate, before entry into POSSIBLE or RECOGNIZING.
// Returns a function that unregisters it.
func (g *Gesture) OnMayRecognize(fn func() bool) func() {
	g.mayRecognizeObservers = append(g.mayRecognizeObservers, fn)
	idx := len(g.mayRecognizeObservers) - 1
	return func() { g.mayRecognizeObservers[idx] = nil }
}

func (g *Gesture) notifyStateChanged(old, new State) {
	if old == new {
		return
	}
	g.logTrace("state change", logrus.Fields{"from": old.String(), "to": new.String()})
	if h, ok := delegateOf[StateChangedHandler](g); ok {
		g.coordinator.recoverHook(g.name+".GestureStateChanged", func() { h.GestureStateChanged(old, new) })
	}
	for _, obs := range g.stateObservers {
		if obs != nil {
			obs(old, new)
		}
	}
}

func (g *Gesture) mayRecognizeGate() bool {
	if h, ok := delegateOf[MayRecognizeHandler](g); ok {
		allowed := true
		g.coordinator.recoverHook(g.name+".MayRecognize", func() { allowed = h.MayRecognize() })
		if !allowed {
			return false
		}
	}
	for _, obs := range g.mayRecognizeObservers {
		if obs != nil && !obs() {
			return false
		}
	}
	return true
}

// SetState requests a transition to one of the four externally-requestable
// states; WAITING is never a legal request, it is only ever entered
// automatically once a terminal gesture's point store empties. Illegal
// requests are logged and otherwise ignored, except CANCELLED, which is
// always accepted from any non-terminal state.
func (g *Gesture) SetState(target State) {
	g.host.MainThreadAssert()
	switch target {
	case StatePossible:
		g.requestPossible()
	case StateRecognizing:
		g.requestRecognizing(StateRecognizing)
	case StateCompleted:
		g.requestCompleted()
	case StateCancelled:
		g.coordinator.cascade(func() { g.coordinator.enqueueCancel(g) })
	default:
		g.logIllegalTransition(g.externalState(), target)
	}
}

func (g *Gesture) requestPossible() bool {
	if g.state != StateWaiting {
		g.logIllegalTransition(g.externalState(), StatePossible)
		return false
	}
	if !g.mayRecognizeGate() || !g.coordinator.gateAgainstActiveRecognizers(g) {
		return false
	}
	old := g.state
	g.state = StatePossible
	g.coordinator.active[g] = struct{}{}
	g.notifyStateChanged(old, StatePossible)
	return true
}

// requestRecognizing handles both a plain RECOGNIZING request and the first
// half of a COMPLETED request (target records what should happen once any
// RequireFailureOf gate clears).
func (g *Gesture) requestRecognizing(target State) {
	switch g.state {
	case StateRecognizing:
		if len(g.pendingFailureOf) > 0 {
			// still pending; nothing to do until a dependency resolves.
			return
		}
		// idempotent re-claim: a gesture may add points while recognizing.
		g.claimAllPoints()
		return
	case StatePossible:
		// proceed to the gated entry below.
	default:
		g.logIllegalTransition(g.externalState(), StateRecognizing)
		return
	}

	if g.cfg.minPoints > 0 && len(g.store.points) < g.cfg.minPoints {
		g.coordinator.cascade(func() { g.coordinator.enqueueCancel(g) })
		return
	}
	if !g.mayRecognizeGate() || !g.coordinator.gateAgainstActiveRecognizers(g) {
		g.coordinator.cascade(func() { g.coordinator.enqueueCancel(g) })
		return
	}

	old := g.externalState()
	g.state = StateRecognizing
	g.pendingTarget = target
	g.pendingFailureOf = make(map[*Gesture]bool, len(g.requireFailureOfSet))
	for peer := range g.requireFailureOfSet {
		if peer.state != StateCancelled {
			g.pendingFailureOf[peer] = true
		}
	}

	if len(g.pendingFailureOf) == 0 {
		g.pendingFrom = old
		g.coordinator.cascade(func() { g.coordinator.enqueuePromote(g) })
		return
	}
	g.pendingFrom = StateRecognizePending
	g.notifyStateChanged(old, StateRecognizePending)
}

func (g *Gesture) requestCompleted() {
	switch g.externalState() {
	case StateRecognizing:
		g.coordinator.cascade(func() { g.coordinator.completeNow(g) })
	case StateRecognizePending:
		// Completion queues behind the outstanding failure requirement and
		// replays once the gate clears.
		g.pendingTarget = StateCompleted
	case StatePossible:
		g.requestRecognizing(StateCompleted)
	default:
		g.logIllegalTransition(g.externalState(), StateCompleted)
	}
}

func (g *Gesture) claimAllPoints() {
	for _, p := range g.store.points {
		g.host.ClaimSequence(p.device, p.sequence)
	}
}

// maybeAutoWaiting returns a terminal gesture to WAITING once its point
// store empties: all point storage is dropped, the gesture leaves the
// active set, and every relationship from the finished episode is torn
// down.
func (g *Gesture) maybeAutoWaiting(c *Coordinator) {
	if !g.state.IsTerminal() || !g.store.empty() {
		return
	}
	old := g.state
	g.state = StateWaiting
	g.store.clear()
	g.pendingFailureOf = nil
	g.pendingTarget = StateWaiting
	g.cancelOnRecognizing = make(map[*Gesture]bool)
	for peer := range g.inRelationshipWith {
		unrelate(g, peer)
		c.invalidatePair(g, peer)
	}
	g.haveSingleDevice = false
	if _, ok := c.active[g]; !ok {
		c.reportInvariant("gestures.Gesture.maybeAutoWaiting", "terminal gesture missing from the active set")
	}
	delete(c.active, g)
	g.notifyStateChanged(old, StateWaiting)
}
