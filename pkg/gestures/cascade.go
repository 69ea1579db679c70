package gestures

// cascade batches every cancellation and promotion triggered by a single
// public transition request into one round: all pending cancellations are
// applied before any promotion they unlock is considered, so a loser is
// observably CANCELLED before the winner it was blocking turns RECOGNIZING.
// Recursive cascade calls made from within a hook share the outer round
// instead of draining prematurely; the depth stays held across the drain so
// a hook fired mid-drain enqueues into the same round.
func (c *Coordinator) cascade(fn func()) {
	c.cascadeDepth++
	fn()
	if c.cascadeDepth == 1 {
		c.drainCascade()
	}
	c.cascadeDepth--
}

func (c *Coordinator) enqueueCancel(g *Gesture) {
	c.cancelQueue = append(c.cancelQueue, g)
}

func (c *Coordinator) enqueuePromote(g *Gesture) {
	c.promoteQueue = append(c.promoteQueue, g)
}

func (c *Coordinator) drainCascade() {
	for len(c.cancelQueue) > 0 || len(c.promoteQueue) > 0 {
		for len(c.cancelQueue) > 0 {
			g := c.cancelQueue[0]
			c.cancelQueue = c.cancelQueue[1:]
			c.applyCancel(g)
		}
		for len(c.promoteQueue) > 0 {
			g := c.promoteQueue[0]
			c.promoteQueue = c.promoteQueue[1:]
			c.applyPromote(g)
		}
	}
}

// applyCancel forces g to CANCELLED, then checks whether any other active
// gesture's RequireFailureOf dependency on g just resolved.
func (c *Coordinator) applyCancel(g *Gesture) {
	if g.state == StateCancelled || g.state == StateCompleted || g.state == StateWaiting {
		return
	}
	old := g.externalState()
	g.state = StateCancelled
	g.pendingFailureOf = nil
	g.notifyStateChanged(old, StateCancelled)
	g.maybeAutoWaiting(c)

	for d := range c.active {
		if d == g || len(d.pendingFailureOf) == 0 {
			continue
		}
		if d.pendingFailureOf[g] {
			delete(d.pendingFailureOf, g)
			if len(d.pendingFailureOf) == 0 {
				c.enqueuePromote(d)
			}
		}
	}
}

// applyPromote realizes a gated RECOGNIZING request whose RequireFailureOf
// dependencies have all resolved: fires the entering-RECOGNIZING side
// effects, then replays a queued COMPLETED request if one was waiting on
// this gate.
func (c *Coordinator) applyPromote(g *Gesture) {
	if g.state != StateRecognizing || len(g.pendingFailureOf) != 0 {
		return
	}
	g.notifyStateChanged(g.pendingFrom, StateRecognizing)
	c.realizeRecognizing(g)

	if g.pendingTarget == StateCompleted {
		g.pendingTarget = StateWaiting
		c.completeNow(g)
	}
}

// realizeRecognizing runs the side effects of entering RECOGNIZING for
// real, whether reached directly or via applyPromote: claim every held
// sequence, cancel any unrelated independent gestures still POSSIBLE, walk
// the negotiated cancel_on_recognizing set, and cancel any other gesture
// whose RequireFailureOf depended on g's failure (it just recognized
// instead).
func (c *Coordinator) realizeRecognizing(g *Gesture) {
	g.claimAllPoints()
	c.sweepIndependentGestures(g)

	peers := make([]*Gesture, 0, len(g.cancelOnRecognizing))
	for peer, cancels := range g.cancelOnRecognizing {
		if cancels {
			peers = append(peers, peer)
		}
	}
	g.cancelOnRecognizing = make(map[*Gesture]bool)
	for _, peer := range peers {
		if g.inRelationshipWith[peer] {
			c.enqueueCancel(peer)
		}
	}

	for d := range c.active {
		if d == g {
			continue
		}
		if d.requireFailureOfSet[g] && d.state != StateCancelled && d.state != StateCompleted && d.state != StateWaiting {
			c.enqueueCancel(d)
		}
	}
}

// completeNow transitions g from realized RECOGNIZING directly to
// COMPLETED. Completion has no arbitration side effects of its own; only
// entering RECOGNIZING does.
func (c *Coordinator) completeNow(g *Gesture) {
	if g.state != StateRecognizing || len(g.pendingFailureOf) != 0 {
		return
	}
	old := g.state
	g.state = StateCompleted
	g.notifyStateChanged(old, StateCompleted)
	g.maybeAutoWaiting(c)
}

func (c *Coordinator) invalidatePair(a, b *Gesture) {
	lo, hi, _ := orderPair(a, b)
	delete(c.pairs, pairKey{lo, hi})
}
