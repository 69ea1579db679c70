package gestures

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	driftErrors "github.com/go-drift/drift-gestures/pkg/errors"
)

// CoordinatorOption configures a [Coordinator] at construction time.
//
// A Coordinator's errorHandler is nil by default: refused transitions are
// always logged, and structured delivery is opt-in so embedders are not
// forced to wire an error sink.
type CoordinatorOption func(*Coordinator)

// WithErrorHandler attaches a handler for transition and panic diagnostics.
func WithErrorHandler(h driftErrors.ErrorHandler) CoordinatorOption {
	return func(c *Coordinator) { c.errorHandler = h }
}

// WithCoordinatorLogger attaches a logger in place of the package's discard
// logger.
func WithCoordinatorLogger(l *logrus.Entry) CoordinatorOption {
	return func(c *Coordinator) { c.log = l }
}

func (c *Coordinator) reportTransition(gestureName string, from, to State) {
	if c.errorHandler == nil {
		return
	}
	c.errorHandler.HandleError(&driftErrors.DriftError{
		Op:        "gestures.Gesture.SetState",
		Kind:      driftErrors.KindTransition,
		Err:       illegalTransitionError{gesture: gestureName, from: from, to: to},
		Timestamp: time.Now(),
	})
}

// reportUnknownSequence records an event the host routed to a gesture for a
// sequence it never accepted. The event itself is still ignored and
// propagated; this only surfaces the contract violation to an attached
// handler.
func (c *Coordinator) reportUnknownSequence(gestureName string, event Event) {
	if c.errorHandler == nil {
		return
	}
	c.errorHandler.HandleError(&driftErrors.DriftError{
		Op:   "gestures.Gesture.HandleEvent",
		Kind: driftErrors.KindEvent,
		Err: &driftErrors.EventError{
			Gesture:   gestureName,
			EventKind: event.Kind.String(),
			Reason:    "no point for this (device, sequence)",
		},
		Timestamp: time.Now(),
	})
}

// reportInvariant surfaces an internal consistency violation: a programming
// bug in the coordinator itself, not a misuse of the public surface.
func (c *Coordinator) reportInvariant(op, msg string) {
	c.log.WithField("op", op).Error(msg)
	if c.errorHandler == nil {
		return
	}
	c.errorHandler.HandleError(&driftErrors.DriftError{
		Op:         op,
		Kind:       driftErrors.KindInvariant,
		Err:        errors.New(msg),
		StackTrace: string(debug.Stack()),
		Timestamp:  time.Now(),
	})
}

type illegalTransitionError struct {
	gesture  string
	from, to State
}

func (e illegalTransitionError) Error() string {
	return e.gesture + ": illegal transition " + e.from.String() + " -> " + e.to.String()
}

// recoverHook runs fn, recovering any panic and reporting it through the
// coordinator's error handler as a PanicError instead of letting a
// misbehaving delegate hook bring down the host's event loop.
func (c *Coordinator) recoverHook(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if c.errorHandler != nil {
				c.errorHandler.HandlePanic(&driftErrors.PanicError{
					Op:         op,
					Value:      r,
					StackTrace: string(debug.Stack()),
					Timestamp:  time.Now(),
				})
			}
		}
	}()
	fn()
}
