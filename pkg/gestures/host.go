package gestures

import "time"

// TimerHandle identifies a timer scheduled through [Host.ScheduleTimer], to
// be passed back to [Host.CancelTimer].
type TimerHandle uint64

// Host is the thin interface through which the coordinator reaches the
// windowing/scene-graph host, the event source, and the event loop's
// timers. The coordinator never owns any of those; it is driven entirely by
// synchronous calls from the host and reaches back only through this
// contract.
type Host interface {
	// ClaimSequence is called when a gesture enters RECOGNIZING, once per
	// (device, sequence) it holds.
	ClaimSequence(device DeviceID, sequence SequenceID)
	// ScheduleTimer arranges for callback to run after duration elapses,
	// as a fresh top-level call into the host's main thread — concrete
	// recognizers use this for press/click timeouts.
	ScheduleTimer(duration time.Duration, callback func()) TimerHandle
	// CancelTimer cancels a timer scheduled through ScheduleTimer. Safe to
	// call with a handle that already fired or was already cancelled.
	CancelTimer(handle TimerHandle)
	// MainThreadAssert verifies the coordinator is only ever entered from
	// the host's single cooperative thread.
	MainThreadAssert()
}

// NopHost is a Host that claims nothing, never fires a scheduled timer, and
// skips the main-thread assertion. Useful as an embeddable default for
// hosts that only care about a subset of the contract.
type NopHost struct{}

// ClaimSequence does nothing.
func (NopHost) ClaimSequence(DeviceID, SequenceID) {}

// ScheduleTimer returns a handle that will never fire.
func (NopHost) ScheduleTimer(time.Duration, func()) TimerHandle { return 0 }

// CancelTimer does nothing.
func (NopHost) CancelTimer(TimerHandle) {}

// MainThreadAssert does nothing.
func (NopHost) MainThreadAssert() {}
