package gestures

import "time"

// fakeHost is a minimal, deterministic Host double for unit tests that need
// to control timer firing directly rather than asserting on call sequences
// (gesturesmock.MockHost is used instead where call assertions matter).
type fakeHost struct {
	claimed []pointKey
	timers  map[TimerHandle]func()
	next    TimerHandle
}

func newFakeHost() *fakeHost {
	return &fakeHost{timers: make(map[TimerHandle]func())}
}

func (h *fakeHost) ClaimSequence(device DeviceID, sequence SequenceID) {
	h.claimed = append(h.claimed, pointKey{device: device, sequence: sequence})
}

func (h *fakeHost) ScheduleTimer(_ time.Duration, callback func()) TimerHandle {
	h.next++
	h.timers[h.next] = callback
	return h.next
}

func (h *fakeHost) CancelTimer(handle TimerHandle) {
	delete(h.timers, handle)
}

func (h *fakeHost) MainThreadAssert() {}

// fire invokes a still-pending timer's callback, simulating its deadline
// elapsing. No-op if the timer was already cancelled or fired.
func (h *fakeHost) fire(handle TimerHandle) {
	cb, ok := h.timers[handle]
	if !ok {
		return
	}
	delete(h.timers, handle)
	cb()
}

// fireAll fires every still-pending timer, oldest first.
func (h *fakeHost) fireAll() {
	for handle := TimerHandle(1); handle <= h.next; handle++ {
		if cb, ok := h.timers[handle]; ok {
			delete(h.timers, handle)
			cb()
		}
	}
}

func newDeviceID() DeviceID { return newUUIDForTest() }

var uuidTestCounter uint64

// newUUIDForTest deterministically derives distinct UUIDs for tests without
// pulling randomness into a suite that must stay reproducible.
func newUUIDForTest() DeviceID {
	uuidTestCounter++
	var id DeviceID
	id[15] = byte(uuidTestCounter)
	id[14] = byte(uuidTestCounter >> 8)
	return id
}

func pressEvent(device DeviceID, coords Offset, t time.Time) Event {
	return Event{
		Kind:         EventButtonPress,
		Device:       device,
		SourceDevice: device,
		DeviceKind:   DeviceMouse,
		Coords:       coords,
		Timestamp:    t,
	}
}

func moveEvent(device DeviceID, coords Offset, t time.Time) Event {
	return Event{
		Kind:         EventMotion,
		Device:       device,
		SourceDevice: device,
		DeviceKind:   DeviceMouse,
		Coords:       coords,
		Timestamp:    t,
	}
}

func releaseEvent(device DeviceID, coords Offset, t time.Time) Event {
	return Event{
		Kind:         EventButtonRelease,
		Device:       device,
		SourceDevice: device,
		DeviceKind:   DeviceMouse,
		Coords:       coords,
		Timestamp:    t,
	}
}
