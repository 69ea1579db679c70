package gestures

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// discardEntry is the zero-cost default logger for gestures created without
// an explicit one (e.g. via New()), so every diagnostic call site can
// assume a non-nil *logrus.Entry rather than nil-checking.
var (
	discardOnce  sync.Once
	discardEntry *logrus.Entry
)

func discardLogger() *logrus.Entry {
	discardOnce.Do(func() {
		l := logrus.New()
		l.SetOutput(discardWriter{})
		discardEntry = logrus.NewEntry(l)
	})
	return discardEntry
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// logIllegalTransition records a refused transition request, naming the
// gesture and the transition.
func (g *Gesture) logIllegalTransition(from, to State) {
	g.log.WithFields(logrus.Fields{
		"gesture": g.name,
		"from":    from.String(),
		"to":      to.String(),
	}).Warn("gestures: illegal transition request refused")
	g.coordinator.reportTransition(g.name, from, to)
}

func (g *Gesture) logTrace(msg string, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["gesture"] = g.name
	g.log.WithFields(fields).Trace(msg)
}
