package gestures

// TapDetails describes a completed tap, or the nth tap of a multi-tap
// sequence.
type TapDetails struct {
	Position Offset
	TapCount int
}

// LongPressStartDetails describes the moment a long-press recognizer
// commits.
type LongPressStartDetails struct {
	Position Offset
}

// LongPressMoveDetails describes pointer movement during an accepted long
// press.
type LongPressMoveDetails struct {
	Position Offset
}

// LongPressEndDetails describes the release that ends an accepted long
// press.
type LongPressEndDetails struct {
	Position Offset
}

// PanStartDetails describes the start of a pan.
type PanStartDetails struct {
	Position Offset
}

// PanUpdateDetails describes a pan update.
type PanUpdateDetails struct {
	Position     Offset
	Delta        Offset
	PrimaryDelta float64
}

// PanEndDetails describes the end of a pan.
type PanEndDetails struct {
	Position        Offset
	Velocity        Offset
	PrimaryVelocity float64
}
