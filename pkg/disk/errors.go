package disk

import "fmt"

// RangeError reports a cylinder value outside the addressable range.
// It carries the offending value and the valid range so callers can
// prompt the user to correct the input.
type RangeError struct {
	Field string // "request" or "initial position"
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// DirectionError reports a SCAN direction other than left or right.
type DirectionError struct {
	Value Direction
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("invalid direction %q (want left or right)", string(e.Value))
}
