package history

import "fmt"

// DecodeError means the input was not valid UTF-8 JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding streaming history: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ShapeError means the input was valid JSON but its top-level value was not
// an array.
type ShapeError struct {
	// Kind is the JSON type found instead: object, string, number, boolean or null.
	Kind string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("streaming history must be a JSON array, got %s", e.Kind)
}

// MalformedRecordError describes an element that was skipped.
type MalformedRecordError struct {
	Index  int
	Reason string
}

func (e MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}
