package statement

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientShares is returned when selling more shares than held.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrMalformedInput is returned by the input adapters when a value cannot
	// be parsed or an event is invalid.
	ErrMalformedInput = errors.New("malformed input")
)

// EventError reports the event that stopped a statement.
type EventError struct {
	Index int   // Index of the event in the merged sequence.
	Event Event // The offending event.
	Err   error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event #%d (%s %s on %s): %v", e.Index, e.Event.What(), e.Event.Security(), e.Event.Day(), e.Err)
}

func (e *EventError) Unwrap() error { return e.Err }
