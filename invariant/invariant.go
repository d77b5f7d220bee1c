package invariant

import (
	"errors"
	"fmt"
)

// DefaultMessage is the diagnostic carried by a violation raised with
// an empty message.
const DefaultMessage = "invariant: unrecoverable topology error"

// ErrTopology is the sentinel every TopologyError unwraps to, so
// callers can match any topology violation with errors.Is.
var ErrTopology = errors.New("invariant: topology invariant violated")

// TopologyError reports a violated topology invariant. It carries a
// human-readable diagnostic and nothing else; Error returns the
// diagnostic verbatim.
type TopologyError struct {
	msg string
}

// NewTopologyError builds a TopologyError carrying msg.
// An empty msg falls back to DefaultMessage.
func NewTopologyError(msg string) *TopologyError {
	if msg == "" {
		msg = DefaultMessage
	}

	return &TopologyError{msg: msg}
}

// Error returns the diagnostic string unchanged.
func (e *TopologyError) Error() string { return e.msg }

// Unwrap ties the error to the ErrTopology sentinel.
func (e *TopologyError) Unwrap() error { return ErrTopology }

// Assert checks a topology invariant.
// It returns nil when cond holds, and a *TopologyError carrying msg
// when it does not (DefaultMessage when msg is empty).
//
// The check is unconditional: it is never compiled out and behaves
// identically in optimized and debug builds.
//
// Complexity: O(1)
func Assert(cond bool, msg string) error {
	if cond {
		return nil
	}

	return NewTopologyError(msg)
}

// Assertf is Assert with a fmt.Sprintf-formatted diagnostic.
func Assertf(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}

	return NewTopologyError(fmt.Sprintf(format, args...))
}

// AssertWith checks a topology invariant and, on violation, raises the
// error built by newErr from msg instead of the default TopologyError.
// Call sites use it to surface a more specific error kind; any type
// constructible from a diagnostic string qualifies. A nil newErr falls
// back to NewTopologyError. msg is handed to newErr unchanged — custom
// kinds define their own defaults.
func AssertWith(cond bool, newErr func(msg string) error, msg string) error {
	if cond {
		return nil
	}
	if newErr == nil {
		return NewTopologyError(msg)
	}

	return newErr(msg)
}
