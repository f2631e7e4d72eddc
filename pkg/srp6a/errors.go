package srp6a

import (
	"errors"
	"fmt"
)

// Kind classifies an error produced by this package, matching the taxonomy
// a caller needs to react correctly: usage bugs are fatal and distinct from
// an adversary failing authentication.
type Kind int

const (
	// KindInputShape marks a malformed buffer, an out-of-range decoded
	// integer (A, B must be in [1, N-1]), or another malformed argument.
	KindInputShape Kind = iota
	// KindProtocolState marks an accessor called before the state machine
	// reached the state that allows it. This is a programming error, not
	// a cryptographic failure.
	KindProtocolState
	// KindAuthenticationFailed marks a checkM1/checkM2 mismatch: the proof
	// did not match, so the peer does not hold the password (or the
	// transcript was tampered with).
	KindAuthenticationFailed
	// KindRandomSource marks a failure reading from the CSPRNG.
	KindRandomSource
)

// String returns a lowercase label for the error kind.
func (k Kind) String() string {
	switch k {
	case KindInputShape:
		return "input-shape"
	case KindProtocolState:
		return "protocol-state"
	case KindAuthenticationFailed:
		return "authentication-failed"
	case KindRandomSource:
		return "random-source"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. Callers that need to branch on the failure kind should use
// errors.As, not string matching.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "SetB", "CheckM1"
	Message string
	Err     error // underlying cause, if any; may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("srp6a: %s: %s: %s", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("srp6a: %s: %s", e.Op, e.Message)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, srp6a.ErrAuthenticationFailed) without caring about Op.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: cause}
}

// Sentinel values usable with errors.Is to check an error's Kind without
// caring about Op or Message.
var (
	ErrInputShape           = &Error{Kind: KindInputShape}
	ErrProtocolState        = &Error{Kind: KindProtocolState}
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed}
	ErrRandomSource         = &Error{Kind: KindRandomSource}
)
