package imlayout

import "fmt"

// ErrorKind identifies the category of a contract violation.
type ErrorKind int

const (
	// KindProtocol indicates a call made in the wrong frame state, such as an
	// emit call outside Begin/End or a nested Begin.
	KindProtocol ErrorKind = iota + 1
	// KindInvariant indicates broken pool or registry bookkeeping.
	KindInvariant
	// KindCollision indicates two widgets resolved to the same identity key
	// within one frame.
	KindCollision
)

func (k ErrorKind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindInvariant:
		return "invariant"
	case KindCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// ProtocolError is the panic value for developer-facing contract violations.
// These are programming errors in the host draw callback, not runtime
// conditions, so the engine panics instead of returning them.
type ProtocolError struct {
	// Op is the operation that detected the violation (e.g. "Layout.Button").
	Op string
	// Kind categorizes the violation.
	Kind ErrorKind
	// Detail describes what went wrong.
	Detail string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("imlayout: %s [%s]: %s", e.Op, e.Kind, e.Detail)
}

func violation(op string, kind ErrorKind, format string, args ...any) {
	panic(&ProtocolError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
