package resonite

import (
	"fmt"
	"strings"
)

// Status codes returned by host functions.
const (
	StatusSuccess            int32 = 0
	StatusNullOrNotFound     int32 = -1
	StatusInvalidRefID       int32 = -2
	StatusFailedPrecondition int32 = -3
)

// Kind is the category a host status falls into.
type Kind int32

const (
	KindUnknown Kind = iota
	KindSuccess
	KindNullOrNotFound
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindNullOrNotFound:
		return "NullOrNotFound"
	default:
		return "Unknown"
	}
}

// KindOf maps a host status code to its kind. Every code other than success
// and null-or-not-found is unknown.
func KindOf(code int32) Kind {
	switch code {
	case StatusSuccess:
		return KindSuccess
	case StatusNullOrNotFound:
		return KindNullOrNotFound
	default:
		return KindUnknown
	}
}

// Error is a failure reported by the host.
type Error struct {
	Kind Kind
	// Code is the raw status the host returned.
	Code int32
	// TypeCode is set when a member lookup returned a type this package
	// doesn't know.
	TypeCode int32
}

var (
	ErrUnknown        = &Error{Kind: KindUnknown}
	ErrNullOrNotFound = &Error{Kind: KindNullOrNotFound, Code: StatusNullOrNotFound}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("resonite: ")
	b.WriteString(e.Kind.String())
	if e.Code != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Code)
	}
	if e.TypeCode != 0 {
		fmt.Fprintf(&b, " (type code 0x%X)", e.TypeCode)
	}
	return b.String()
}

// Is matches errors of the same kind, so errors.Is(err, ErrUnknown) holds for
// every unknown status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Result translates a host status into an error. It returns nil on success.
func Result(code int32) error {
	kind := KindOf(code)
	if kind == KindSuccess {
		return nil
	}
	return &Error{Kind: kind, Code: code}
}
