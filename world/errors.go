package world

import (
	"errors"

	"github.com/dergwasm/go-resonite"
)

var (
	ErrInvalidRef         = errors.New("world: invalid reference")
	ErrNullArgument       = errors.New("world: null argument")
	ErrNoSuchMember       = errors.New("world: no such member")
	ErrTypeMismatch       = errors.New("world: reference has the wrong type")
	ErrFailedPrecondition = errors.New("world: failed precondition")
)

// StatusOf maps an error returned by this package to the status code a host
// function reports for it.
func StatusOf(err error) int32 {
	switch {
	case err == nil:
		return resonite.StatusSuccess
	case errors.Is(err, ErrNullArgument), errors.Is(err, ErrNoSuchMember):
		return resonite.StatusNullOrNotFound
	case errors.Is(err, ErrInvalidRef), errors.Is(err, ErrTypeMismatch):
		return resonite.StatusInvalidRefID
	default:
		return resonite.StatusFailedPrecondition
	}
}
