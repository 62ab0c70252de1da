package resonite

import "fmt"

// RefID is an opaque 64-bit reference to an object owned by the host. The
// kind parameter only exists at compile time, so a slot reference can't be
// passed where a user reference is expected. The zero RefID never refers to
// a live object.
type RefID[K any] uint64

type (
	unknownKind      struct{}
	slotKind         struct{}
	componentKind    struct{}
	userKind         struct{}
	userRootKind     struct{}
	valueKind[T any] struct{}
)

type (
	// UnknownRef is a reference whose kind is only known after inspecting a
	// type code returned alongside it.
	UnknownRef = RefID[unknownKind]

	SlotRef      = RefID[slotKind]
	ComponentRef = RefID[componentKind]
	UserRef      = RefID[userKind]
	UserRootRef  = RefID[userRootKind]

	IntValueRef    = RefID[valueKind[int32]]
	FloatValueRef  = RefID[valueKind[float32]]
	DoubleValueRef = RefID[valueKind[float64]]
)

// Valid reports whether the reference is non-zero.
func (r RefID[K]) Valid() bool {
	return r != 0
}

// Raw returns the integer sent across the boundary.
func (r RefID[K]) Raw() uint64 {
	return uint64(r)
}

func (r RefID[K]) String() string {
	return fmt.Sprintf("RefID(0x%X)", uint64(r))
}

// filterInvalid converts a reference into its wrapper, or reports absence
// for the zero reference.
func filterInvalid[K any, W any](r RefID[K], wrap func(RefID[K]) W) (W, bool) {
	if !r.Valid() {
		var zero W
		return zero, false
	}
	return wrap(r), true
}

// reinterpret retypes an unknown reference without any check. The host's
// type code is the only authority on what the reference points at, so this
// must only be called after that code has been matched.
func reinterpret[K any](r UnknownRef) RefID[K] {
	return RefID[K](r)
}
