package resonite

import "fmt"

// Scalar is a value type the host can store in a Value.
type Scalar interface {
	int32 | float32 | float64
}

// Value is a typed storage cell owned by the host, usually a component
// member.
type Value[T Scalar] struct {
	host Host
	ref  RefID[valueKind[T]]
}

func ValueFromRef[T Scalar](host Host, ref RefID[valueKind[T]]) (Value[T], bool) {
	return filterInvalid(ref, func(ref RefID[valueKind[T]]) Value[T] {
		return Value[T]{host: host, ref: ref}
	})
}

func (v Value[T]) Ref() RefID[valueKind[T]] {
	return v.ref
}

func (v Value[T]) String() string {
	var zero T
	return fmt.Sprintf("Value[%T](0x%X)", zero, v.ref.Raw())
}

func (Value[T]) member() {}

// Get reads the current value from the host.
func (v Value[T]) Get() (T, error) {
	var (
		out    T
		status int32
	)
	switch p := any(&out).(type) {
	case *int32:
		status, *p = v.host.ValueGetInt(IntValueRef(v.ref))
	case *float32:
		status, *p = v.host.ValueGetFloat(FloatValueRef(v.ref))
	case *float64:
		status, *p = v.host.ValueGetDouble(DoubleValueRef(v.ref))
	}
	if err := Result(status); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Set writes val to the host.
func (v Value[T]) Set(val T) error {
	var status int32
	switch x := any(val).(type) {
	case int32:
		status = v.host.ValueSetInt(IntValueRef(v.ref), x)
	case float32:
		status = v.host.ValueSetFloat(FloatValueRef(v.ref), x)
	case float64:
		status = v.host.ValueSetDouble(DoubleValueRef(v.ref), x)
	}
	return Result(status)
}
