package resonite

import "fmt"

// Type codes the host reports for component members.
const (
	MemberTypeUnknown     int32 = 0x0
	MemberTypeValueInt    int32 = 0x1
	MemberTypeValueFloat  int32 = 0x2
	MemberTypeValueDouble int32 = 0x3
)

// Component is a behaviour or data object attached to a slot.
type Component struct {
	host Host
	ref  ComponentRef
}

func ComponentFromRef(host Host, ref ComponentRef) (Component, bool) {
	return filterInvalid(ref, componentWrapper(host))
}

func componentWrapper(host Host) func(ComponentRef) Component {
	return func(ref ComponentRef) Component {
		return Component{host: host, ref: ref}
	}
}

func (c Component) Ref() ComponentRef {
	return c.ref
}

func (c Component) String() string {
	return fmt.Sprintf("Component(0x%X)", c.ref.Raw())
}

// TypeName returns the host's name for the component's type.
func (c Component) TypeName() (string, bool) {
	buf := c.host.ComponentTypeName(c.ref)
	defer buf.Release()
	return buf.Text()
}

// Member is a named member of a component. The concrete type depends on what
// the host reports: Value[int32], Value[float32] or Value[float64].
type Member interface {
	fmt.Stringer
	member()
}

// MemberByName looks up a member. A type this package doesn't know is
// reported as ErrUnknown, whatever reference the host returned with it.
func (c Component) MemberByName(name string) (Member, error) {
	status, typeCode, ref := c.host.ComponentMember(c.ref, mustCString("name", name))
	if err := Result(status); err != nil {
		return nil, err
	}
	switch typeCode {
	case MemberTypeValueInt:
		return Value[int32]{host: c.host, ref: reinterpret[valueKind[int32]](ref)}, nil
	case MemberTypeValueFloat:
		return Value[float32]{host: c.host, ref: reinterpret[valueKind[float32]](ref)}, nil
	case MemberTypeValueDouble:
		return Value[float64]{host: c.host, ref: reinterpret[valueKind[float64]](ref)}, nil
	default:
		return nil, &Error{Kind: KindUnknown, Code: status, TypeCode: typeCode}
	}
}
