package resonite

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Slot is a node in the host's scene graph.
type Slot struct {
	host Host
	ref  SlotRef
}

// SlotFromRef wraps ref, reporting false for the zero reference.
func SlotFromRef(host Host, ref SlotRef) (Slot, bool) {
	return filterInvalid(ref, slotWrapper(host))
}

// RootSlot returns the world's root slot.
func RootSlot(host Host) (Slot, error) {
	slot, ok := SlotFromRef(host, host.RootSlot())
	if !ok {
		return Slot{}, ErrNullOrNotFound
	}
	return slot, nil
}

func slotWrapper(host Host) func(SlotRef) Slot {
	return func(ref SlotRef) Slot {
		return Slot{host: host, ref: ref}
	}
}

func (s Slot) Ref() SlotRef {
	return s.ref
}

func (s Slot) String() string {
	return fmt.Sprintf("Slot(0x%X)", s.ref.Raw())
}

func (s Slot) Parent() (Slot, bool) {
	return filterInvalid(s.host.SlotParent(s.ref), slotWrapper(s.host))
}

// ActiveUser returns the user whose hierarchy contains the slot.
func (s Slot) ActiveUser() (User, bool) {
	return filterInvalid(s.host.SlotActiveUser(s.ref), userWrapper(s.host))
}

func (s Slot) ActiveUserRoot() (UserRoot, bool) {
	return filterInvalid(s.host.SlotActiveUserRoot(s.ref), userRootWrapper(s.host))
}

// ObjectRoot returns the root of the object the slot belongs to. With
// onlyExplicit set, only slots explicitly marked as object roots count.
func (s Slot) ObjectRoot(onlyExplicit bool) (Slot, bool) {
	return filterInvalid(s.host.SlotObjectRoot(s.ref, onlyExplicit), slotWrapper(s.host))
}

// Name returns the slot's name. It reports false when the host hands back no
// name, e.g. because the slot no longer exists.
func (s Slot) Name() (string, bool) {
	buf := s.host.SlotName(s.ref)
	defer buf.Release()
	return buf.Text()
}

func (s Slot) SetName(name string) error {
	return Result(s.host.SlotSetName(s.ref, mustCString("name", name)))
}

func (s Slot) Children() SlotChildren {
	return SlotChildren{slot: s}
}

// Component returns the first component on the slot with the given type
// name.
func (s Slot) Component(typeName string) (Component, bool) {
	ref := s.host.SlotComponent(s.ref, mustCString("typeName", typeName))
	return filterInvalid(ref, componentWrapper(s.host))
}

// SlotChildren reads a slot's children. Every call goes to the host, so
// results reflect the hierarchy as it is at that moment.
type SlotChildren struct {
	slot Slot
}

func (c SlotChildren) Len() int {
	n := c.slot.host.SlotNumChildren(c.slot.ref)
	if n < 0 {
		return 0
	}
	return int(n)
}

// Get returns the i-th child, or false when there is none.
func (c SlotChildren) Get(i int) (Slot, bool) {
	if i < 0 || i > math.MaxInt32 {
		return Slot{}, false
	}
	return filterInvalid(c.slot.host.SlotChild(c.slot.ref, int32(i)), slotWrapper(c.slot.host))
}

// FindByName searches the slot's descendants for a name. A negative maxDepth
// searches the whole subtree.
func (c SlotChildren) FindByName(name string, matchSubstring, ignoreCase bool, maxDepth int) (Slot, bool) {
	ref := c.slot.host.SlotFindChildByName(c.slot.ref, mustCString("name", name), matchSubstring, ignoreCase, depth(maxDepth))
	return filterInvalid(ref, slotWrapper(c.slot.host))
}

// FindByTag searches the slot's descendants for a tag. A negative maxDepth
// searches the whole subtree.
func (c SlotChildren) FindByTag(tag string, maxDepth int) (Slot, bool) {
	ref := c.slot.host.SlotFindChildByTag(c.slot.ref, mustCString("tag", tag), depth(maxDepth))
	return filterInvalid(ref, slotWrapper(c.slot.host))
}

// All yields children by index until the host reports no child at the next
// index. Children added or removed while iterating may be skipped or seen
// twice.
func (c SlotChildren) All() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for i := 0; ; i++ {
			child, ok := c.Get(i)
			if !ok || !yield(child) {
				return
			}
		}
	}
}

func depth(maxDepth int) int32 {
	if maxDepth < 0 {
		return -1
	}
	if maxDepth > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(maxDepth)
}

// mustCString rejects strings that can't be sent as NUL-terminated bytes.
// Passing one is a programming error.
func mustCString(arg, s string) string {
	if strings.IndexByte(s, 0) >= 0 {
		panic(fmt.Sprintf("resonite: %s contains a NUL byte: %q", arg, s))
	}
	return s
}
