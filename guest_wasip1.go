//go:build wasip1

package resonite

import (
	"runtime"
	"sync"
	"unsafe"
)

// DefaultHost returns the host the module was instantiated by.
func DefaultHost() Host {
	return wasmHost{}
}

// wasmHost calls the functions imported from the host's env module.
type wasmHost struct{}

func (wasmHost) RootSlot() SlotRef {
	return SlotRef(slotRootSlot())
}

func (wasmHost) SlotParent(slot SlotRef) SlotRef {
	return SlotRef(slotGetParent(slot.Raw()))
}

func (wasmHost) SlotActiveUser(slot SlotRef) UserRef {
	return UserRef(slotGetActiveUser(slot.Raw()))
}

func (wasmHost) SlotActiveUserRoot(slot SlotRef) UserRootRef {
	return UserRootRef(slotGetActiveUserRoot(slot.Raw()))
}

func (wasmHost) SlotObjectRoot(slot SlotRef, onlyExplicit bool) SlotRef {
	return SlotRef(slotGetObjectRoot(slot.Raw(), boolArg(onlyExplicit)))
}

func (wasmHost) SlotName(slot SlotRef) *Extern {
	return NewExtern(guest, slotGetName(slot.Raw()))
}

func (wasmHost) SlotSetName(slot SlotRef, name string) int32 {
	s := cstring(name)
	status := slotSetName(slot.Raw(), &s[0])
	runtime.KeepAlive(s)
	return status
}

func (wasmHost) SlotNumChildren(slot SlotRef) int32 {
	return slotGetNumChildren(slot.Raw())
}

func (wasmHost) SlotChild(slot SlotRef, index int32) SlotRef {
	return SlotRef(slotGetChild(slot.Raw(), index))
}

func (wasmHost) SlotFindChildByName(slot SlotRef, name string, matchSubstring, ignoreCase bool, maxDepth int32) SlotRef {
	s := cstring(name)
	ref := slotFindChildByName(slot.Raw(), &s[0], boolArg(matchSubstring), boolArg(ignoreCase), maxDepth)
	runtime.KeepAlive(s)
	return SlotRef(ref)
}

func (wasmHost) SlotFindChildByTag(slot SlotRef, tag string, maxDepth int32) SlotRef {
	s := cstring(tag)
	ref := slotFindChildByTag(slot.Raw(), &s[0], maxDepth)
	runtime.KeepAlive(s)
	return SlotRef(ref)
}

func (wasmHost) SlotComponent(slot SlotRef, typeName string) ComponentRef {
	s := cstring(typeName)
	ref := slotGetComponent(slot.Raw(), &s[0])
	runtime.KeepAlive(s)
	return ComponentRef(ref)
}

func (wasmHost) ComponentTypeName(component ComponentRef) *Extern {
	return NewExtern(guest, componentGetTypeName(component.Raw()))
}

func (wasmHost) ComponentMember(component ComponentRef, name string) (int32, int32, UnknownRef) {
	var (
		typeCode int32
		member   uint64
	)
	s := cstring(name)
	status := componentGetMember(component.Raw(), &s[0], &typeCode, &member)
	runtime.KeepAlive(s)
	return status, typeCode, UnknownRef(member)
}

func (wasmHost) ValueGetInt(value IntValueRef) (int32, int32) {
	var v int32
	status := valueGetInt(value.Raw(), &v)
	return status, v
}

func (wasmHost) ValueSetInt(value IntValueRef, v int32) int32 {
	return valueSetInt(value.Raw(), v)
}

func (wasmHost) ValueGetFloat(value FloatValueRef) (int32, float32) {
	var v float32
	status := valueGetFloat(value.Raw(), &v)
	return status, v
}

func (wasmHost) ValueSetFloat(value FloatValueRef, v float32) int32 {
	return valueSetFloat(value.Raw(), v)
}

func (wasmHost) ValueGetDouble(value DoubleValueRef) (int32, float64) {
	var v float64
	status := valueGetDouble(value.Raw(), &v)
	return status, v
}

func (wasmHost) ValueSetDouble(value DoubleValueRef, v float64) int32 {
	return valueSetDouble(value.Raw(), v)
}

func boolArg(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// guest is the module's own heap. The host allocates the strings it returns
// through the exported malloc, so every pointer it hands back is one of
// ours.
var guest = &guestHeap{allocations: map[uint32][]byte{}}

type guestHeap struct {
	mu          sync.Mutex
	allocations map[uint32][]byte
}

func (h *guestHeap) alloc(size uint32) uint32 {
	if size == 0 {
		size = 1
	}
	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.allocations[ptr] = buf
	return ptr
}

func (h *guestHeap) CString(ptr uint32) (string, bool) {
	h.mu.Lock()
	buf, ok := h.allocations[ptr]
	h.mu.Unlock()
	if !ok {
		return "", false
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), true
		}
	}
	return string(buf), true
}

func (h *guestHeap) Free(ptr uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.allocations, ptr)
}

// malloc lets the host allocate inside the module's memory.
//
//go:wasmexport malloc
func malloc(size uint32) uint32 {
	return guest.alloc(size)
}

//go:wasmexport free
func free(ptr uint32) {
	guest.Free(ptr)
}
