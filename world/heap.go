package world

import (
	"sync"
)

// Heap stands in for guest memory when the world is used in-process. It
// implements resonite.Heap and counts frees so leaks and double frees show
// up in tests.
type Heap struct {
	mu       sync.Mutex
	next     uint32
	allocs   map[uint32][]byte
	frees    int
	badFrees int
}

func NewHeap() *Heap {
	return &Heap{next: 16, allocs: map[uint32][]byte{}}
}

// Alloc stores s as a NUL-terminated string and returns its address.
func (h *Heap) Alloc(s string) uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	ptr := h.next
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	h.allocs[ptr] = buf
	h.next += (uint32(len(buf)) + 7) &^ 7
	return ptr
}

func (h *Heap) CString(ptr uint32) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf, ok := h.allocs[ptr]
	if !ok {
		return "", false
	}
	return string(buf[:len(buf)-1]), true
}

func (h *Heap) Free(ptr uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.allocs[ptr]; !ok {
		h.badFrees++
		return
	}
	delete(h.allocs, ptr)
	h.frees++
}

// Live is the number of allocations not yet freed.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.allocs)
}

// Frees is the number of successful frees.
func (h *Heap) Frees() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frees
}

// BadFrees counts frees of addresses that were never allocated or were
// already freed.
func (h *Heap) BadFrees() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.badFrees
}
