package resonite

// Heap is memory the host allocated on the caller's behalf.
type Heap interface {
	// CString reads the NUL-terminated string at ptr.
	CString(ptr uint32) (string, bool)
	// Free releases the allocation at ptr.
	Free(ptr uint32)
}

// Extern is a buffer the host allocated and handed across the boundary,
// such as a returned name. The caller owns it and must Release it; use
// defer so it's freed on every path.
type Extern struct {
	heap     Heap
	ptr      uint32
	released bool
}

// NewExtern takes ownership of ptr. A zero ptr is a null buffer.
func NewExtern(heap Heap, ptr uint32) *Extern {
	return &Extern{heap: heap, ptr: ptr}
}

// IsNull reports whether the host returned no buffer.
func (e *Extern) IsNull() bool {
	return e == nil || e.ptr == 0
}

// Text reads the buffer as a NUL-terminated string. It reports false for a
// null or already released buffer.
func (e *Extern) Text() (string, bool) {
	if e.IsNull() || e.released || e.heap == nil {
		return "", false
	}
	return e.heap.CString(e.ptr)
}

// Release frees the buffer. Only the first call frees; null buffers are
// never freed.
func (e *Extern) Release() {
	if e.IsNull() || e.released {
		return
	}
	e.released = true
	if e.heap != nil {
		e.heap.Free(e.ptr)
	}
}
