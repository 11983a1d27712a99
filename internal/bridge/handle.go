package bridge

import (
	"sync"
	"unsafe"
)

// Allocator provides NUL-terminated buffers that a foreign caller can read.
type Allocator interface {
	// Alloc copies b into a new buffer followed by a NUL byte. It returns nil
	// when memory cannot be obtained.
	Alloc(b []byte) unsafe.Pointer
	// Free releases a buffer returned by Alloc.
	Free(p unsafe.Pointer)
}

// Owned is a bridge-allocated string whose ownership passes to the caller.
// The zero value is the null handle.
type Owned struct {
	p unsafe.Pointer
}

// OwnedFromPointer wraps a pointer the caller hands back for release.
func OwnedFromPointer(p unsafe.Pointer) Owned {
	return Owned{p: p}
}

// Ptr returns the address of the first byte, or nil for the null handle.
func (o Owned) Ptr() unsafe.Pointer { return o.p }

// IsNull reports whether o is the null handle.
func (o Owned) IsNull() bool { return o.p == nil }

// Static is a borrowed, process-lifetime string. It has no release.
type Static struct {
	p unsafe.Pointer
}

// Ptr returns the address of the first byte.
func (s Static) Ptr() unsafe.Pointer { return s.p }

// handleTable records every Owned buffer that has not been released yet.
type handleTable struct {
	mu   sync.Mutex
	live map[unsafe.Pointer]struct{}
}

func newHandleTable() *handleTable {
	return &handleTable{live: make(map[unsafe.Pointer]struct{})}
}

func (t *handleTable) add(p unsafe.Pointer) {
	t.mu.Lock()
	t.live[p] = struct{}{}
	t.mu.Unlock()
}

// remove reports whether p was live.
func (t *handleTable) remove(p unsafe.Pointer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.live[p]; !ok {
		return false
	}
	delete(t.live, p)
	return true
}

func (t *handleTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}
