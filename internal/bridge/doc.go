// Package bridge implements the logic behind the exported C functions of the
// shared library.
//
// A [Bridge] turns raw caller input into conversion calls and hands results
// back as [Owned] buffers obtained from an [Allocator]. The cgo layer supplies
// an allocator backed by malloc/free; tests supply one backed by Go memory, so
// everything here runs without cgo.
//
// # Ownership
//
// Every [Owned] returned by a conversion belongs to the caller until it is
// passed back to [Bridge.Release] exactly once. The version string is a
// [Static]: it lives for the whole process and must never be released. With
// handle tracking enabled the bridge refuses (and logs) releases of unknown,
// already released or static pointers instead of corrupting the heap.
//
// # Errors
//
// The two conversion entry points never fail through a separate channel:
// parse and serialization failures come back as {"error":"..."} payloads.
// The last-error slot is a scratch area written only by [Bridge.WriteLastError].
package bridge
