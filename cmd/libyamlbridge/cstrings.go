package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// The helpers below let the package tests, which cannot use cgo directly,
// build and inspect C strings for the exported functions.

func cString(s string) *C.char { return C.CString(s) }

func goString(p *C.char) string { return C.GoString(p) }

func cFree(p *C.char) { C.free(unsafe.Pointer(p)) }

// cBuffer returns n zeroed bytes of C memory, released with cFree.
func cBuffer(n int) *C.char {
	return (*C.char)(C.calloc(C.size_t(n), 1))
}

// cBytes copies n bytes starting at p, terminators included.
func cBytes(p unsafe.Pointer, n int) []byte {
	return C.GoBytes(p, C.int(n))
}

func cSize(n uint64) C.size_t { return C.size_t(n) }

func sizeMax() C.size_t { return ^C.size_t(0) }
