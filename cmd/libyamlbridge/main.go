package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/erraggy/yamlbridge/internal/bridge"
)

var lib = newLibrary()

func newLibrary() *bridge.Bridge {
	cfg := bridge.LoadConfig()
	return bridge.New(cAllocator{}, cfg, bridge.NewLogger(cfg.LogLevel, os.Stderr))
}

// cAllocator hands out malloc'd buffers that foreign callers can keep.
type cAllocator struct{}

func (cAllocator) Alloc(b []byte) unsafe.Pointer {
	p := C.malloc(C.size_t(len(b) + 1))
	if p == nil {
		return nil
	}
	buf := unsafe.Slice((*byte)(p), len(b)+1)
	copy(buf, b)
	buf[len(b)] = 0
	return p
}

func (cAllocator) Free(p unsafe.Pointer) {
	C.free(p)
}

// input views a caller string without copying. NULL maps to nil.
func input(s *C.char) []byte {
	if s == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), int(C.strlen(s)))
}

//export yaml_parse
func yaml_parse(in *C.char) *C.char {
	return (*C.char)(lib.YAMLToJSON(input(in)).Ptr())
}

//export yaml_encode
func yaml_encode(in *C.char, blockStyle C.int) *C.char {
	return (*C.char)(lib.JSONToYAML(input(in), int(blockStyle)).Ptr())
}

//export free_string
func free_string(s *C.char) {
	lib.Release(bridge.OwnedFromPointer(unsafe.Pointer(s)))
}

//export get_last_error
func get_last_error(buffer *C.char, size C.size_t) C.size_t {
	if buffer == nil || size == 0 {
		return 0
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), lib.LastErrorCapacity(uint64(size)))
	return C.size_t(lib.ReadLastError(buf))
}

//export set_last_error
func set_last_error(msg *C.char) {
	lib.WriteLastError(input(msg))
}

//export yaml_bridge_version
func yaml_bridge_version() *C.char {
	return (*C.char)(lib.Version().Ptr())
}

//export yaml_validate
func yaml_validate(in *C.char) C.int {
	return C.int(lib.ValidateYAML(input(in)))
}

//export json_validate
func json_validate(in *C.char) C.int {
	return C.int(lib.ValidateJSON(input(in)))
}

func main() {}
