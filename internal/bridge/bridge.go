package bridge

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/erraggy/yamlbridge"
	"github.com/erraggy/yamlbridge/bridgeerrors"
	"github.com/erraggy/yamlbridge/convert"
)

// Validation results returned across the C boundary.
const (
	Valid     = 1
	Invalid   = 0
	NullInput = -1
)

// Bridge carries the state behind the exported C functions.
type Bridge struct {
	alloc   Allocator
	cfg     Config
	logger  convert.Logger
	handles *handleTable
	errs    ErrorSlot
	opts    []convert.Option
	version Static
}

// New returns a Bridge that allocates results with alloc.
// A nil logger discards all output.
func New(alloc Allocator, cfg Config, logger convert.Logger) *Bridge {
	if logger == nil {
		logger = convert.NopLogger{}
	}
	b := &Bridge{
		alloc:  alloc,
		cfg:    cfg,
		logger: logger,
		errs:   NewErrorSlot(cfg.ErrorScope),
		opts: []convert.Option{
			convert.WithMaxInputBytes(cfg.MaxInputBytes),
			convert.WithLogger(logger),
		},
	}
	if cfg.TrackHandles {
		b.handles = newHandleTable()
	}
	b.version = Static{p: alloc.Alloc([]byte(yamlbridge.VersionString()))}
	return b
}

// YAMLToJSON converts YAML text to compact JSON. A nil input is the null
// pointer and yields the null handle. Failures are returned as
// {"error":"..."} payloads.
func (b *Bridge) YAMLToJSON(in []byte) (out Owned) {
	if in == nil {
		return Owned{}
	}
	defer b.recoverInto("yaml_parse", &out)

	if !utf8.Valid(in) {
		return b.own(invalidUTF8Payload)
	}
	res, err := convert.YAMLToJSON(string(in), b.opts...)
	if err != nil {
		return b.failure("yaml_parse", err)
	}
	return b.result("yaml_parse", res)
}

// JSONToYAML converts JSON text to YAML; a nonzero blockStyle selects block
// style and zero selects flow style.
func (b *Bridge) JSONToYAML(in []byte, blockStyle int) (out Owned) {
	if in == nil {
		return Owned{}
	}
	defer b.recoverInto("yaml_encode", &out)

	if !utf8.Valid(in) {
		return b.own(invalidUTF8Payload)
	}
	res, err := convert.JSONToYAML(string(in), convert.StyleFromBlockFlag(blockStyle), b.opts...)
	if err != nil {
		return b.failure("yaml_encode", err)
	}
	return b.result("yaml_encode", res)
}

// ValidateYAML returns Valid, Invalid or NullInput. It allocates nothing.
func (b *Bridge) ValidateYAML(in []byte) int {
	return b.validate("yaml_validate", in, convert.ValidateYAML)
}

// ValidateJSON returns Valid, Invalid or NullInput. It allocates nothing.
func (b *Bridge) ValidateJSON(in []byte) int {
	return b.validate("json_validate", in, convert.ValidateJSON)
}

func (b *Bridge) validate(op string, in []byte, fn func(string, ...convert.Option) bool) (res int) {
	if in == nil {
		return NullInput
	}
	defer func() {
		if r := recover(); r != nil {
			b.logPanic(op, r)
			res = Invalid
		}
	}()
	if !utf8.Valid(in) || !fn(string(in), b.opts...) {
		return Invalid
	}
	return Valid
}

// Release frees an Owned buffer. The null handle is a no-op and the version
// string is always refused. With handle tracking, unknown pointers and double
// releases are refused and logged too.
func (b *Bridge) Release(o Owned) {
	if o.IsNull() {
		return
	}
	defer b.recoverInto("free_string", nil)

	if b.isVersion(o.p) {
		b.logger.Error("refusing to release the static version string")
		return
	}
	if b.handles != nil && !b.handles.remove(o.p) {
		b.logger.Error("refusing to release unknown or already released pointer", "ptr", fmt.Sprintf("%p", o.p))
		return
	}
	b.alloc.Free(o.p)
}

// ReadLastError copies the last error into buf as a NUL-terminated string,
// truncating silently to len(buf)-1 bytes, and returns the bytes copied.
// An empty or nil buf is left untouched.
func (b *Bridge) ReadLastError(buf []byte) (n int) {
	if len(buf) == 0 {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			b.logPanic("get_last_error", r)
			n = 0
		}
	}()
	msg := b.errs.Load()
	n = copy(buf[:len(buf)-1], msg)
	buf[n] = 0
	return n
}

// LastErrorCapacity bounds a caller-declared buffer size to the bytes
// ReadLastError can write: the current message plus its terminator.
// Sizes beyond the address space, such as SIZE_MAX, are therefore safe.
func (b *Bridge) LastErrorCapacity(size uint64) int {
	return int(min(size, uint64(len(b.errs.Load()))+1))
}

// WriteLastError stores msg in the last-error slot. A nil msg or one that is
// not valid UTF-8 clears the slot.
func (b *Bridge) WriteLastError(msg []byte) {
	defer b.recoverInto("set_last_error", nil)

	if msg == nil || !utf8.Valid(msg) {
		b.errs.Clear()
		return
	}
	b.errs.Store(string(msg))
}

// Version returns the static library identification string. It is allocated
// once by New and never freed.
func (b *Bridge) Version() Static {
	return b.version
}

// LiveHandles reports the number of Owned buffers not yet released, or -1
// when tracking is disabled.
func (b *Bridge) LiveHandles() int {
	if b.handles == nil {
		return -1
	}
	return b.handles.len()
}

var invalidUTF8Payload = convert.ErrorPayload(bridgeerrors.InvalidUTF8Message)

func (b *Bridge) isVersion(p unsafe.Pointer) bool {
	return b.version.p != nil && b.version.p == p
}

func (b *Bridge) result(op, s string) Owned {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return b.failure(op, &bridgeerrors.SerializationError{
			Message: fmt.Sprintf("output contains a NUL byte at offset %d and cannot be returned as a C string", i),
		})
	}
	return b.own(s)
}

func (b *Bridge) failure(op string, err error) Owned {
	level := b.logger.Debug
	if errors.Is(err, bridgeerrors.ErrResourceLimit) {
		level = b.logger.Warn
	}
	level("conversion failed", "op", op, "error", err)
	return b.own(convert.ErrorPayload(err.Error()))
}

// own copies s into allocator memory and registers the handle.
func (b *Bridge) own(s string) Owned {
	p := b.alloc.Alloc([]byte(s))
	if p == nil {
		b.logger.Error("allocation failed", "bytes", len(s)+1)
		return Owned{}
	}
	if b.handles != nil {
		b.handles.add(p)
	}
	return Owned{p: p}
}

// recoverInto stops a panic at the boundary. Conversions get an internal
// error payload in *out; other entry points become no-ops.
func (b *Bridge) recoverInto(op string, out *Owned) {
	r := recover()
	if r == nil {
		return
	}
	b.logPanic(op, r)
	if out != nil {
		*out = b.own(convert.ErrorPayload(fmt.Sprintf("internal error: %v", r)))
	}
}

func (b *Bridge) logPanic(op string, r any) {
	b.logger.Error("recovered panic", "op", op, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
}
