// Command libyamlbridge builds the YAML/JSON conversion shared library.
//
//	go build -buildmode=c-shared -o libyamlbridge.so ./cmd/libyamlbridge
//
// The exported functions, with the const qualifiers spelled out in
// yamlbridge.h (the cgo-generated header drops them):
//
//	char *yaml_parse(const char *input);
//	char *yaml_encode(const char *input, int block_style);
//	void free_string(char *ptr);
//	size_t get_last_error(char *buffer, size_t size);
//	void set_last_error(const char *message);
//	const char *yaml_bridge_version(void);
//	int yaml_validate(const char *input);
//	int json_validate(const char *input);
//
// # Ownership
//
// Every char * returned by yaml_parse and yaml_encode is owned by the caller
// and must be passed to free_string exactly once. Using a string after it was
// freed, freeing it twice, or freeing a pointer this library did not return
// is undefined behavior; with YAMLBRIDGE_TRACK_HANDLES left at its default the
// library refuses such calls and logs them instead.
//
// yaml_bridge_version returns a const char * that lives for the whole process.
// It is NOT owned by the caller and must never be passed to free_string.
//
// Input strings are only read for the duration of the call and are never freed.
//
// # Errors
//
// yaml_parse and yaml_encode return NULL only for NULL input. Every other
// failure comes back as a JSON object such as {"error":"Invalid UTF-8 in input"}.
// get_last_error and set_last_error manage a scratch message that the library
// never writes on its own; by default each thread has its own message.
// A thread's message is kept after the thread exits, so a thread that calls
// set_last_error should call set_last_error(NULL) before it finishes.
//
// # Environment
//
//	YAMLBRIDGE_TRACK_HANDLES    guard free_string with a live-handle table (default true)
//	YAMLBRIDGE_ERROR_SCOPE      "thread" (default) or "process"
//	YAMLBRIDGE_MAX_INPUT_BYTES  largest accepted input, 0 disables (default 67108864)
//	YAMLBRIDGE_LOG_LEVEL        off (default), debug, info, warn or error; JSON on stderr
package main
