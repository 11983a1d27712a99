package bridge

import "sync"

// ErrorScope selects how the last-error slot is shared between threads.
type ErrorScope string

const (
	// ScopeThread keeps one slot per OS thread. A slot lives until it is
	// cleared, so a thread that stored a message should clear it with
	// set_last_error(NULL) before it exits.
	ScopeThread ErrorScope = "thread"
	// ScopeProcess keeps a single mutex-protected slot for the whole process.
	ScopeProcess ErrorScope = "process"
)

// ErrorSlot stores the caller-managed last error message.
type ErrorSlot interface {
	Load() string
	Store(msg string)
	Clear()
}

// NewErrorSlot returns the slot implementation for scope.
// Unknown scopes get a per-thread slot.
func NewErrorSlot(scope ErrorScope) ErrorSlot {
	if scope == ScopeProcess {
		return &processSlot{}
	}
	return newThreadSlot(currentThreadID)
}

type processSlot struct {
	mu  sync.Mutex
	msg string
}

func (s *processSlot) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}

func (s *processSlot) Store(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

func (s *processSlot) Clear() { s.Store("") }

// threadSlot keys messages by OS thread id. Calls arriving through cgo run on
// the caller's own thread, so each foreign thread sees only its own message.
// Where no thread id is available every caller shares key 0.
type threadSlot struct {
	tid  func() (int, bool)
	mu   sync.Mutex
	msgs map[int]string
}

func newThreadSlot(tid func() (int, bool)) *threadSlot {
	return &threadSlot{tid: tid, msgs: make(map[int]string)}
}

func (s *threadSlot) key() int {
	id, ok := s.tid()
	if !ok {
		return 0
	}
	return id
}

func (s *threadSlot) Load() string {
	k := s.key()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msgs[k]
}

func (s *threadSlot) Store(msg string) {
	k := s.key()
	s.mu.Lock()
	s.msgs[k] = msg
	s.mu.Unlock()
}

// Clear drops the entry so exited threads do not pin memory once cleared.
func (s *threadSlot) Clear() {
	k := s.key()
	s.mu.Lock()
	delete(s.msgs, k)
	s.mu.Unlock()
}
