//go:build !linux

package bridge

func currentThreadID() (int, bool) {
	return 0, false
}
