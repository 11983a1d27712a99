//go:build linux

package bridge

import "golang.org/x/sys/unix"

func currentThreadID() (int, bool) {
	return unix.Gettid(), true
}
