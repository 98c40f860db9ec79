//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// trackers only holds goroutines with a non-empty stack.
var trackers sync.Map

// GetTracker returns the ambient tracker of the calling goroutine.
// A new tracker is stored on its first push and dropped when its stack empties,
// so goroutines that exit leave nothing behind.
func GetTracker() *Tracker {
	if t, ok := LookupTracker(); ok {
		return t
	}

	gid := getGID()
	t := NewTracker()
	t.onActive = func() { trackers.Store(gid, t) }
	t.onIdle = func() { trackers.Delete(gid) }

	return t
}

// LookupTracker returns the tracker of the calling goroutine if an effect or
// an untracked section is running on it.
func LookupTracker() (*Tracker, bool) {
	if t, ok := trackers.Load(getGID()); ok {
		return t.(*Tracker), true
	}

	return nil, false
}

func getGID() int64 {
	return goid.Get()
}
