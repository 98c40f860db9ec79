//go:build wasm

package internal

import "sync"

var trackerOnce sync.Once
var globalTracker *Tracker

// GetTracker returns the single tracker used on wasm.
func GetTracker() *Tracker {
	trackerOnce.Do(func() {
		globalTracker = NewTracker()
	})

	return globalTracker
}

func LookupTracker() (*Tracker, bool) {
	return GetTracker(), true
}
