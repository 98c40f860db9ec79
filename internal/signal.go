package internal

import (
	"slices"
	"sync"
)

type Signal struct {
	r  *Runtime
	mu sync.Mutex

	value any

	// effects to re-run on write, in the order their reads happened
	subs []EffectID
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		r:     r,
		value: initial,
		subs:  make([]EffectID, 0),
	}
}

// Read returns the current value, subscribing the ambient effect if there is one.
func (s *Signal) Read() any {
	if id, ok := CurrentEffect(); ok {
		s.subscribe(id)
	}

	return s.Value()
}

// Value returns the current value without tracking.
func (s *Signal) Value() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

func (s *Signal) Write(v any) {
	s.store(v)

	subs := s.Subs()
	s.r.Observer().SignalWritten(len(subs))

	s.run(subs)
}

// Trigger re-runs every subscriber synchronously.
// The list is snapshotted first, so subscriptions recorded by the re-runs
// only take effect on the next write.
func (s *Signal) Trigger() {
	s.run(s.Subs())
}

func (s *Signal) run(subs []EffectID) {
	for _, id := range subs {
		s.r.Run(id)
	}
}

func (s *Signal) Subs() []EffectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.subs)
}

func (s *Signal) store(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
}

func (s *Signal) subscribe(id EffectID) {
	dedupe := s.r.Config().Dedupe

	s.mu.Lock()
	defer s.mu.Unlock()

	if dedupe && slices.Contains(s.subs, id) {
		return
	}

	s.subs = append(s.subs, id)
}
