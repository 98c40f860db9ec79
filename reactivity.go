package reactivity

import "github.com/KABBOUCHI/reactivity/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// EffectID identifies a registered effect. Ids are assigned in registration order and never reused.
type EffectID = internal.EffectID

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a read/write reactive cell.
// The returned pointer is the handle: every copy of it aliases the same cell.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial),
	}
}

// Get the current value of the signal, subscribing the running effect if there is one.
// Every tracked read is recorded, so an effect reading twice is subscribed twice
// unless deduplication is configured.
func (s *Signal[T]) Get() T {
	return as[T](s.signal.Read())
}

// Peek the current value of the signal without subscribing anything.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Value())
}

// Set a new value and synchronously re-run every subscriber.
// There is no equality check: writing the same value triggers too.
func (s *Signal[T]) Set(v T) {
	s.signal.Write(v)
}

// Update sets the signal to fn applied to its current value.
// The read goes through Get, so inside an effect it subscribes that effect.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a read-only value derived from the signals and computeds read by compute.
// compute runs twice on construction and once per write to any of its dependencies,
// so it must not have side effects.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}),
	}
}

// Get the cached value, subscribing the running effect if there is one.
func (c *Computed[T]) Get() T {
	return as[T](c.computed.Read())
}

// Peek the cached value without subscribing anything.
func (c *Computed[T]) Peek() T {
	return as[T](c.computed.Value())
}

// NewEffect registers fn and runs it immediately.
// From then on fn re-runs every time a signal or computed it read is written.
// Effects are never disposed.
func NewEffect(fn func()) EffectID {
	return internal.GetRuntime().NewEffect(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}
