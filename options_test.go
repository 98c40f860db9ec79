package reactivity

import (
	"testing"

	"github.com/KABBOUCHI/reactivity/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleDetection(t *testing.T) {
	t.Run("self-feeding effect panics with a cycle error", func(t *testing.T) {
		configure(t, WithMaxDepth(50))

		s := NewSignal(0)

		err := recoverError(func() {
			NewEffect(func() {
				s.Set(s.Get() + 1)
			})
		})

		require.ErrorIs(t, err, ErrCycle)

		var cycle *CycleError
		require.ErrorAs(t, err, &cycle)
		assert.Equal(t, 51, cycle.Depth)
		assert.Equal(t, 50, s.Peek())
		assert.Equal(t, 0, internal.GetTracker().Depth())
	})

	t.Run("two effects feeding each other", func(t *testing.T) {
		configure(t, WithMaxDepth(30), WithDedupe(true))

		ping := NewSignal(0)
		pong := NewSignal(0)

		NewEffect(func() {
			pong.Set(ping.Get() + 1)
		})

		err := recoverError(func() {
			NewEffect(func() {
				ping.Set(pong.Get() + 1)
			})
		})

		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("bounded self-write terminates", func(t *testing.T) {
		configure(t, WithDedupe(true))

		s := NewSignal(0)
		NewEffect(func() {
			if s.Get() < 5 {
				s.Set(s.Get() + 1)
			}
		})

		assert.Equal(t, 5, s.Peek())
	})

	t.Run("zero disables the guard", func(t *testing.T) {
		configure(t, WithMaxDepth(0), WithDedupe(true))

		s := NewSignal(0)
		NewEffect(func() {
			if s.Get() < DefaultMaxDepth+10 {
				s.Set(s.Get() + 1)
			}
		})

		assert.Equal(t, DefaultMaxDepth+10, s.Peek())
	})

	t.Run("untrack sections do not count towards the depth", func(t *testing.T) {
		configure(t, WithMaxDepth(2))

		b := NewSignal(0)
		seen := []int{}
		NewEffect(func() {
			seen = append(seen, b.Get())
		})

		assert.NotPanics(t, func() {
			NewEffect(func() {
				Untrack(func() int {
					b.Set(1)
					return 0
				})
			})
		})
		assert.Equal(t, []int{0, 1}, seen)
	})

	t.Run("error names the exceeded limit", func(t *testing.T) {
		err := &CycleError{Effect: 3, Depth: 11}

		assert.EqualError(t, err, "reactivity: cyclic dependency: effect 3 exceeded max depth (11 nested runs)")
	})

	t.Run("observers see the fault before the panic", func(t *testing.T) {
		rec := &recorder{}
		configure(t, WithMaxDepth(2), WithObserver(rec))

		s := NewSignal(0)
		err := recoverError(func() {
			NewEffect(func() { s.Set(s.Get() + 1) })
		})
		require.ErrorIs(t, err, ErrCycle)

		assert.Equal(t, []string{
			"registered",
			"run depth=1",
			"write subs=1",
			"run depth=2",
			"write subs=2",
			"cycle depth=3",
		}, rec.log)
	})
}

func TestConfigure(t *testing.T) {
	t.Run("resets to defaults", func(t *testing.T) {
		Configure(WithDedupe(true), WithMaxDepth(3))
		Configure()

		cfg := internal.GetRuntime().Config()
		assert.False(t, cfg.Dedupe)
		assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	})

	t.Run("fans out to every observer", func(t *testing.T) {
		first := &recorder{}
		second := &recorder{}
		configure(t, WithObserver(first, second))

		count := NewSignal(1)
		NewComputed(func() int { return count.Get() * 2 })
		count.Set(2)

		expected := []string{
			"registered",
			"run depth=1",
			"updated",
			"write subs=1",
			"run depth=1",
			"updated",
		}
		assert.Equal(t, expected, first.log)
		assert.Equal(t, expected, second.log)
	})
}
