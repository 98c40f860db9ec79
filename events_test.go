package reactivity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/capitan"
)

func TestEventObserver(t *testing.T) {
	t.Run("emits cycle events", func(t *testing.T) {
		depths := make(chan int, 1)
		capitan.Hook(CycleDetectedEvent, func(_ context.Context, e *capitan.Event) {
			depth, _ := KeyDepth.From(e)
			select {
			case depths <- depth:
			default:
			}
		})

		configure(t, WithObserver(NewEventObserver(context.Background())), WithMaxDepth(10))

		s := NewSignal(0)
		err := recoverError(func() {
			NewEffect(func() { s.Set(s.Get() + 1) })
		})
		require.ErrorIs(t, err, ErrCycle)

		select {
		case depth := <-depths:
			assert.Equal(t, 11, depth)
		case <-time.After(2 * time.Second):
			t.Fatal("cycle event not received")
		}
	})

	t.Run("nil context falls back to background", func(t *testing.T) {
		o := NewEventObserver(nil)
		assert.NotNil(t, o.ctx)
	})
}
