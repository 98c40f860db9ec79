package reactivity

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Runtime lifecycle signals, emitted by EventObserver.
var (
	// EffectRegisteredEvent is emitted when an effect, or a computed's updater, is registered.
	EffectRegisteredEvent = capitan.NewSignal(
		"reactivity.effect.registered",
		"Effect registered",
	)

	// ComputedUpdatedEvent is emitted when a computed recomputes its cached value.
	ComputedUpdatedEvent = capitan.NewSignal(
		"reactivity.computed.updated",
		"Computed value recomputed",
	)

	// CycleDetectedEvent is emitted right before propagation panics with a *CycleError.
	CycleDetectedEvent = capitan.NewSignal(
		"reactivity.cycle.detected",
		"Effect nesting exceeded the maximum depth",
	)
)

// Field keys for runtime events.
var (
	// KeyEffect is the id of the effect concerned.
	KeyEffect = capitan.NewIntKey("effect")

	// KeyDepth is the effect nesting depth on the emitting goroutine.
	KeyDepth = capitan.NewIntKey("depth")
)

// EventObserver is an Observer emitting capitan events.
// Effect runs and signal writes are too frequent to be worth an event each
// and are left to Metrics.
type EventObserver struct {
	ctx context.Context
}

// NewEventObserver returns an observer emitting with ctx.
func NewEventObserver(ctx context.Context) *EventObserver {
	if ctx == nil {
		ctx = context.Background()
	}

	return &EventObserver{ctx: ctx}
}

func (o *EventObserver) EffectRegistered(id EffectID) {
	capitan.Emit(o.ctx, EffectRegisteredEvent,
		KeyEffect.Field(int(id)),
	)
}

func (o *EventObserver) EffectRun(EffectID, int) {}

func (o *EventObserver) SignalWritten(int) {}

func (o *EventObserver) ComputedUpdated(updater EffectID) {
	capitan.Emit(o.ctx, ComputedUpdatedEvent,
		KeyEffect.Field(int(updater)),
	)
}

func (o *EventObserver) CycleDetected(id EffectID, depth int) {
	capitan.Emit(o.ctx, CycleDetectedEvent,
		KeyEffect.Field(int(id)),
		KeyDepth.Field(depth),
	)
}
