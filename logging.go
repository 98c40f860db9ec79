package reactivity

import (
	"context"
	"log/slog"
)

// LogObserver is an Observer writing structured log records.
// Activity is logged at debug level, cycle faults at error level.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogObserver{logger: logger.With("component", "reactivity")}
}

func (o *LogObserver) EffectRegistered(id EffectID) {
	o.debug("effect registered", slog.Uint64("effect", uint64(id)))
}

func (o *LogObserver) EffectRun(id EffectID, depth int) {
	o.debug("effect run", slog.Uint64("effect", uint64(id)), slog.Int("depth", depth))
}

func (o *LogObserver) SignalWritten(subscribers int) {
	o.debug("signal written", slog.Int("subscribers", subscribers))
}

func (o *LogObserver) ComputedUpdated(updater EffectID) {
	o.debug("computed updated", slog.Uint64("updater", uint64(updater)))
}

func (o *LogObserver) CycleDetected(id EffectID, depth int) {
	o.logger.LogAttrs(context.Background(), slog.LevelError, "cyclic dependency",
		slog.Uint64("effect", uint64(id)),
		slog.Int("depth", depth),
	)
}

func (o *LogObserver) debug(msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !o.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
