package reactivity

import "github.com/KABBOUCHI/reactivity/internal"

// DefaultMaxDepth is the default limit on nested effect runs before a cycle is reported.
const DefaultMaxDepth = internal.DefaultMaxDepth

// Option configures the process-wide runtime.
type Option func(*internal.Config)

// WithDedupe makes a signal record each effect at most once,
// so an effect reading a signal several times re-runs once per write.
func WithDedupe(dedupe bool) Option {
	return func(c *internal.Config) {
		c.Dedupe = dedupe
	}
}

// WithMaxDepth sets how deeply effect runs may nest on one goroutine
// before propagation panics with a *CycleError. Untrack sections do not
// count towards the depth. Zero disables the guard.
func WithMaxDepth(depth int) Option {
	return func(c *internal.Config) {
		c.MaxDepth = depth
	}
}

// WithObserver sets the observers notified of runtime activity.
func WithObserver(observers ...Observer) Option {
	return func(c *internal.Config) {
		c.Observer = internal.Observers(observers...)
	}
}

// Configure resets the runtime configuration to its defaults, then applies opts.
// It affects every goroutine and takes effect on the next read or write.
func Configure(opts ...Option) {
	cfg := internal.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	internal.GetRuntime().SetConfig(cfg)
}

// Observer is notified synchronously of registrations, effect runs, writes,
// recomputations and cycle faults.
type Observer = internal.Observer
