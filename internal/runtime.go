package internal

import (
	"sync"
)

const DefaultMaxDepth = 10000

type Config struct {
	// record an effect at most once per subscriber list
	Dedupe bool

	// maximum nesting of effect runs on one goroutine, 0 disables the guard
	MaxDepth int

	Observer Observer
}

func DefaultConfig() Config {
	return Config{
		Dedupe:   false,
		MaxDepth: DefaultMaxDepth,
		Observer: noopObserver{},
	}
}

// Runtime is the process-wide state shared by every goroutine:
// the effect registry and the configuration.
// The ambient effect lives in a per-goroutine Tracker instead.
type Runtime struct {
	mu sync.RWMutex

	config   Config
	registry *Registry
}

func NewRuntime() *Runtime {
	return &Runtime{
		config:   DefaultConfig(),
		registry: NewRegistry(),
	}
}

var (
	runtimeOnce   sync.Once
	globalRuntime *Runtime
)

func GetRuntime() *Runtime {
	runtimeOnce.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

func (r *Runtime) Config() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.config
}

func (r *Runtime) SetConfig(cfg Config) {
	if cfg.Observer == nil {
		cfg.Observer = noopObserver{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = cfg
}

func (r *Runtime) Observer() Observer {
	return r.Config().Observer
}

func (r *Runtime) Registry() *Registry {
	return r.registry
}

// Untrack runs fn without subscribing the current effect to anything fn reads.
func (r *Runtime) Untrack(fn func()) {
	GetTracker().RunUntracked(fn)
}
