package internal

import "sync"

type EffectID uint64

// Registry holds every effect body ever registered.
// Entries are never removed, so an id found in a subscriber list always resolves.
type Registry struct {
	mu sync.Mutex

	next    EffectID
	effects map[EffectID]func()
}

func NewRegistry() *Registry {
	return &Registry{
		effects: make(map[EffectID]func()),
	}
}

func (r *Registry) Register(fn func()) EffectID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	r.effects[id] = fn

	return id
}

func (r *Registry) Lookup(id EffectID) (func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn, ok := r.effects[id]
	return fn, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.effects)
}

// NewEffect registers fn and runs it once right away,
// which subscribes it to everything it reads.
func (r *Runtime) NewEffect(fn func()) EffectID {
	id := r.register(fn)
	r.Run(id)

	return id
}

func (r *Runtime) register(fn func()) EffectID {
	id := r.registry.Register(fn)
	r.Observer().EffectRegistered(id)

	return id
}

// Run executes a registered effect with itself as the ambient effect.
func (r *Runtime) Run(id EffectID) {
	fn, ok := r.registry.Lookup(id)
	if !ok {
		return
	}

	cfg := r.Config()
	t := GetTracker()

	depth := t.Depth() + 1
	if cfg.MaxDepth > 0 && depth > cfg.MaxDepth {
		err := &CycleError{Effect: id, Depth: depth}
		cfg.Observer.CycleDetected(id, depth)
		panic(err)
	}

	cfg.Observer.EffectRun(id, depth)
	t.RunWithEffect(id, fn)
}
