package internal

type Computed struct {
	*Signal

	compute func() any

	// the owned effect keeping the cached value current
	updater EffectID
}

// NewComputed computes the initial value, then registers the updater effect.
// The updater's first run calls compute again, this time with the updater as
// the ambient effect, which is how the computed discovers its dependencies.
func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := &Computed{
		Signal:  r.NewSignal(compute()),
		compute: compute,
	}

	c.updater = r.register(c.update)
	r.Run(c.updater)

	return c
}

func (c *Computed) update() {
	c.store(c.compute())
	c.r.Observer().ComputedUpdated(c.updater)

	c.Trigger()
}

func (c *Computed) Updater() EffectID {
	return c.updater
}
