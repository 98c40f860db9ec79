package internal

// Observer is notified of runtime activity.
// Methods are called synchronously on the goroutine doing the work.
type Observer interface {
	EffectRegistered(id EffectID)
	EffectRun(id EffectID, depth int)
	SignalWritten(subscribers int)
	ComputedUpdated(updater EffectID)
	CycleDetected(id EffectID, depth int)
}

type noopObserver struct{}

func (noopObserver) EffectRegistered(EffectID)   {}
func (noopObserver) EffectRun(EffectID, int)     {}
func (noopObserver) SignalWritten(int)           {}
func (noopObserver) ComputedUpdated(EffectID)    {}
func (noopObserver) CycleDetected(EffectID, int) {}

type multiObserver []Observer

// Observers fans out to every given observer, in order.
func Observers(observers ...Observer) Observer {
	switch len(observers) {
	case 0:
		return noopObserver{}
	case 1:
		return observers[0]
	}

	return multiObserver(observers)
}

func (m multiObserver) EffectRegistered(id EffectID) {
	for _, o := range m {
		o.EffectRegistered(id)
	}
}

func (m multiObserver) EffectRun(id EffectID, depth int) {
	for _, o := range m {
		o.EffectRun(id, depth)
	}
}

func (m multiObserver) SignalWritten(subscribers int) {
	for _, o := range m {
		o.SignalWritten(subscribers)
	}
}

func (m multiObserver) ComputedUpdated(updater EffectID) {
	for _, o := range m {
		o.ComputedUpdated(updater)
	}
}

func (m multiObserver) CycleDetected(id EffectID, depth int) {
	for _, o := range m {
		o.CycleDetected(id, depth)
	}
}
