package reactivity

import (
	"fmt"
	"testing"
)

// configure applies opts for the duration of the test.
func configure(t *testing.T, opts ...Option) {
	t.Helper()

	Configure(opts...)
	t.Cleanup(func() { Configure() })
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	fn()
	return nil
}

type recorder struct {
	log []string
}

func (r *recorder) EffectRegistered(id EffectID) {
	r.log = append(r.log, "registered")
}

func (r *recorder) EffectRun(id EffectID, depth int) {
	r.log = append(r.log, fmt.Sprintf("run depth=%d", depth))
}

func (r *recorder) SignalWritten(subscribers int) {
	r.log = append(r.log, fmt.Sprintf("write subs=%d", subscribers))
}

func (r *recorder) ComputedUpdated(updater EffectID) {
	r.log = append(r.log, "updated")
}

func (r *recorder) CycleDetected(id EffectID, depth int) {
	r.log = append(r.log, fmt.Sprintf("cycle depth=%d", depth))
}
