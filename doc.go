// Package reactivity provides fine-grained reactive state: signals, computed
// values and effects that discover their dependencies while they run.
//
// Reading a Signal or Computed inside an effect subscribes that effect.
// Writing a Signal re-runs its subscribers synchronously, in subscription order,
// before Set returns:
//
//	count := reactivity.NewSignal(1)
//	double := reactivity.NewComputed(func() int { return count.Get() * 2 })
//
//	reactivity.NewEffect(func() {
//		fmt.Println("double is", double.Get())
//	})
//
//	count.Set(2) // prints "double is 4"
//
// Effects live for the rest of the process. Every tracked read is recorded,
// so an effect that reads a signal twice, or re-reads it on each run, will be
// re-run once per recorded read; use Configure(WithDedupe(true)) to record
// each effect once per signal.
package reactivity
