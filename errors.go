package reactivity

import "github.com/KABBOUCHI/reactivity/internal"

// ErrCycle is wrapped by the *CycleError panic raised when propagation
// nests deeper than the configured maximum depth, which in practice means
// an effect keeps re-triggering itself through the signals it writes.
var ErrCycle = internal.ErrCycle

// CycleError is the panic value for a detected dependency cycle.
// It names the effect whose run crossed the limit and the depth reached.
type CycleError = internal.CycleError
