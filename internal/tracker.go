package internal

type frame struct {
	effect   EffectID
	tracking bool
}

// Tracker is the ambient context of one goroutine:
// the stack of effects currently executing on it.
type Tracker struct {
	frames []frame

	// number of tracking frames on the stack
	depth int

	// called when the stack leaves or returns to empty
	onActive func()
	onIdle   func()
}

func NewTracker() *Tracker {
	return &Tracker{
		frames: make([]frame, 0, 8),
	}
}

// RunWithEffect runs fn with the given effect as the current one.
// The previous frame is restored when fn returns, even if it panics.
func (t *Tracker) RunWithEffect(id EffectID, fn func()) {
	t.push(frame{effect: id, tracking: true})
	defer t.pop()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	t.push(frame{tracking: false})
	defer t.pop()

	fn()
}

// Current returns the effect that should be subscribed by a read, if any.
func (t *Tracker) Current() (EffectID, bool) {
	if len(t.frames) == 0 {
		return 0, false
	}

	top := t.frames[len(t.frames)-1]
	return top.effect, top.tracking
}

// Depth is the number of nested effect runs. Untracked frames do not count.
func (t *Tracker) Depth() int {
	return t.depth
}

func (t *Tracker) push(f frame) {
	if len(t.frames) == 0 && t.onActive != nil {
		t.onActive()
	}

	t.frames = append(t.frames, f)
	if f.tracking {
		t.depth++
	}
}

func (t *Tracker) pop() {
	top := t.frames[len(t.frames)-1]
	t.frames = t.frames[:len(t.frames)-1]
	if top.tracking {
		t.depth--
	}

	if len(t.frames) == 0 && t.onIdle != nil {
		t.onIdle()
	}
}

// CurrentEffect returns the effect running on the calling goroutine, if it is tracking.
// It never allocates a tracker.
func CurrentEffect() (EffectID, bool) {
	t, ok := LookupTracker()
	if !ok {
		return 0, false
	}

	return t.Current()
}
