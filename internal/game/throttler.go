package game

// Throttler runs a function on every nth call.
// A new Throttler is primed: its first TryRun runs.
type Throttler struct {
	every   int
	counter int
}

// NewThrottler creates a throttler that runs every nth call.
// Values below 1 are treated as 1.
func NewThrottler(every int) *Throttler {
	every = max(1, every)
	return &Throttler{every: every, counter: every}
}

// TryRun calls fn if its turn has come and reports whether it did.
func (t *Throttler) TryRun(fn func()) bool {
	t.counter++
	if t.counter < t.every {
		return false
	}
	t.counter = 0
	fn()
	return true
}

// Prime makes the next TryRun run regardless of the count.
func (t *Throttler) Prime() {
	t.counter = t.every
}
