package input

// historyCap bounds how many signals one timed poll can retain.
const historyCap = 100

// History is a fixed-capacity queue of signals with overwrite-oldest
// eviction. It never allocates after construction; a full push evicts
// the oldest entry, never the newest.
type History struct {
	signals [historyCap]Signal
	start   int
	count   int
}

// Len returns the number of retained signals.
func (h *History) Len() int {
	return h.count
}

// Clear empties the history without releasing storage.
func (h *History) Clear() {
	h.start = 0
	h.count = 0
}

// Push appends a signal, evicting the oldest when full.
func (h *History) Push(s Signal) {
	if h.count == historyCap {
		h.signals[h.start] = s
		h.start = (h.start + 1) % historyCap
		return
	}
	h.signals[(h.start+h.count)%historyCap] = s
	h.count++
}

// At returns the i-th retained signal, 0 being the oldest. Out-of-range
// indices are a programming defect and panic.
func (h *History) At(i int) Signal {
	if i < 0 || i >= h.count {
		panic("input: history index out of range")
	}
	return h.signals[(h.start+i)%historyCap]
}

// Last returns the newest signal, or ok == false when empty.
func (h *History) Last() (Signal, bool) {
	if h.count == 0 {
		return Signal{}, false
	}
	return h.At(h.count - 1), true
}
