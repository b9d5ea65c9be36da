package paths

// Cycle is the tab-completion cycling state: a finite, precomputed
// candidate list and a cursor. The owner resets it by dropping the
// value on any input event other than the completion trigger key.
type Cycle struct {
	candidates []string
	cursor     int
}

// NewCycle creates cycling state over the full candidate list. The
// list is captured as-is; candidates keep their listing order.
func NewCycle(candidates []string) *Cycle {
	return &Cycle{candidates: append([]string(nil), candidates...)}
}

// Len returns the number of candidates.
func (c *Cycle) Len() int {
	return len(c.candidates)
}

// Peek returns the candidate the cursor is on without advancing.
func (c *Cycle) Peek() (string, bool) {
	if len(c.candidates) == 0 {
		return "", false
	}
	return c.candidates[c.cursor%len(c.candidates)], true
}

// Next returns the candidate under the cursor and advances, wrapping
// around at the end. Returns false only when there are no candidates.
func (c *Cycle) Next() (string, bool) {
	if len(c.candidates) == 0 {
		return "", false
	}
	candidate := c.candidates[c.cursor%len(c.candidates)]
	c.cursor++
	return candidate, true
}
