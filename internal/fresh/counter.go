// Package fresh provides the monotonically-increasing counter that both
// passes thread through their state: the inference engine uses one
// instance to mint fresh type-variable ids, and the pattern-elimination
// pass uses a separate instance to mint fresh value names. The two
// passes never share a counter (spec.md §5: "no shared mutable state
// exists between passes").
package fresh

import "strconv"

// Counter is a single monotonically increasing integer sequence.
type Counter struct {
	next int
}

// NewCounter creates a counter starting at 0.
func NewCounter() *Counter { return &Counter{} }

// Next returns the next unused integer and advances the counter.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}

// Peek returns the next integer the counter will produce, without
// advancing it.
func (c *Counter) Peek() int { return c.next }

// NextName returns the next unused integer, formatted with prefix (e.g.
// "a" for pattern-elimination's fresh value names, producing "a0", "a1", ...).
func (c *Counter) NextName(prefix string) string {
	return prefix + strconv.Itoa(c.Next())
}
