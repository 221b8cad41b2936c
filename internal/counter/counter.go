// Package counter implements the numeric counter shown next to the board.
package counter

import "fmt"

// Start is the value a fresh counter begins at.
const Start = 10

// Counter is a value with increment, decrement and reset controls.
type Counter struct {
	value int
}

// New returns a counter at Start.
func New() *Counter {
	return &Counter{value: Start}
}

// From returns a counter at n.
func From(n int) *Counter {
	return &Counter{value: n}
}

func (c *Counter) Value() int { return c.value }
func (c *Counter) Increment() { c.value++ }
func (c *Counter) Decrement() { c.value-- }
func (c *Counter) Reset()     { c.value = 0 }

// Messages returns the status lines for the current value.
func (c *Counter) Messages() []string {
	n := c.value
	var msgs []string
	switch {
	case n == 0:
		msgs = append(msgs, "Start by pressing the buttons!")
	case n > 0:
		msgs = append(msgs, fmt.Sprintf("You added %d time(s)!", n))
	default:
		msgs = append(msgs, fmt.Sprintf("You subtracted %d time(s)!", -n))
	}
	if n > 10 {
		msgs = append(msgs, fmt.Sprintf("Wow! You reached %d!", n))
	}
	return msgs
}
