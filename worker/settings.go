package worker

import (
	"fmt"
)

// Context identifies a worker within the pool. It is passed by value; the frame buffer held by
// the Worker is the only state shared with other workers.
type Context struct {
	Rank        int
	ThreadCount int
	Width       int
}

func (c *Context) String() string {
	output := "\nWorker context\n"
	output += fmt.Sprintf("Rank: %d\n", c.Rank)
	output += fmt.Sprintf("Thread Count: %d\n", c.ThreadCount)
	output += fmt.Sprintf("Width: %d\n", c.Width)
	return output
}

func (c *Context) Verify() error {
	if c.ThreadCount < 1 {
		return fmt.Errorf("thread count must be at least 1, got %d", c.ThreadCount)
	}
	if c.Rank < 0 || c.Rank >= c.ThreadCount {
		return fmt.Errorf("rank %d outside [0, %d)", c.Rank, c.ThreadCount)
	}
	if c.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	return nil
}
