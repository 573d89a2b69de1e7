package misc

import (
	"fmt"
	"time"
)

// Stopwatch brackets one timed section of a run.
type Stopwatch struct {
	startTime   time.Time
	elapsedTime time.Duration
}

func (s *Stopwatch) Start() {
	s.startTime = time.Now()
	s.elapsedTime = 0
}

func (s *Stopwatch) Stop() time.Duration {
	s.elapsedTime = time.Since(s.startTime)
	return s.elapsedTime
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsedTime
}

func (s *Stopwatch) String() string {
	return fmt.Sprintf("%.4f s", s.elapsedTime.Seconds())
}
