package game

import (
	"context"
	"time"
)

// Loop is the single-threaded tick loop. It holds at most one step function;
// Restart swaps it and bumps the generation so a handler bound to a previous
// scene can tell it has been superseded.
type Loop struct {
	step       func()
	running    bool
	generation uint64
}

// NewLoop creates a stopped loop
func NewLoop() *Loop {
	return &Loop{}
}

// Start installs step and starts ticking. Starting a running loop replaces its step.
func (l *Loop) Start(step func()) {
	l.step = step
	l.running = step != nil
	l.generation++
}

// Stop halts the loop and drops its step
func (l *Loop) Stop() {
	l.step = nil
	l.running = false
	l.generation++
}

// Restart stops the loop and starts it fresh with step
func (l *Loop) Restart(step func()) {
	l.Stop()
	l.Start(step)
}

// Running reports whether a step is installed
func (l *Loop) Running() bool {
	return l.running
}

// Generation returns a counter bumped by every Start and Stop
func (l *Loop) Generation() uint64 {
	return l.generation
}

// Step runs the installed step once. It returns false when stopped.
func (l *Loop) Step() bool {
	if !l.running {
		return false
	}
	l.step()
	return true
}

// Drive calls tick every interval until ctx is done or tick fails. Hosts
// without their own frame callback use it; ticks never overlap.
func Drive(ctx context.Context, interval time.Duration, tick func() error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Both cases may be ready at once; never tick after cancellation
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := tick(); err != nil {
				return err
			}
		}
	}
}
