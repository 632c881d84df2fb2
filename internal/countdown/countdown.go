// Package countdown implements the one-shot timer lifecycle: arm, wait,
// cancel on interrupt, fire.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Terminator ends the current OS session. It is invoked at most once per
// countdown, at the moment the deadline passes.
type Terminator interface {
	TerminateSession() error
}

// State is the lifecycle position of a Controller. Cancelled and Fired are
// terminal and reachable only from Armed.
type State int

const (
	StateArmed State = iota
	StateCancelled
	StateFired
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateCancelled:
		return "cancelled"
	case StateFired:
		return "fired"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome is the result of a completed countdown.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeFired
)

func (o Outcome) String() string {
	if o == OutcomeFired {
		return "fired"
	}
	return "cancelled"
}

// ErrConsumed is returned when Run is called on a controller that already
// reached a terminal state. A Controller manages exactly one countdown.
var ErrConsumed = errors.New("countdown already consumed")

// TerminationError reports that the deadline was reached and the terminator
// was invoked, but it could not complete the session action. The countdown is
// still Fired; the action is never retried.
type TerminationError struct {
	Cause error
}

func (e *TerminationError) Error() string {
	return fmt.Sprintf("session termination failed: %v", e.Cause)
}

func (e *TerminationError) Unwrap() error { return e.Cause }

// Options tune a Controller. The zero value is usable.
type Options struct {
	// PollInterval is how often cancellation and the deadline are
	// re-checked. Defaults to one second.
	PollInterval time.Duration
	// OnTick, if set, is called once per poll with the remaining time.
	OnTick func(remaining time.Duration)
	// Now overrides the clock (for tests).
	Now func() time.Time
}

// Controller owns the lifecycle of a single countdown. It is not safe for
// concurrent use; one countdown per process invocation.
type Controller struct {
	terminator Terminator
	interval   time.Duration
	onTick     func(time.Duration)
	now        func() time.Time
	state      State
}

// New returns an armed controller that will invoke t when the deadline
// passes.
func New(t Terminator, opts Options) *Controller {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		terminator: t,
		interval:   interval,
		onTick:     opts.OnTick,
		now:        now,
	}
}

// State reports the controller's current lifecycle state.
func (c *Controller) State() State { return c.state }

// Run blocks until the countdown resolves and returns how it ended.
//
// Cancelling ctx while the countdown is armed yields OutcomeCancelled and the
// terminator is never invoked. When the deadline passes first, the state
// becomes Fired and the terminator runs exactly once; a terminator failure is
// surfaced as a *TerminationError but the state stays Fired and the action is
// not retried. Cancellation is checked before the deadline on every tick, so
// an interrupt landing on the same tick as the deadline still wins.
func (c *Controller) Run(ctx context.Context, d time.Duration) (Outcome, error) {
	if c.state != StateArmed {
		return OutcomeCancelled, fmt.Errorf("%w: state %s", ErrConsumed, c.state)
	}
	deadline := c.now().Add(d)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.state = StateCancelled
			return OutcomeCancelled, nil
		default:
		}

		remaining := deadline.Sub(c.now())
		if remaining <= 0 {
			return c.fire()
		}
		if c.onTick != nil {
			c.onTick(remaining)
		}

		select {
		case <-ctx.Done():
			c.state = StateCancelled
			return OutcomeCancelled, nil
		case <-ticker.C:
		}
	}
}

func (c *Controller) fire() (Outcome, error) {
	c.state = StateFired
	if err := c.terminator.TerminateSession(); err != nil {
		return OutcomeFired, &TerminationError{Cause: err}
	}
	return OutcomeFired, nil
}
