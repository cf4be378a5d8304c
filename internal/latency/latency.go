package latency

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Injector simulates the round trip of a remote call.
type Injector interface {
	Delay(ctx context.Context, d time.Duration) error
}

// Clock waits on timers from the wrapped clock.
type Clock struct {
	clock clockwork.Clock
}

func NewClock(clock clockwork.Clock) *Clock {
	return &Clock{clock: clock}
}

func (c *Clock) Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := c.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// Off never waits.
type Off struct{}

func (Off) Delay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

var (
	_ Injector = (*Clock)(nil)
	_ Injector = Off{}
)
