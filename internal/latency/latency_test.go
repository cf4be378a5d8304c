package latency_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/socialhub/internal/latency"
)

func TestClockWaitsForDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inj := latency.NewClock(clock)

	done := make(chan error, 1)
	go func() {
		done <- inj.Delay(context.Background(), 300*time.Millisecond)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	select {
	case <-done:
		t.Fatal("delay returned before the clock advanced")
	default:
	}

	clock.Advance(300 * time.Millisecond)
	assert.NoError(t, <-done)
}

func TestClockHonoursCancellation(t *testing.T) {
	inj := latency.NewClock(clockwork.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, inj.Delay(ctx, time.Hour), context.Canceled)
}

func TestOff(t *testing.T) {
	assert.NoError(t, latency.Off{}.Delay(context.Background(), time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, latency.Off{}.Delay(ctx, time.Hour), context.Canceled)
}
