package application_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bnema/ai-accounts-manager/internal/application"
	"github.com/bnema/ai-accounts-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *lockedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *lockedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type countdownRecorder struct {
	mu        sync.Mutex
	countdown []domain.Countdown
}

func (r *countdownRecorder) record(c domain.Countdown) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countdown = append(r.countdown, c)
}

func (r *countdownRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.countdown)
}

func (r *countdownRecorder) last() domain.Countdown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countdown[len(r.countdown)-1]
}

const testTickInterval = 10 * time.Millisecond

func TestProjectorNilTargetEmitsExpiredOnceAndStopsTicking(t *testing.T) {
	t.Parallel()

	clock := &lockedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &countdownRecorder{}
	projector := application.NewProjector(clock, testTickInterval, recorder.record)
	defer projector.Stop()

	projector.SetTarget(nil)

	require.Equal(t, 1, recorder.len(), "immediate recompute on retarget")
	assert.True(t, recorder.last().IsExpired)
	assert.Equal(t, "00:00:00:00", recorder.last().Formatted)

	time.Sleep(5 * testTickInterval)
	assert.Equal(t, 1, recorder.len(), "no ticks scheduled for an expired target")
}

func TestProjectorTicksWhileTargetIsInTheFuture(t *testing.T) {
	t.Parallel()

	clock := &lockedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &countdownRecorder{}
	projector := application.NewProjector(clock, testTickInterval, recorder.record)
	defer projector.Stop()

	target := clock.Now().Add(2 * time.Hour)
	projector.SetTarget(&target)

	require.GreaterOrEqual(t, recorder.len(), 1)
	assert.False(t, recorder.last().IsExpired)
	assert.Equal(t, 2, recorder.last().Hours)

	require.Eventually(t, func() bool {
		return recorder.len() >= 3
	}, time.Second, testTickInterval, "recurring ticks while unexpired")
}

func TestProjectorStopsSchedulingOnceExpired(t *testing.T) {
	t.Parallel()

	clock := &lockedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &countdownRecorder{}
	projector := application.NewProjector(clock, testTickInterval, recorder.record)
	defer projector.Stop()

	target := clock.Now().Add(time.Hour)
	projector.SetTarget(&target)

	clock.Set(target.Add(time.Second))

	require.Eventually(t, func() bool {
		return recorder.len() > 0 && recorder.last().IsExpired
	}, time.Second, testTickInterval)

	settled := recorder.len()
	time.Sleep(5 * testTickInterval)
	assert.Equal(t, settled, recorder.len(), "expiry disposes the tick loop")
}

func TestProjectorRetargetSupersedesPreviousLoop(t *testing.T) {
	t.Parallel()

	clock := &lockedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &countdownRecorder{}
	projector := application.NewProjector(clock, testTickInterval, recorder.record)
	defer projector.Stop()

	target := clock.Now().Add(time.Hour)
	projector.SetTarget(&target)

	projector.SetTarget(nil)
	assert.True(t, recorder.last().IsExpired, "clearing the target recomputes immediately")

	// Let any in-flight tick from the superseded loop drain first.
	time.Sleep(2 * testTickInterval)
	settled := recorder.len()
	time.Sleep(5 * testTickInterval)
	assert.Equal(t, settled, recorder.len(), "old loop dies after retarget")
}

func TestProjectorStopPreventsFurtherEmissions(t *testing.T) {
	t.Parallel()

	clock := &lockedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	recorder := &countdownRecorder{}
	projector := application.NewProjector(clock, testTickInterval, recorder.record)

	target := clock.Now().Add(time.Hour)
	projector.SetTarget(&target)
	projector.Stop()

	time.Sleep(2 * testTickInterval)
	settled := recorder.len()
	time.Sleep(5 * testTickInterval)
	assert.Equal(t, settled, recorder.len())

	projector.SetTarget(&target)
	assert.Equal(t, settled, recorder.len(), "SetTarget after Stop is a no-op")
}
