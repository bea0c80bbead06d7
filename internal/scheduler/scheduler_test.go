package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/arbeitszeit/internal/clock"
)

var epoch = time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local)

func TestAfterFires(t *testing.T) {
	fake := clock.NewFake(epoch)
	s := New(fake)
	defer s.Close()

	fired := 0
	s.After(500*time.Millisecond, func() { fired++ })
	assert.Equal(t, 1, s.Pending())

	fake.Advance(499 * time.Millisecond)
	assert.Equal(t, 0, fired)

	fake.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestAfterStop(t *testing.T) {
	fake := clock.NewFake(epoch)
	s := New(fake)
	defer s.Close()

	fired := false
	task := s.After(500*time.Millisecond, func() { fired = true })
	task.Stop()
	task.Stop()

	fake.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestRescheduleCancelsPrevious(t *testing.T) {
	fake := clock.NewFake(epoch)
	s := New(fake)
	defer s.Close()

	var fired []string
	first := s.After(500*time.Millisecond, func() { fired = append(fired, "first") })

	fake.Advance(200 * time.Millisecond)
	first.Stop()
	s.After(500*time.Millisecond, func() { fired = append(fired, "second") })

	fake.Advance(time.Second)
	assert.Equal(t, []string{"second"}, fired)
}

func TestCloseCancelsPending(t *testing.T) {
	fake := clock.NewFake(epoch)
	s := New(fake)

	fired := false
	s.After(time.Second, func() { fired = true })
	s.Close()
	s.Close()

	fake.Advance(time.Minute)
	assert.False(t, fired)

	// Tasks scheduled after Close never run.
	s.After(time.Millisecond, func() { fired = true })
	fake.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the real cron engine")
	}

	s := New(nil)
	defer s.Close()

	var count atomic.Int32
	task := s.Every(time.Second, func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)

	task.Stop()
	stopped := count.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), stopped+1)
	assert.Equal(t, 0, s.Pending())
}
