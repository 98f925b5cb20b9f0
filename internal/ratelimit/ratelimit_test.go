package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLimiter(t *testing.T, window time.Duration, max int) (*Limiter, *clock) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(ctx, window, max)
	l.now = c.now
	return l, c
}

func TestLimiter_Allow(t *testing.T) {
	limiter, c := newTestLimiter(t, time.Second, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("s1"), "request %d", i+1)
	}
	assert.False(t, limiter.Allow("s1"))

	// keys are independent
	assert.True(t, limiter.Allow("s2"))

	c.t = c.t.Add(1100 * time.Millisecond)
	assert.True(t, limiter.Allow("s1"))
}

func TestLimiter_Remaining(t *testing.T) {
	limiter, c := newTestLimiter(t, time.Minute, 5)

	n, reset := limiter.Remaining("s1")
	assert.Equal(t, 5, n)
	assert.Equal(t, c.t.Add(time.Minute), reset)

	limiter.Allow("s1")
	c.t = c.t.Add(10 * time.Second)
	limiter.Allow("s1")

	n, reset = limiter.Remaining("s1")
	assert.Equal(t, 3, n)
	assert.Equal(t, c.t.Add(50*time.Second), reset)
}

func TestLimiter_Sweep(t *testing.T) {
	limiter, c := newTestLimiter(t, 100*time.Millisecond, 5)

	limiter.Allow("key1")
	limiter.Allow("key2")
	c.t = c.t.Add(150 * time.Millisecond)
	limiter.Allow("key3")

	limiter.sweep()
	assert.Len(t, limiter.counters, 1)
	assert.Contains(t, limiter.counters, "key3")
}
