package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestAllow_BurstThenLimited(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	krl := newLimiter(1, 3, time.Minute, 0, clock.Now)
	defer krl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, krl.Allow("10.0.0.1"), "request %d within burst", i)
	}
	assert.False(t, krl.Allow("10.0.0.1"))

	clock.Advance(time.Second)
	assert.True(t, krl.Allow("10.0.0.1"), "token refilled after 1s")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	krl := newLimiter(1, 1, time.Minute, 0, clock.Now)
	defer krl.Stop()

	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))
	assert.True(t, krl.Allow("b"))
}

func TestEvictIdle(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	krl := newLimiter(1, 1, time.Minute, 0, clock.Now)
	defer krl.Stop()

	krl.Allow("old")
	clock.Advance(2 * time.Minute)
	krl.Allow("fresh")

	krl.evictIdle()
	assert.Equal(t, 1, krl.Len())
}

func TestStop_Idempotent(t *testing.T) {
	krl := New(10, 10)
	krl.Stop()
	assert.NotPanics(t, krl.Stop)
}

func BenchmarkAllowParallel(b *testing.B) {
	krl := New(1e9, 1<<20)
	defer krl.Stop()
	keys := []string{"192.0.2.1", "192.0.2.2", "192.0.2.3", "192.0.2.4"}

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			krl.Allow(keys[i%len(keys)])
			i++
		}
	})
}
