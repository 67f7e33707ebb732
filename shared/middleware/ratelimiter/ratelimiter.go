// Package ratelimiter keeps one token bucket per caller key.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket refilled continuously at rate tokens per second.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time

	key    string
	expiry *time.Timer
	parent *KeyedLimiter
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// touch pushes back the moment an idle bucket is forgotten.
func (b *bucket) touch() {
	if b.expiry != nil {
		b.expiry.Stop()
	}
	b.expiry = time.AfterFunc(b.parent.idleTTL, func() {
		b.parent.forget(b.key)
	})
}

// KeyedLimiter rate limits callers independently, e.g. one bucket per user id.
// Buckets idle for longer than idleTTL are dropped and start full again.
type KeyedLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*bucket
	rate     float64
	capacity float64
	idleTTL  time.Duration
	now      func() time.Time
}

func New(rate, capacity float64, idleTTL time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (l *KeyedLimiter) forget(key string) {
	l.mu.Lock()
	delete(l.buckets, key)
	l.mu.Unlock()
}

func (l *KeyedLimiter) bucketFor(key string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		b.mu.Lock()
		b.touch()
		b.mu.Unlock()
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if b, ok := l.buckets[key]; ok {
		b.mu.Lock()
		b.touch()
		b.mu.Unlock()
		return b
	}

	b = &bucket{
		tokens:     l.capacity,
		capacity:   l.capacity,
		rate:       l.rate,
		lastRefill: l.now(),
		key:        key,
		parent:     l,
	}
	b.touch()
	l.buckets[key] = b
	return b
}

// Allow takes one token from key's bucket.
func (l *KeyedLimiter) Allow(key string) bool {
	return l.bucketFor(key).allow(l.now())
}

// Len reports how many keys are currently tracked.
func (l *KeyedLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// Stop cancels every pending expiry timer.
func (l *KeyedLimiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.buckets {
		b.mu.Lock()
		if b.expiry != nil {
			b.expiry.Stop()
		}
		b.mu.Unlock()
	}
}
