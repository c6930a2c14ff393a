// Package flexsync adapts flexcache.Cache, which performs no internal
// locking, for hosts that need concurrent access: a mutex-guarded
// wrapper plus an optional background janitor goroutine, in the same
// shape as the ticker-driven janitor the core cache engine was
// originally built with before locking was pulled out into this
// opt-in layer.
package flexsync

import (
	"sync"
	"time"

	"github.com/bellirodrigo2/flexcache"
)

// SynchronizedCache wraps a *flexcache.Cache behind a sync.RWMutex:
// Len, Bytes and Stats take the read lock; every other operation,
// including Get (which updates policy order and stats), takes the write
// lock. An optional janitor goroutine periodically calls
// MaybeScanAndClean so hosts that never call it themselves still get
// proactive TTL sweeping.
type SynchronizedCache struct {
	mu    sync.RWMutex
	inner *flexcache.Cache

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Wrap returns a SynchronizedCache around c. If janitorInterval > 0 a
// background goroutine calls MaybeScanAndClean on that period until
// Stop is called; a zero interval disables the janitor and leaves
// sweeping entirely up to explicit calls.
func Wrap(c *flexcache.Cache, janitorInterval time.Duration) *SynchronizedCache {
	s := &SynchronizedCache{
		inner:    c,
		stopChan: make(chan struct{}),
	}
	if janitorInterval > 0 {
		s.startJanitor(janitorInterval)
	}
	return s
}

func (s *SynchronizedCache) startJanitor(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.MaybeScanAndClean()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the janitor goroutine, if one was started, and waits for
// it to exit. The underlying cache remains usable afterward. Safe to
// call more than once, including concurrently.
func (s *SynchronizedCache) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

func (s *SynchronizedCache) Insert(key []byte, value any, size int64, ttl time.Duration, expiresAt uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Insert(key, value, size, ttl, expiresAt)
}

func (s *SynchronizedCache) Get(key []byte) (any, bool) {
	s.mu.Lock() // Get mutates policy order and stats, so it needs the write lock too.
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

func (s *SynchronizedCache) Delete(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(key)
}

func (s *SynchronizedCache) ScanAndClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.ScanAndClean()
}

func (s *SynchronizedCache) MaybeScanAndClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.MaybeScanAndClean()
}

func (s *SynchronizedCache) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Destroy()
}

func (s *SynchronizedCache) SetPolicy(p flexcache.Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.SetPolicy(p)
}

func (s *SynchronizedCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

func (s *SynchronizedCache) Bytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Bytes()
}

func (s *SynchronizedCache) Stats() flexcache.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Stats()
}
