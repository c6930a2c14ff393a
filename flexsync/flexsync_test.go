package flexsync

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellirodrigo2/flexcache"
)

func TestSynchronizedCacheInsertAndGet(t *testing.T) {
	s := Wrap(flexcache.New(flexcache.RealClock{}), 0)
	defer s.Stop()

	require.NoError(t, s.Insert([]byte("k"), "v", 1, 0, 0))
	v, ok := s.Get([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

// TestConcurrentAccess mirrors the teacher's concurrency stress test:
// many goroutines hammering Insert/Get/Delete on distinct keys must
// never race or panic under the race detector.
func TestConcurrentAccess(t *testing.T) {
	s := Wrap(flexcache.New(flexcache.RealClock{}, flexcache.WithItemMax(50)), 0)
	defer s.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := []byte("key-" + strconv.Itoa(i))
			_ = s.Insert(key, i, 1, 0, 0)
			s.Get(key)
			_ = s.Delete(key)
		}(i)
	}
	wg.Wait()
}

func TestJanitorSweepsExpiredEntries(t *testing.T) {
	s := Wrap(flexcache.New(flexcache.RealClock{}), 10*time.Millisecond)
	defer s.Stop()

	require.NoError(t, s.Insert([]byte("k"), "v", 1, time.Millisecond, 0)) // expires after 1ms
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, s.Len())
}

func TestStopIsIdempotent(t *testing.T) {
	s := Wrap(flexcache.New(flexcache.RealClock{}), 5*time.Millisecond)
	s.Stop()
	s.Stop()
}

// TestConcurrentStopDoesNotPanic calls Stop from many goroutines at once;
// under the race detector this would panic on a double close(s.stopChan)
// if Stop were not guarded by sync.Once.
func TestConcurrentStopDoesNotPanic(t *testing.T) {
	s := Wrap(flexcache.New(flexcache.RealClock{}), 5*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Stop()
		}()
	}
	wg.Wait()
}
