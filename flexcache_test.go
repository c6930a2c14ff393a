package flexcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndGet(t *testing.T) {
	clock := newMockClock(0)
	c := New(clock)

	err := c.Insert([]byte("k"), "v", 1, 0, 0)
	require.NoError(t, err)

	v, ok := c.Get([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, uint64(1), c.Stats().Hits)
}

func TestInsertRejectsEmptyKey(t *testing.T) {
	c := New(newMockClock(0))
	err := c.Insert(nil, "v", 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInsertRejectsNegativeSize(t *testing.T) {
	c := New(newMockClock(0))
	err := c.Insert([]byte("k"), "v", -1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	c := New(newMockClock(0))
	require.NoError(t, c.Insert([]byte("k"), "v1", 1, 0, 0))

	err := c.Insert([]byte("k"), "v2", 1, 0, 0)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	v, _ := c.Get([]byte("k"))
	assert.Equal(t, "v1", v)
}

func TestGetMissingKeyCountsMiss(t *testing.T) {
	c := New(newMockClock(0))
	_, ok := c.Get([]byte("missing"))
	assert.False(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Misses)
}

func TestGetExpiredEntryIsRemovedAndCountedAsExpiration(t *testing.T) {
	clock := newMockClock(1000)
	c := New(clock)
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 500*time.Millisecond, 0))

	clock.Set(1499)
	_, ok := c.Get([]byte("k"))
	assert.True(t, ok, "not yet expired the instant before expiresAt")

	clock.Set(1500)
	_, ok = c.Get([]byte("k"))
	assert.False(t, ok, "expiry is inclusive: now == expiresAt counts as expired")
	assert.Equal(t, uint64(1), c.Stats().Expirations)
	assert.Equal(t, 0, c.Len())
}

func TestTTLWinsOverAbsoluteExpiresAt(t *testing.T) {
	clock := newMockClock(1000)
	c := New(clock)
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 2000*time.Millisecond, 10000))

	clock.Set(3000)
	_, ok := c.Get([]byte("k"))
	assert.False(t, ok, "ttl (expires at 3000) should win over absolute expiresAt=10000")
}

func TestNeverExpiresWhenBothZero(t *testing.T) {
	clock := newMockClock(0)
	c := New(clock)
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 0, 0))

	clock.Set(1 << 40)
	_, ok := c.Get([]byte("k"))
	assert.True(t, ok)
}

func TestDeleteRemovesEntry(t *testing.T) {
	c := New(newMockClock(0))
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 0, 0))

	assert.True(t, c.Delete([]byte("k")))
	_, ok := c.Get([]byte("k"))
	assert.False(t, ok)
}

func TestDeleteAbsentKeyReturnsFalse(t *testing.T) {
	c := New(newMockClock(0))
	assert.False(t, c.Delete([]byte("missing")))
}

func TestItemMaxEnforcedByLRU(t *testing.T) {
	c := New(newMockClock(0), WithItemMax(2))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 0, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 0, 0))
	require.NoError(t, c.Insert([]byte("c"), 3, 1, 0, 0))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get([]byte("a"))
	assert.False(t, ok, "a was least recently used and should have been evicted")
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestByteMaxEnforced(t *testing.T) {
	c := New(newMockClock(0), WithByteMax(5))
	require.NoError(t, c.Insert([]byte("a"), 1, 3, 0, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 3, 0, 0))

	assert.LessOrEqual(t, c.Bytes(), int64(5))
	_, ok := c.Get([]byte("a"))
	assert.False(t, ok)
}

func TestTouchOnGetProtectsFromLRUEviction(t *testing.T) {
	c := New(newMockClock(0), WithItemMax(2))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 0, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 0, 0))

	_, _ = c.Get([]byte("a")) // touch a, making b the LRU victim

	require.NoError(t, c.Insert([]byte("c"), 3, 1, 0, 0))

	_, ok := c.Get([]byte("b"))
	assert.False(t, ok)
	_, ok = c.Get([]byte("a"))
	assert.True(t, ok)
}

func TestOnDeleteFiresBeforeFreeHooksInOrder(t *testing.T) {
	var events []string

	keyFree := func(key []byte) { events = append(events, "keyFree:"+string(key)) }
	valueFree := func(value any) { events = append(events, "valueFree") }
	onDelete := func(key []byte, value any, size int64) {
		events = append(events, "onDelete:"+string(key))
	}

	c := New(newMockClock(0),
		WithKeyHooks(func(k []byte) ([]byte, bool) { return append([]byte(nil), k...), true }, keyFree),
		WithValueHooks(func(v any) (any, bool) { return v, true }, valueFree),
		WithOnDelete(onDelete),
	)
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 0, 0))

	assert.True(t, c.Delete([]byte("k")))

	assert.Equal(t, []string{"onDelete:k", "keyFree:k", "valueFree"}, events)
}

func TestDuplicateInsertRollsBackCopiedBuffers(t *testing.T) {
	var freedKeys []string
	keyFree := func(k []byte) { freedKeys = append(freedKeys, string(k)) }

	c := New(newMockClock(0),
		WithKeyHooks(func(k []byte) ([]byte, bool) { return append([]byte(nil), k...), true }, keyFree),
	)
	require.NoError(t, c.Insert([]byte("k"), "v1", 1, 0, 0))

	err := c.Insert([]byte("k"), "v2", 1, 0, 0)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, []string{"k"}, freedKeys)
}

func TestScanAndCleanRemovesAllExpired(t *testing.T) {
	clock := newMockClock(0)
	c := New(clock)
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 100*time.Millisecond, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 0, 0))

	clock.Set(200)
	c.ScanAndClean()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get([]byte("b"))
	assert.True(t, ok)
}

func TestMaybeScanAndCleanFirstCallAlwaysRuns(t *testing.T) {
	clock := newMockClock(0)
	c := New(clock, WithScanInterval(1000))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 100*time.Millisecond, 0))

	clock.Set(150)
	c.MaybeScanAndClean() // first call always runs regardless of interval
	assert.Equal(t, 0, c.Len())
}

func TestMaybeScanAndCleanSkipsWithinInterval(t *testing.T) {
	clock := newMockClock(100)
	c := New(clock, WithScanInterval(1000))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 0, 0))

	c.MaybeScanAndClean() // never scanned before -> runs, sets lastScan=100
	clock.Set(500)
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 100*time.Millisecond, 0))
	clock.Set(700) // only 600ms since lastScan, interval is 1000
	c.MaybeScanAndClean()

	assert.Equal(t, 2, c.Len(), "sweep should have been skipped, b not yet removed")
}

func TestDestroyFiresOnDeleteForEveryEntry(t *testing.T) {
	var deleted []string
	c := New(newMockClock(0), WithOnDelete(func(key []byte, value any, size int64) {
		deleted = append(deleted, string(key))
	}))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 0, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 0, 0))

	c.Destroy()

	assert.ElementsMatch(t, []string{"a", "b"}, deleted)
	assert.Equal(t, 0, c.Len())
}

func TestSetPolicySwapsEvictionBehavior(t *testing.T) {
	c := New(newMockClock(0), WithItemMax(2), WithPolicy(NewFIFOPolicy()))
	require.NoError(t, c.Insert([]byte("a"), 1, 1, 0, 0))
	require.NoError(t, c.Insert([]byte("b"), 2, 1, 0, 0))

	_, _ = c.Get([]byte("a")) // FIFO: touch does nothing, a still oldest

	require.NoError(t, c.Insert([]byte("c"), 3, 1, 0, 0))

	_, ok := c.Get([]byte("a"))
	assert.False(t, ok, "FIFO evicts oldest insert regardless of touches")
}

func TestHitRatio(t *testing.T) {
	c := New(newMockClock(0))
	require.NoError(t, c.Insert([]byte("k"), "v", 1, 0, 0))

	_, _ = c.Get([]byte("k"))
	_, _ = c.Get([]byte("missing"))

	assert.Equal(t, 0.5, c.Stats().HitRatio())
}

func TestWithScanIntervalConvertsDuration(t *testing.T) {
	c := New(newMockClock(0), WithScanInterval(2*time.Second))
	assert.Equal(t, uint64(2000), c.scanInterval)
}
