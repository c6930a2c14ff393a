// Package flexcache implements a single-threaded, in-process key/value
// cache engine with TTL expiration, item/byte capacity limits, and a
// pluggable eviction policy (LRU, FIFO, Random, or user-defined).
//
// # Architecture
//
// The engine is layered, leaves first:
//
//   - bCache: a dual-indexed container — a map for O(1) lookup plus a
//     doubly linked list (container/list) for recency/insertion order.
//     Knows nothing about time, policy, or value ownership.
//   - Cache: adds TTL bookkeeping, owned-memory semantics via host-supplied
//     copy/free hooks, a deletion hook, capacity limits, and the sweep/
//     eviction coordinator.
//   - Policy: a pair of methods (Touch on hit, Pop on eviction demand) that
//     decide eviction order. LRUPolicy, FIFOPolicy, and RandomPolicy are
//     provided; any type satisfying the Policy interface can be plugged in
//     via WithPolicy or SetPolicy.
//
// # Concurrency
//
// Cache performs no internal locking. All operations must be invoked from
// a single goroutine at a time; the flexsync subpackage provides an
// opt-in synchronized wrapper for hosts that need concurrent access.
//
// # TTL and sweeping
//
// There is no background sweep. Expired entries are removed lazily on Get,
// or proactively via ScanAndClean / MaybeScanAndClean, which the host is
// expected to call (directly, or via flexsync's janitor).
//
// # Basic usage
//
//	c := flexcache.New(flexcache.RealClock{}, flexcache.WithItemMax(1000))
//	c.Insert([]byte("key"), "value", 16, time.Minute, 0)
//	v, ok := c.Get([]byte("key"))
package flexcache
