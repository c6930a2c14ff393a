package flexcache

import (
	"container/list"
	"time"
)

// Cache is the engine described in the package doc: a TTL-aware,
// capacity-bounded, policy-driven cache built on top of bCache. It
// performs no internal locking and is meant for single-goroutine use;
// see the flexsync subpackage for a synchronized wrapper.
type Cache struct {
	base *bCache
	hv   hooksView

	clock Clock

	keyCopy   KeyCopyFunc
	keyFree   KeyFreeFunc
	valueCopy ValueCopyFunc
	valueFree ValueFreeFunc

	onDelete OnDeleteFunc

	policy Policy

	itemMax int
	byteMax int64

	scanInterval uint64
	lastScan     uint64
	everScanned  bool

	logger Logger

	stats Stats
}

// New constructs a ready-to-use Cache. clock must not be nil. Configure
// capacity limits, ownership hooks, the deletion hook, and the eviction
// policy via Option values; the default policy, if WithPolicy is not
// supplied, is LRU.
func New(clock Clock, opts ...Option) *Cache {
	c := &Cache{
		base:   newBCache(),
		clock:  clock,
		policy: NewLRUPolicy(),
	}
	c.hv = hooksView{c: c.base}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert adds key/value to the cache with the given accounted byte size
// and expiration. If ttl > 0 it wins over expiresAt (a saturating
// now+ttl, with ttl converted to whole milliseconds); otherwise a nonzero
// expiresAt (already in the clock's unit) is used verbatim; otherwise
// the entry never expires. After a successful insert capacity is
// enforced (§4.2.3), which may itself evict other entries.
//
// Insert returns ErrInvalidArgument for an empty key or negative size,
// ErrDuplicateKey if the key is already present (any buffers already
// produced by configured copy hooks for this call are released first),
// or ErrOutOfMemory if a configured copy hook reports failure.
func (c *Cache) Insert(key []byte, value any, size int64, ttl time.Duration, expiresAt uint64) error {
	if len(key) == 0 || size < 0 {
		return ErrInvalidArgument
	}

	now := c.clock.Now()
	ttlUnits := uint64(0)
	if ttl > 0 {
		// A positive TTL must always produce a positive, expiring
		// duration in the clock's unit: round sub-millisecond TTLs up
		// to 1ms rather than truncating to 0, which would otherwise
		// silently fall back to expiresAt (or "never expires").
		if ms := ttl.Milliseconds(); ms > 0 {
			ttlUnits = uint64(ms)
		} else {
			ttlUnits = 1
		}
	}

	k, ownedKey := key, false
	if c.keyCopy != nil {
		copied, ok := c.keyCopy(key)
		if !ok {
			return ErrOutOfMemory
		}
		k, ownedKey = copied, true
	}

	v, ownedValue := value, false
	if c.valueCopy != nil {
		copied, ok := c.valueCopy(value)
		if !ok {
			if ownedKey {
				c.keyFree(k)
			}
			return ErrOutOfMemory
		}
		v, ownedValue = copied, true
	}

	e := &entry{value: v, expiresAt: resolveExpiry(now, ttlUnits, expiresAt)}

	_, ok := c.base.insert(string(k), e, size)
	if !ok {
		if ownedKey && c.keyFree != nil {
			c.keyFree(k)
		}
		if ownedValue && c.valueFree != nil {
			c.valueFree(v)
		}
		return ErrDuplicateKey
	}

	c.enforceLimits()
	return nil
}

// Get looks up key. If found but currently expired (a nonzero expiry at
// or before now), the entry is removed via the deletion pipeline and
// (nil, false) is returned. Otherwise the policy's Touch runs and the
// host value handle is returned.
func (c *Cache) Get(key []byte) (any, bool) {
	elem, ok := c.base.get(string(key))
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	now := c.clock.Now()
	n := elem.Value.(*bNode)
	e := n.value.(*entry)

	if e.expired(now) {
		c.deleteNode(elem)
		c.stats.Misses++
		c.stats.Expirations++
		return nil, false
	}

	c.policy.Touch(c.hv, elem)
	c.stats.Hits++
	return e.value, true
}

// Delete removes key via the deletion pipeline, returning true if key
// was present.
func (c *Cache) Delete(key []byte) bool {
	elem, ok := c.base.get(string(key))
	if !ok {
		return false
	}
	c.deleteNode(elem)
	return true
}

// ScanAndClean unconditionally sweeps all expired entries, then enforces
// capacity.
func (c *Cache) ScanAndClean() {
	now := c.clock.Now()
	removed := c.sweep(now)
	c.enforceLimits()
	c.logDebugw("scan_and_clean", "removed", removed, "remaining", c.base.len())
}

// MaybeScanAndClean runs a sweep only if throttling allows it: when
// ScanInterval is 0, this is the first-ever call, or at least
// ScanInterval has elapsed since the last run.
func (c *Cache) MaybeScanAndClean() {
	now := c.clock.Now()
	if c.scanInterval != 0 && c.everScanned && now-c.lastScan < c.scanInterval {
		return
	}
	c.lastScan = now
	c.everScanned = true
	removed := c.sweep(now)
	c.enforceLimits()
	c.logDebugw("maybe_scan_and_clean", "removed", removed, "remaining", c.base.len())
}

// Destroy deletes every entry via the deletion pipeline, firing OnDelete
// for each, then resets counters. The Cache remains usable afterward.
func (c *Cache) Destroy() {
	for {
		elem, ok := c.base.front()
		if !ok {
			break
		}
		c.deleteNode(elem)
	}
}

// SetPolicy swaps the active eviction policy. Existing node positions are
// unaffected; only future Touch/Pop calls use the new policy.
func (c *Cache) SetPolicy(p Policy) {
	c.policy = p
	c.logDebugw("policy_swapped")
}

// Len returns the current item count.
func (c *Cache) Len() int { return c.base.len() }

// Bytes returns the current accumulated accounted byte size.
func (c *Cache) Bytes() int64 { return c.base.bytes() }

// Stats returns a snapshot of the cache's runtime counters.
func (c *Cache) Stats() Stats { return c.stats }

// sweep removes every node whose entry is expired as of now, iterating
// from the head. Because deletion mutates the list, next is captured
// before each removal.
func (c *Cache) sweep(now uint64) int {
	removed := 0
	elem, ok := c.base.front()
	for ok {
		next := elem.Next()
		n := elem.Value.(*bNode)
		e := n.value.(*entry)
		if e.expired(now) {
			c.deleteNode(elem)
			removed++
			c.stats.Expirations++
		}
		if next == nil {
			break
		}
		elem = next
		ok = true
	}
	return removed
}

// enforceLimits loops evicting victims chosen by the active policy while
// either the item-count or byte-size limit is exceeded. If the policy
// returns no victim, the loop stops even if still over limit — a
// defensive exit against a misbehaving policy.
func (c *Cache) enforceLimits() {
	for {
		overItems := c.itemMax != 0 && c.base.len() > c.itemMax
		overBytes := c.byteMax != 0 && c.base.bytes() > c.byteMax
		if !overItems && !overBytes {
			return
		}
		victim, ok := c.policy.Pop(c.hv)
		if !ok {
			return
		}
		key := victim.Value.(*bNode).key
		c.deleteNode(victim)
		c.stats.Evictions++
		reason := "item_max"
		if overBytes {
			reason = "byte_max"
		}
		c.logDebugw("evict", "key", key, "reason", reason)
	}
}

// deleteNode is the single code path that removes any entry, in the
// fixed order documented in §4.2.4: snapshot, OnDelete, detach, key free,
// value free. This guarantees OnDelete always observes live, untouched
// memory and that no hook ever sees the container mid-mutation.
func (c *Cache) deleteNode(elem *list.Element) {
	n := elem.Value.(*bNode)
	e := n.value.(*entry)

	key := []byte(n.key)
	size := n.size
	value := e.value

	if c.onDelete != nil {
		c.onDelete(key, value, size)
	}

	c.base.remove(elem)

	if c.keyCopy != nil && c.keyFree != nil {
		c.keyFree(key)
	}
	if c.valueCopy != nil && c.valueFree != nil {
		c.valueFree(value)
	}
}
