package flexcache

import "time"

// KeyCopyFunc returns an owned copy of key, or ok=false on failure (the
// host-side allocator, e.g. a pool or arena, is exhausted). The Cache
// indexes every key by an internal string copy of its bytes, whether or
// not a KeyCopyFunc is configured. If no KeyCopyFunc is configured, the
// Cache never calls a KeyFreeFunc.
type KeyCopyFunc func(key []byte) (owned []byte, ok bool)

// KeyFreeFunc releases a key obtained from a KeyCopyFunc. When an Insert
// fails it receives the buffer the KeyCopyFunc returned. When an entry is
// removed it receives a new slice holding the same bytes, built from the
// Cache's internal string copy, not the buffer the KeyCopyFunc returned.
type KeyFreeFunc func(key []byte)

// ValueCopyFunc returns an owned copy of value, or ok=false on failure.
// If no ValueCopyFunc is configured, the Cache stores the caller's value
// handle directly and never calls a ValueFreeFunc.
type ValueCopyFunc func(value any) (owned any, ok bool)

// ValueFreeFunc releases a value previously returned by a ValueCopyFunc.
type ValueFreeFunc func(value any)

// OnDeleteFunc is called exactly once per destroyed entry, before any
// configured free hook runs for that entry, and never from inside
// another hook.
type OnDeleteFunc func(key []byte, value any, size int64)

// Option configures a Cache at construction time via the functional
// options pattern, so New's signature stays stable as configuration
// grows.
type Option func(*Cache)

// WithItemMax caps the number of resident items. 0 (the default)
// disables item-count-driven eviction.
func WithItemMax(n int) Option {
	return func(c *Cache) { c.itemMax = n }
}

// WithByteMax caps the accumulated accounted byte size. 0 (the default)
// disables byte-size-driven eviction.
func WithByteMax(n int64) Option {
	return func(c *Cache) { c.byteMax = n }
}

// WithScanInterval sets the minimum time between throttled sweeps
// performed by MaybeScanAndClean. 0 (the default) sweeps on every
// throttled call.
func WithScanInterval(d time.Duration) Option {
	return func(c *Cache) { c.scanInterval = uint64(d.Milliseconds()) }
}

// WithKeyHooks configures owned-copy semantics for keys. Pass nil, nil to
// borrow the caller's key slice instead (the default).
func WithKeyHooks(copyFn KeyCopyFunc, freeFn KeyFreeFunc) Option {
	return func(c *Cache) {
		c.keyCopy = copyFn
		c.keyFree = freeFn
	}
}

// WithValueHooks configures owned-copy semantics for values. Pass nil,
// nil to borrow the caller's value handle instead (the default).
func WithValueHooks(copyFn ValueCopyFunc, freeFn ValueFreeFunc) Option {
	return func(c *Cache) {
		c.valueCopy = copyFn
		c.valueFree = freeFn
	}
}

// WithOnDelete registers the deletion-notification hook.
func WithOnDelete(fn OnDeleteFunc) Option {
	return func(c *Cache) { c.onDelete = fn }
}

// WithPolicy sets the initial eviction policy. The default, if omitted,
// is NewLRUPolicy().
func WithPolicy(p Policy) Option {
	return func(c *Cache) { c.policy = p }
}

// WithLogger attaches a structured logger for sweep/eviction/policy-swap
// tracing at debug level. A nil Logger (the default) disables logging.
func WithLogger(l Logger) Option {
	return func(c *Cache) { c.logger = l }
}
