package flexcache

// Stats reports runtime counters accumulated over the lifetime of a
// Cache: successful hits and misses on Get, entries removed by capacity
// eviction, and entries removed by TTL expiry (lazy, on Get, or via a
// sweep). Stats is a plain snapshot; Cache updates the live counters
// synchronously on every call, so no locking is needed to read it.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 if there have been no
// lookups yet.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
