package flexcache

// entry is the Cache-layer payload stored inside each bNode. It wraps the
// host's opaque value handle together with the entry's absolute
// expiration instant, in the same unit/epoch as the injected Clock.
//
// expiresAt == 0 means "never expires". Any nonzero value is an expiry
// instant, inclusive: an entry with expiry e is expired once now >= e.
type entry struct {
	value     any
	expiresAt uint64
}

func (e *entry) expired(now uint64) bool {
	return e.expiresAt != 0 && e.expiresAt <= now
}

// resolveExpiry implements the precedence rule from §4.2.1: a positive
// TTL always wins over an absolute expiresAt argument, saturating on
// overflow instead of wrapping. If both are zero the entry never expires.
func resolveExpiry(now uint64, ttlMS uint64, expiresAt uint64) uint64 {
	if ttlMS > 0 {
		if now > maxUint64-ttlMS {
			return maxUint64
		}
		return now + ttlMS
	}
	if expiresAt > 0 {
		return expiresAt
	}
	return 0
}

const maxUint64 = 1<<64 - 1
