package flexcache

import "container/list"

// RandomPolicy evicts a uniformly random surviving entry. Touch is a
// no-op. Pop draws one index in [0, Len()) from the injected RNG and
// walks that many steps from the head — linear in item count by design,
// the container keeps no secondary index into the list for this.
type RandomPolicy struct {
	rng RNG
}

// NewRandomPolicy builds a Random eviction policy backed by rng, called
// once per eviction decision.
func NewRandomPolicy(rng RNG) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (*RandomPolicy) Touch(h Hooks, elem *list.Element) {}

func (p *RandomPolicy) Pop(h Hooks) (*list.Element, bool) {
	n := h.Len()
	if n == 0 {
		return nil, false
	}
	idx := int(p.rng() % uint32(n))
	return h.At(idx)
}
