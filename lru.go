package flexcache

import "container/list"

// LRUPolicy evicts the least recently used entry: Touch moves the
// accessed node to the tail (most recently used), so Pop — which always
// returns the head — returns the node that has gone longest untouched.
type LRUPolicy struct{}

// NewLRUPolicy returns a ready-to-use LRU eviction policy. It holds no
// state of its own; the ordering lives entirely in the container's list.
func NewLRUPolicy() *LRUPolicy { return &LRUPolicy{} }

func (*LRUPolicy) Touch(h Hooks, elem *list.Element) {
	h.MoveToBack(elem)
}

func (*LRUPolicy) Pop(h Hooks) (*list.Element, bool) {
	return h.Front()
}
