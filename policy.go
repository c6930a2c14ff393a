package flexcache

import "container/list"

// Hooks is the narrow view of bCache a Policy is allowed to touch. A
// policy never sees the key/value index, only list-position primitives —
// it cannot insert, delete, or change counters, only reposition or read.
type Hooks interface {
	MoveToFront(elem *list.Element)
	MoveToBack(elem *list.Element)
	Front() (*list.Element, bool)
	Back() (*list.Element, bool)
	At(index int) (*list.Element, bool)
	Len() int
}

// Policy decides eviction order. Touch is invoked by Cache after a hit
// has been validated as non-expired, before the value is returned; it may
// reposition the node but must not insert, delete, or change counters.
// Pop is invoked when capacity enforcement needs a victim; it must return
// a node currently in the container, or false, and must not mutate the
// container itself (repositioning via the Hooks is fine; the caller
// performs the actual removal).
type Policy interface {
	Touch(h Hooks, elem *list.Element)
	Pop(h Hooks) (*list.Element, bool)
}

// hooksView adapts *bCache to the Hooks interface exposed to policies.
type hooksView struct{ c *bCache }

func (h hooksView) MoveToFront(elem *list.Element)     { h.c.moveToFront(elem) }
func (h hooksView) MoveToBack(elem *list.Element)      { h.c.moveToBack(elem) }
func (h hooksView) Front() (*list.Element, bool)       { return h.c.front() }
func (h hooksView) Back() (*list.Element, bool)        { return h.c.back() }
func (h hooksView) At(index int) (*list.Element, bool) { return h.c.at(index) }
func (h hooksView) Len() int                           { return h.c.len() }
