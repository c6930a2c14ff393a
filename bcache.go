package flexcache

import "container/list"

// bNode is the payload stored behind each *list.Element. BCache treats
// value as fully opaque; the Cache layer above is the one that knows it
// holds an *entry.
type bNode struct {
	key   string
	value any
	size  int64
}

// bCache is the dual-indexed container: a hash index for O(1) lookup by
// key, kept in lockstep with an ordered doubly linked list. It owns no
// key or value memory beyond its own node bookkeeping; it has no notion
// of time, policy, or eviction.
//
// The list is ordered head-to-tail as insertion order for untouched
// nodes, and touch order otherwise: insert appends at the tail, and
// moveToFront/moveToBack reposition a node without changing counters.
type bCache struct {
	index      map[string]*list.Element
	order      *list.List
	itemCount  int
	totalBytes int64
}

func newBCache() *bCache {
	return &bCache{
		index: make(map[string]*list.Element),
		order: list.New(),
	}
}

// insert appends a new node at the tail and indexes it by key. It fails
// (returns false, counters unchanged) if the key is already present.
func (c *bCache) insert(key string, value any, size int64) (*list.Element, bool) {
	if _, exists := c.index[key]; exists {
		return nil, false
	}
	elem := c.order.PushBack(&bNode{key: key, value: value, size: size})
	c.index[key] = elem
	c.itemCount++
	c.totalBytes += size
	return elem, true
}

func (c *bCache) get(key string) (*list.Element, bool) {
	elem, ok := c.index[key]
	return elem, ok
}

// remove detaches elem from both the index and the list, decrementing
// both counters. elem must currently be a member of c.
func (c *bCache) remove(elem *list.Element) {
	n := elem.Value.(*bNode)
	delete(c.index, n.key)
	c.order.Remove(elem)
	c.itemCount--
	c.totalBytes -= n.size
}

func (c *bCache) removeByKey(key string) (*list.Element, bool) {
	elem, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.remove(elem)
	return elem, true
}

func (c *bCache) popFront() (*list.Element, bool) {
	elem := c.order.Front()
	if elem == nil {
		return nil, false
	}
	c.remove(elem)
	return elem, true
}

func (c *bCache) popBack() (*list.Element, bool) {
	elem := c.order.Back()
	if elem == nil {
		return nil, false
	}
	c.remove(elem)
	return elem, true
}

func (c *bCache) moveToFront(elem *list.Element) {
	c.order.MoveToFront(elem)
}

func (c *bCache) moveToBack(elem *list.Element) {
	c.order.MoveToBack(elem)
}

func (c *bCache) front() (*list.Element, bool) {
	elem := c.order.Front()
	return elem, elem != nil
}

func (c *bCache) back() (*list.Element, bool) {
	elem := c.order.Back()
	return elem, elem != nil
}

// at walks index steps from the front and returns the element landed on.
// Used only by RandomPolicy; complexity is linear by design (bCache keeps
// no secondary index into the list).
func (c *bCache) at(index int) (*list.Element, bool) {
	if index < 0 || index >= c.itemCount {
		return nil, false
	}
	elem := c.order.Front()
	for i := 0; i < index; i++ {
		elem = elem.Next()
	}
	return elem, elem != nil
}

func (c *bCache) clear() {
	c.index = make(map[string]*list.Element)
	c.order.Init()
	c.itemCount = 0
	c.totalBytes = 0
}

func (c *bCache) len() int { return c.itemCount }

func (c *bCache) bytes() int64 { return c.totalBytes }
