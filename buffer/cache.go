// Package buffer implements the scaled-buffer cache: every drawable SSD
// primitive (title text, button icon, rect, corner) wraps one
// ScaledBuffer, which keeps a small LRU of rendered pixel buffers indexed
// by output scale and can borrow an equal peer's buffer instead of
// re-rendering. The LRU is a doubly-linked list plus map, with
// MaxEntries fixed at 2 because a ScaledBuffer only ever needs to
// straddle two scales — the common case of a view moving between two
// outputs.
package buffer

// MaxEntries is the cache size per ScaledBuffer.
const MaxEntries = 2

// Handle is an opaque rendered buffer handle. The renderer backend that
// produces it is an external collaborator; the cache only tracks identity
// and invokes Impl to create/destroy it.
type Handle any

// Impl is implemented by the owner of a drawable primitive (a title-text
// buffer, a button-icon buffer, a rect, …). CreateBuffer renders fresh
// pixels at the given output scale; Destroy releases any owner-held state;
// Equal reports whether two owners are visually identical, allowing them
// to share a cached buffer and dedup visually identical primitives
// across views.
type Impl interface {
	CreateBuffer(scale float64) (Handle, error)
	Destroy()
	Equal(other Impl) bool
}

type entry struct {
	scale  float64
	handle Handle
	prev   *entry
	next   *entry
}

// Cache is the per-primitive cache of a ScaledBuffer: zero or more
// (scale -> Handle) entries in LRU order, the most recently used one next
// to the head sentinel.
type Cache struct {
	head, tail *entry // head = MRU sentinel, tail = LRU sentinel
	entries    map[float64]*entry
	size       int

	// DropBuffer records the owner's drop_buffer flag. Insert and
	// Invalidate do not read it: with either setting an evicted or
	// invalidated handle simply falls out of the cache, and nothing is
	// reported to the caller or released to the renderer.
	DropBuffer bool
}

func (c *Cache) init() {
	if c.entries != nil {
		return
	}
	c.entries = make(map[float64]*entry)
	c.head = &entry{}
	c.tail = &entry{}
	c.head.prev = c.tail
	c.tail.next = c.head
}

func (c *Cache) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache) pushFront(e *entry) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}

// Lookup returns the cached handle for scale, promoting it to
// most-recently-used, or (nil, false) on a miss.
func (c *Cache) Lookup(scale float64) (Handle, bool) {
	c.init()
	e, ok := c.entries[scale]
	if !ok {
		return nil, false
	}
	c.unlink(e)
	c.pushFront(e)
	return e.handle, true
}

// Insert adds (scale, handle) as most-recently-used, evicting the
// least-recently-used entry if the cache is full. Eviction only ever
// drops the cache's own reference to the handle — the owner's Destroy is
// a one-time, whole-primitive teardown (the destruction order calls it
// exactly once, after every cache entry has already been unlocked/
// dropped), never a per-evicted-handle callback.
func (c *Cache) Insert(scale float64, handle Handle) {
	c.init()
	if existing, ok := c.entries[scale]; ok {
		c.unlink(existing)
		delete(c.entries, scale)
		c.size--
	}
	e := &entry{scale: scale, handle: handle}
	c.entries[scale] = e
	c.pushFront(e)
	c.size++
	for c.size > MaxEntries {
		oldest := c.tail.next
		if oldest == c.head {
			break
		}
		c.unlink(oldest)
		delete(c.entries, oldest.scale)
		c.size--
	}
}

// Invalidate drops every cached entry (the owner's Destroy, if any, is
// the caller's separate, single responsibility — see Insert's doc).
func (c *Cache) Invalidate() {
	if c.entries == nil {
		return
	}
	c.entries = nil
	c.head, c.tail = nil, nil
	c.size = 0
}

// Scales returns the cached scales, LRU-first, for tests.
func (c *Cache) Scales() []float64 {
	if c.entries == nil {
		return nil
	}
	var out []float64
	for e := c.tail.next; e != c.head; e = e.next {
		out = append(out, e.scale)
	}
	return out
}
