package cache

import (
	"errors"
	"sync"
)

// Cache is a bounded least-recently-used store. Entries carry a weight, and
// once the total weight exceeds the budget the least recently used entries
// are evicted until the cache fits again. A Retrieve or Insert counts as a
// use. All operations are safe for concurrent callers.
type Cache interface {
	Insert(key string, value interface{}, weight int) error
	Retrieve(key string) (interface{}, bool)
	Clear()
	Len() int
	Weight() int
	Budget() int
}

// ErrDuplicateKey is returned by Insert when the key is already cached.
var ErrDuplicateKey = errors.New("key already exists in cache")

type node struct {
	next   *node
	prev   *node
	key    string
	value  interface{}
	weight int
}

// lru keeps a lookup map for O(1) access and a doubly linked list ordered
// by recency, head being the most recently used entry.
type lru struct {
	mu     sync.Mutex
	head   *node
	tail   *node
	lookup map[string]*node
	weight int
	budget int
}

// NewCache returns an empty cache with the given weight budget.
func NewCache(budget int) Cache {
	return &lru{
		lookup: make(map[string]*node),
		budget: budget,
	}
}

// Insert adds a new entry as the most recently used. Inserting an existing
// key is an error; entries are replaced by evict-and-reinsert, never in
// place. Eviction runs until the cache is back under budget.
func (c *lru) Insert(key string, value interface{}, weight int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookup[key]; ok {
		return ErrDuplicateKey
	}

	n := &node{
		key:    key,
		value:  value,
		weight: weight,
		next:   c.head,
	}
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}

	c.lookup[key] = n
	c.weight += weight

	for c.weight > c.budget && c.tail != nil {
		evicted := c.tail
		if c.tail.prev != nil {
			c.tail.prev.next = nil
		} else {
			c.head = nil
		}
		c.tail = c.tail.prev
		c.weight -= evicted.weight
		delete(c.lookup, evicted.key)
	}

	return nil
}

// Retrieve returns the entry for key, if cached, and marks it most recently
// used.
func (c *lru) Retrieve(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.lookup[key]
	if !ok {
		return nil, false
	}

	if n != c.head {
		if n.next != nil {
			n.next.prev = n.prev
		}
		if n.prev != nil {
			n.prev.next = n.next
		}
		if n == c.tail {
			c.tail = n.prev
		}

		n.next = c.head
		n.prev = nil
		if c.head != nil {
			c.head.prev = n
		}
		c.head = n
	}

	return n.value, true
}

// Clear removes all entries.
func (c *lru) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.head = nil
	c.tail = nil
	c.lookup = make(map[string]*node)
	c.weight = 0
}

// Len returns the number of cached entries.
func (c *lru) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lookup)
}

// Weight returns the current total weight of the cache.
func (c *lru) Weight() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.weight
}

// Budget returns the weight budget.
func (c *lru) Budget() int {
	return c.budget
}
