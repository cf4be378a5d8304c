package store

import (
	"slices"
	"sync"
)

// Position says where Insert places a new entity.
type Position int

const (
	Back Position = iota
	Front
)

// Collection is an ordered in-memory set of entities keyed by an integer id.
// Every value handed out is a clone, so callers can never reach the stored state.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	lastID int
	id     func(*T) *int
	clone  func(T) T
}

// NewCollection seeds a collection. The id sequence starts after the largest
// seeded id and only moves forward, so deleted ids are never handed out again.
func NewCollection[T any](seed []T, id func(*T) *int, clone func(T) T) *Collection[T] {
	c := &Collection[T]{
		items: make([]T, 0, len(seed)),
		id:    id,
		clone: clone,
	}
	for _, item := range seed {
		item = clone(item)
		if v := *id(&item); v > c.lastID {
			c.lastID = v
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) All() []T {
	return c.Filter(nil, 0)
}

// Filter returns clones of the entities matching pred in collection order,
// stopping after limit matches. A nil pred matches everything and limit 0 means no limit.
func (c *Collection[T]) Filter(pred func(T) bool, limit int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if limit > 0 && len(out) == limit {
			break
		}
		if pred == nil || pred(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.clone(c.items[i]), true
}

// Insert assigns the next id, stores the entity built for it and returns a clone.
func (c *Collection[T]) Insert(build func(id int) T, pos Position) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	item := c.clone(build(c.lastID))
	*c.id(&item) = c.lastID

	if pos == Front {
		c.items = slices.Insert(c.items, 0, item)
	} else {
		c.items = append(c.items, item)
	}
	return c.clone(item)
}

// Update runs mutate on a copy of the stored entity and swaps it in when
// mutate succeeds. The identifier cannot be changed by mutate.
func (c *Collection[T]) Update(id int, mutate func(*T) error) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}

	next := c.clone(c.items[i])
	if err := mutate(&next); err != nil {
		return zero, true, err
	}
	*c.id(&next) = id

	c.items[i] = next
	return c.clone(next), true, nil
}

// UpdateAll runs mutate on every entity under one lock and returns how many
// entities mutate reported as changed.
func (c *Collection[T]) UpdateAll(mutate func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i := range c.items {
		id := *c.id(&c.items[i])
		if mutate(&c.items[i]) {
			changed++
		}
		*c.id(&c.items[i]) = id
	}
	return changed
}

func (c *Collection[T]) Delete(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return removed, true
}

func (c *Collection[T]) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return *c.id(&item) == id
	})
}
