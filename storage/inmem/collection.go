// Package inmemdb keeps the console's records in memory.
package inmemdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/trezcool/masomo-console/core"
)

// Entity is a record held by a Collection.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
}

// Collection is an insertion-ordered, mutex guarded store.
// Records get sequential IDs made of the collection's prefix and a 3 digits (at least) counter: S001, S002...
type Collection[T Entity[T]] struct {
	mutex  sync.RWMutex
	prefix string
	seq    int
	order  []string
	table  map[string]T
}

func NewCollection[T Entity[T]](prefix string, seed ...T) *Collection[T] {
	c := &Collection[T]{
		prefix: prefix,
		order:  make([]string, 0, len(seed)),
		table:  make(map[string]T, len(seed)),
	}
	for _, item := range seed {
		id := item.GetID()
		if id == "" {
			id = c.nextID()
			item = item.WithID(id)
		}
		c.track(id)
		c.order = append(c.order, id)
		c.table[id] = item
	}
	return c
}

// track keeps the sequence ahead of seeded IDs.
func (c *Collection[T]) track(id string) {
	if n, err := strconv.Atoi(strings.TrimPrefix(id, c.prefix)); err == nil && n > c.seq {
		c.seq = n
	}
}

func (c *Collection[T]) nextID() string {
	c.seq++
	return fmt.Sprintf("%s%03d", c.prefix, c.seq)
}

func (c *Collection[T]) QueryAll(_ context.Context) ([]T, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	items := make([]T, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.table[id])
	}
	return items, nil
}

func (c *Collection[T]) GetByID(_ context.Context, id string) (T, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if item, ok := c.table[id]; ok {
		return item, nil
	}
	var zero T
	return zero, core.ErrNotFound
}

func (c *Collection[T]) Create(_ context.Context, item T) (T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	id := c.nextID()
	if _, ok := c.table[id]; ok {
		var zero T
		return zero, core.NewShutdownError(fmt.Sprintf("integrity issue: %s already exists", id))
	}
	item = item.WithID(id)
	c.order = append(c.order, id)
	c.table[id] = item
	return item, nil
}

func (c *Collection[T]) Update(_ context.Context, item T) (T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	id := item.GetID()
	if _, ok := c.table[id]; !ok {
		var zero T
		return zero, core.ErrNotFound
	}
	c.table[id] = item
	return item, nil
}

// DeleteByID deletes the records with ids; unknown ids are ignored.
func (c *Collection[T]) DeleteByID(_ context.Context, ids ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	deleted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.table[id]; ok {
			delete(c.table, id)
			deleted[id] = true
		}
	}
	if len(deleted) == 0 {
		return nil
	}
	order := c.order[:0]
	for _, id := range c.order {
		if !deleted[id] {
			order = append(order, id)
		}
	}
	c.order = order
	return nil
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.order)
}
