package memory

import (
	"ordmap/pkg/common"
	"ordmap/pkg/core/cursor"
)

// treeCursor remembers the key it is positioned at and re-seeks the tree on
// every move, so inserts never invalidate it. Clear does.
type treeCursor[T common.Ordered] struct {
	b     *body[T]
	epoch uint64
	key   T
	end   bool
}

func (c *treeCursor[T]) check() {
	if c.epoch != c.b.epoch {
		panic(cursor.ErrInvalidated)
	}
}

func (c *treeCursor[T]) Equal(o *treeCursor[T]) bool {
	if c.b != o.b || c.epoch != o.epoch || c.end != o.end {
		return false
	}
	return c.end || common.SameKey(c.key, o.key)
}

func (c *treeCursor[T]) Next() {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	found := false
	c.b.tree.AscendGreaterOrEqual(common.Entry[T]{Key: c.key}, func(e common.Entry[T]) bool {
		if common.SameKey(e.Key, c.key) {
			return true
		}
		c.key = e.Key
		found = true
		return false
	})
	if !found {
		*c = treeCursor[T]{b: c.b, epoch: c.epoch, end: true}
	}
}

func (c *treeCursor[T]) Prev() {
	c.check()
	if c.end {
		last, ok := c.b.tree.Max()
		if !ok {
			panic(cursor.ErrOutOfRange)
		}
		c.key, c.end = last.Key, false
		return
	}
	found := false
	c.b.tree.DescendLessOrEqual(common.Entry[T]{Key: c.key}, func(e common.Entry[T]) bool {
		if common.SameKey(e.Key, c.key) {
			return true
		}
		c.key = e.Key
		found = true
		return false
	})
	if !found {
		panic(cursor.ErrOutOfRange)
	}
}

func (c *treeCursor[T]) Entry() common.Entry[T] {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	e, ok := c.b.tree.Get(common.Entry[T]{Key: c.key})
	if !ok {
		panic(cursor.ErrInvalidated)
	}
	return e
}

func (c *treeCursor[T]) SetValue(v T) {
	c.check()
	if c.end {
		panic(cursor.ErrOutOfRange)
	}
	if !c.b.tree.Has(common.Entry[T]{Key: c.key}) {
		panic(cursor.ErrInvalidated)
	}
	c.b.tree.ReplaceOrInsert(common.Entry[T]{Key: c.key, Value: v})
}
